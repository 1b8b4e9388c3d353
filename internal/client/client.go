package client

import (
	"fmt"
	"time"

	"go-fruit-inventory/internal/model"

	"github.com/go-resty/resty/v2"
)

// APIClient talks to the fruit inventory REST API.
type APIClient struct {
	http *resty.Client
}

type apiError struct {
	Error string `json:"error"`
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10*time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

func (c *APIClient) FetchFruits() ([]model.FruitWithStock, error) {
	var fruits []model.FruitWithStock
	resp, err := c.http.R().
		SetResult(&fruits).
		SetError(&apiError{}).
		Get("/api/fruits")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, respError(resp)
	}
	return fruits, nil
}

func (c *APIClient) AddFruit(req model.FruitRequest) error {
	resp, err := c.http.R().
		SetBody(req).
		SetError(&apiError{}).
		Post("/api/fruits")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return respError(resp)
	}
	return nil
}

func (c *APIClient) UpdateFruit(id uint, req model.FruitRequest) error {
	resp, err := c.http.R().
		SetBody(req).
		SetError(&apiError{}).
		Put(fmt.Sprintf("/api/fruits/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return respError(resp)
	}
	return nil
}

func respError(resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != "" {
		return fmt.Errorf("api error (%d): %s", resp.StatusCode(), apiErr.Error)
	}
	return fmt.Errorf("api error (%d)", resp.StatusCode())
}
