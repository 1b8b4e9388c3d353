package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-fruit-inventory/internal/model"
	"go-fruit-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) GetAllFruits() ([]model.FruitWithStock, error) {
	args := m.Called()
	return args.Get(0).([]model.FruitWithStock), args.Error(1)
}

func (m *mockInventoryService) CreateFruit(req *model.FruitRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *mockInventoryService) UpdateFruit(id uint, req *model.FruitRequest) error {
	args := m.Called(id, req)
	return args.Error(0)
}

func setupApp(svc service.InventoryService) *fiber.App {
	app := fiber.New()
	h := NewFruitHandler(svc)
	app.Get("/api/fruits", h.GetFruits)
	app.Post("/api/fruits", h.CreateFruit)
	app.Put("/api/fruits/:id", h.UpdateFruit)
	return app
}

func TestGetFruits_ReturnsList(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("GetAllFruits").Return([]model.FruitWithStock{
		{ID: 1, Name: "Apple", Type: "Fruit", Price: decimal.NewFromFloat(12.50), Stock: 100},
	}, nil)

	app := setupApp(svc)
	req := httptest.NewRequest("GET", "/api/fruits", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"Apple"`)
	assert.Contains(t, string(body), `"12.5"`)
}

func TestGetFruits_StorageErrorIs500(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("GetAllFruits").Return([]model.FruitWithStock(nil), assert.AnError)

	app := setupApp(svc)
	req := httptest.NewRequest("GET", "/api/fruits", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 500, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "error")
}

func TestCreateFruit_Success(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("CreateFruit", mock.AnythingOfType("*model.FruitRequest")).Return(nil)

	app := setupApp(svc)
	req := httptest.NewRequest("POST", "/api/fruits",
		strings.NewReader(`{"name":"Apple","type":"Fruit","price":12.50,"stock":100}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Fruit added successfully")
	svc.AssertExpectations(t)
}

func TestCreateFruit_BadJSONIs400(t *testing.T) {
	svc := new(mockInventoryService)

	app := setupApp(svc)
	req := httptest.NewRequest("POST", "/api/fruits", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	svc.AssertNotCalled(t, "CreateFruit", mock.Anything)
}

func TestCreateFruit_ValidationErrorIs400(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("CreateFruit", mock.Anything).Return(service.ErrValidation)

	app := setupApp(svc)
	req := httptest.NewRequest("POST", "/api/fruits",
		strings.NewReader(`{"name":"","type":"Fruit","price":1,"stock":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateFruit_StorageErrorIs500(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("CreateFruit", mock.Anything).Return(assert.AnError)

	app := setupApp(svc)
	req := httptest.NewRequest("POST", "/api/fruits",
		strings.NewReader(`{"name":"Apple","type":"Fruit","price":12.50,"stock":100}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 500, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), assert.AnError.Error())
}

func TestUpdateFruit_Success(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("UpdateFruit", uint(7), mock.AnythingOfType("*model.FruitRequest")).Return(nil)

	app := setupApp(svc)
	req := httptest.NewRequest("PUT", "/api/fruits/7",
		strings.NewReader(`{"name":"Apple","type":"Fruit","price":15.00,"stock":80}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Fruit updated successfully")
	svc.AssertExpectations(t)
}

func TestUpdateFruit_BadIDIs400(t *testing.T) {
	svc := new(mockInventoryService)

	app := setupApp(svc)
	req := httptest.NewRequest("PUT", "/api/fruits/abc",
		strings.NewReader(`{"name":"Apple","type":"Fruit","price":15.00,"stock":80}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	svc.AssertNotCalled(t, "UpdateFruit", mock.Anything, mock.Anything)
}

func TestUpdateFruit_UnknownIDIs404(t *testing.T) {
	svc := new(mockInventoryService)
	svc.On("UpdateFruit", uint(99), mock.Anything).Return(service.ErrFruitNotFound)

	app := setupApp(svc)
	req := httptest.NewRequest("PUT", "/api/fruits/99",
		strings.NewReader(`{"name":"Apple","type":"Fruit","price":15.00,"stock":80}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
}
