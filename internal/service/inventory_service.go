package service

import (
	"errors"
	"fmt"

	"go-fruit-inventory/internal/model"
	"go-fruit-inventory/internal/repository"
	"go-fruit-inventory/internal/ws"
	"go-fruit-inventory/pkg/validator"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrFruitNotFound = errors.New("fruit not found")
)

type InventoryService interface {
	GetAllFruits() ([]model.FruitWithStock, error)
	CreateFruit(req *model.FruitRequest) error
	UpdateFruit(id uint, req *model.FruitRequest) error
}

type inventoryService struct {
	fruitRepo repository.FruitRepository
	wsHub     *ws.Hub
}

func NewInventoryService(fRepo repository.FruitRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		fruitRepo: fRepo,
		wsHub:     hub,
	}
}

func (s *inventoryService) GetAllFruits() ([]model.FruitWithStock, error) {
	return s.fruitRepo.ListWithStock()
}

func (s *inventoryService) CreateFruit(req *model.FruitRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	if err := s.fruitRepo.Create(req); err != nil {
		return fmt.Errorf("create fruit: %w", err)
	}

	s.publish("fruit_created", 0, req)
	return nil
}

func (s *inventoryService) UpdateFruit(id uint, req *model.FruitRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	// The stored procedure path does not report missing ids and the
	// fallback UPDATE silently touches zero rows, so check here.
	exists, err := s.fruitRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("check fruit: %w", err)
	}
	if !exists {
		return ErrFruitNotFound
	}

	if err := s.fruitRepo.Update(id, req); err != nil {
		return fmt.Errorf("update fruit: %w", err)
	}

	s.publish("fruit_updated", id, req)
	return nil
}

func (s *inventoryService) validate(req *model.FruitRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'",
			ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	return nil
}

func (s *inventoryService) publish(action string, id uint, req *model.FruitRequest) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Publish(ws.StockEvent{
		Action:  action,
		FruitID: id,
		Name:    req.Name,
		Type:    req.Type,
		Price:   req.Price,
		Stock:   req.Stock,
	})
}
