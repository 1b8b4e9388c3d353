package service

import (
	"time"

	"go-fruit-inventory/internal/model"
	"go-fruit-inventory/internal/repository"
)

type DashboardService interface {
	GetStockMovement(days int) ([]repository.StockMovementData, error)
	GetInventoryStats() (*repository.InventoryStats, error)
	GetAllTransactions() ([]model.StockTransaction, error)
}

type dashboardService struct {
	txRepo repository.TransactionRepository
}

func NewDashboardService(txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{txRepo: txRepo}
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.txRepo.GetStockMovement(startDate, endDate)
}

func (s *dashboardService) GetInventoryStats() (*repository.InventoryStats, error) {
	return s.txRepo.GetInventoryStats()
}

func (s *dashboardService) GetAllTransactions() ([]model.StockTransaction, error) {
	return s.txRepo.FindAll()
}
