package repository

import (
	"time"

	"go-fruit-inventory/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindAll() ([]model.StockTransaction, error)
	FindByFruitID(fruitID uint) ([]model.StockTransaction, error)
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetInventoryStats() (*InventoryStats, error)
}

// StockMovementData untuk chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Created  int    `json:"created"`
	Adjusted int    `json:"adjusted"`
}

// InventoryStats untuk overview stats
type InventoryStats struct {
	TotalFruits    int64           `json:"total_fruits"`
	LowStockCount  int64           `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindAll() ([]model.StockTransaction, error) {
	var transactions []model.StockTransaction
	err := r.db.Preload("Fruit").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByFruitID(fruitID uint) ([]model.StockTransaction, error) {
	var transactions []model.StockTransaction
	err := r.db.Where("fruit_id = ?", fruitID).Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Aggregate log entries per day, split by mutation kind
	rows, err := r.db.Model(&model.StockTransaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN type = 'CREATE' THEN quantity ELSE 0 END), 0) as created,
			COALESCE(SUM(CASE WHEN type = 'UPDATE' THEN quantity ELSE 0 END), 0) as adjusted
		`).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Created, &data.Adjusted); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

func (r *transactionRepo) GetInventoryStats() (*InventoryStats, error) {
	var stats InventoryStats

	// Total Fruits
	r.db.Model(&model.Fruit{}).Count(&stats.TotalFruits)

	// Low Stock Count (stock < 10)
	r.db.Model(&model.Inventory{}).Where("stock < ?", 10).Count(&stats.LowStockCount)

	// Total Valuation (SUM of stock * price)
	row := r.db.Raw(`
		SELECT COALESCE(SUM(i.stock * f.price), 0)
		FROM fruits f
		JOIN inventories i ON i.fruit_id = f.id`).Row()
	if err := row.Scan(&stats.TotalValuation); err != nil {
		return nil, err
	}

	return &stats, nil
}
