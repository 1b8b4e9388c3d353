package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fruit maps to the fruits table. The ID comes from the database
// sequence and is never reused.
type Fruit struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Type      string          `gorm:"type:varchar(50);not null" json:"type"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relasi
	Inventory    *Inventory         `json:"inventory,omitempty"`
	Transactions []StockTransaction `json:"transactions,omitempty"`
}

// FruitRequest is the inbound payload for create and update.
// Price uses decimal so money never touches binary floating point.
type FruitRequest struct {
	Name  string          `json:"name" validate:"required"`
	Type  string          `json:"type" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
	Stock int             `json:"stock" validate:"gte=0"`
}

// FruitWithStock is the list projection: fruit fields joined with the
// current inventory stock (0 when no inventory row exists yet).
type FruitWithStock struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}
