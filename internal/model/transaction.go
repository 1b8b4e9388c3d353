package model

import "time"

type TransactionType string

const (
	TxCreate TransactionType = "CREATE"
	TxUpdate TransactionType = "UPDATE"
)

// StockTransaction is the append-only audit log. One row per committed
// mutation, never updated or deleted. Quantity is the stock snapshot
// submitted with the mutation.
type StockTransaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	FruitID   uint            `gorm:"index;not null" json:"fruit_id"`
	Fruit     *Fruit          `json:"fruit,omitempty"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}
