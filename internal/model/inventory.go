package model

import "time"

// Inventory holds the current stock level for a fruit. Exactly one row
// per fruit; created in the same transaction as the fruit itself.
type Inventory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FruitID     uint      `gorm:"uniqueIndex;not null" json:"fruit_id"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	LastUpdated time.Time `json:"last_updated"`
}
