package main

import (
	"log"

	"go-fruit-inventory/internal/model"
	"go-fruit-inventory/internal/repository"
	"go-fruit-inventory/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Seeds a handful of fruits through the repository so the same
// primary/fallback write path runs as in production.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	db.AutoMigrate(&model.Fruit{}, &model.Inventory{}, &model.StockTransaction{})

	fruitRepo := repository.NewFruitRepo(db)

	seeds := []model.FruitRequest{
		{Name: "Apple", Type: "Fruit", Price: decimal.NewFromFloat(12.50), Stock: 100},
		{Name: "Banana", Type: "Fruit", Price: decimal.NewFromFloat(4.25), Stock: 250},
		{Name: "Cherry", Type: "Berry", Price: decimal.NewFromFloat(22.00), Stock: 40},
	}

	for _, s := range seeds {
		if err := fruitRepo.Create(&s); err != nil {
			log.Printf("Warning: failed to seed %s: %v", s.Name, err)
			continue
		}
		log.Printf("Seeded %s (stock %d)", s.Name, s.Stock)
	}
}
