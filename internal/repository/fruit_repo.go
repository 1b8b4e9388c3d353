package repository

import (
	"fmt"
	"log"
	"time"

	"go-fruit-inventory/internal/model"

	"gorm.io/gorm"
)

type FruitRepository interface {
	ListWithStock() ([]model.FruitWithStock, error)
	Exists(id uint) (bool, error)
	Create(req *model.FruitRequest) error
	Update(id uint, req *model.FruitRequest) error
}

type fruitRepo struct {
	db *gorm.DB
}

func NewFruitRepo(db *gorm.DB) FruitRepository {
	return &fruitRepo{db}
}

// ListWithStock reads from the fruit_inventory_view first. When the view
// is not deployed (or the query fails for any other reason) it falls back
// to joining the tables directly. Both paths return the same projection,
// ordered by name.
func (r *fruitRepo) ListWithStock() ([]model.FruitWithStock, error) {
	var fruits []model.FruitWithStock

	err := r.db.Raw(`
		SELECT id, name, type, price, stock
		FROM fruit_inventory_view
		ORDER BY name ASC`).Scan(&fruits).Error
	if err == nil {
		return fruits, nil
	}

	log.Printf("inventory view unavailable, using direct query: %v", err)

	fruits = nil
	err = r.db.Raw(`
		SELECT f.id, f.name, f.type, f.price, COALESCE(i.stock, 0) AS stock
		FROM fruits f
		LEFT JOIN inventories i ON i.fruit_id = f.id
		ORDER BY f.name ASC`).Scan(&fruits).Error
	if err != nil {
		return nil, fmt.Errorf("list fruits: %w", err)
	}
	return fruits, nil
}

func (r *fruitRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Fruit{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create attempts the insert_fruit stored procedure first. On any failure
// it falls back to an explicit transaction that performs the same three
// writes directly: fruit row, inventory row, CREATE log row. The fallback
// commits all three or none.
func (r *fruitRepo) Create(req *model.FruitRequest) error {
	err := r.db.Exec("CALL insert_fruit(?, ?, ?, ?)",
		req.Name, req.Type, req.Price, req.Stock).Error
	if err == nil {
		return nil
	}

	log.Printf("insert_fruit procedure failed, falling back to direct SQL: %v", err)

	return r.db.Transaction(func(tx *gorm.DB) error {
		fruit := model.Fruit{
			Name:  req.Name,
			Type:  req.Type,
			Price: req.Price,
		}
		if err := tx.Create(&fruit).Error; err != nil {
			return fmt.Errorf("insert fruit: %w", err)
		}

		inv := model.Inventory{
			FruitID:     fruit.ID,
			Stock:       req.Stock,
			LastUpdated: time.Now(),
		}
		if err := tx.Create(&inv).Error; err != nil {
			return fmt.Errorf("insert inventory: %w", err)
		}

		entry := model.StockTransaction{
			FruitID:  fruit.ID,
			Type:     model.TxCreate,
			Quantity: req.Stock,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("insert transaction log: %w", err)
		}

		return nil
	})
}

// Update mirrors Create: update_fruit procedure first, then the explicit
// transaction updating the fruit row, the inventory row, and appending an
// UPDATE log row. Existence of the id is the caller's concern; both paths
// affect zero rows for an unknown id.
func (r *fruitRepo) Update(id uint, req *model.FruitRequest) error {
	err := r.db.Exec("CALL update_fruit(?, ?, ?, ?, ?)",
		id, req.Name, req.Type, req.Price, req.Stock).Error
	if err == nil {
		return nil
	}

	log.Printf("update_fruit procedure failed, falling back to direct SQL: %v", err)

	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Fruit{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":  req.Name,
				"type":  req.Type,
				"price": req.Price,
			}).Error
		if err != nil {
			return fmt.Errorf("update fruit: %w", err)
		}

		err = tx.Model(&model.Inventory{}).
			Where("fruit_id = ?", id).
			Updates(map[string]interface{}{
				"stock":        req.Stock,
				"last_updated": time.Now(),
			}).Error
		if err != nil {
			return fmt.Errorf("update inventory: %w", err)
		}

		entry := model.StockTransaction{
			FruitID:  id,
			Type:     model.TxUpdate,
			Quantity: req.Stock,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("insert transaction log: %w", err)
		}

		return nil
	})
}
