package postgres

import (
	"fmt"

	"meatmanager/internal/adapters/out/postgres/customerrepo"
	"meatmanager/internal/adapters/out/postgres/orderrepo"
	"meatmanager/internal/adapters/out/postgres/productrepo"
	"meatmanager/internal/adapters/out/postgres/roundrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates all tables, indexes and foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&roundrepo.RoundDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
