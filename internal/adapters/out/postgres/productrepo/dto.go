package productrepo

import (
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the GORM model of the products table. Prices are stored as
// fixed-point decimal(10,2).
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(120);not null;index"`
	Unit      string          `gorm:"type:varchar(20);not null"`
	SellPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BuyPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active    bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Unit:      aggregate.Unit(),
		SellPrice: aggregate.SellPrice(),
		BuyPrice:  aggregate.BuyPrice(),
		Active:    aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name, dto.Unit, dto.SellPrice, dto.BuyPrice, dto.Active)
}
