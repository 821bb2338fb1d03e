// Package orderrepo persists order aggregates together with their items.
package orderrepo

import (
	"time"

	"meatmanager/internal/adapters/out/postgres/customerrepo"
	"meatmanager/internal/adapters/out/postgres/productrepo"
	"meatmanager/internal/adapters/out/postgres/roundrepo"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the GORM model of the orders table. Deleting a customer or a
// round cascades to its orders.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	RoundID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Source     string         `gorm:"type:varchar(20);not null"`
	Comment    string         `gorm:"type:text;not null"`
	Paid       bool           `gorm:"not null"`
	PickedUp   bool           `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"not null"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	Customer *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Round    *roundrepo.RoundDTO       `gorm:"foreignKey:RoundID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Prices are the snapshot taken when the
// line was created. A product referenced here cannot be deleted.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	SellPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BuyPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			SellPrice: item.SellPrice(),
			BuyPrice:  item.BuyPrice(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		RoundID:    aggregate.RoundID().Bytes(),
		Source:     aggregate.Source().String(),
		Comment:    aggregate.Comment(),
		Paid:       aggregate.IsPaid(),
		PickedUp:   aggregate.IsPickedUp(),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	roundID, err := kernel.UUIDFromBytes(dto.RoundID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, roundID, order.Source(dto.Source), dto.Comment,
		dto.Paid, dto.PickedUp, dto.CreatedAt, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, productID, dto.Quantity, dto.SellPrice, dto.BuyPrice)
}
