package queries

import (
	"context"
	"time"

	"meatmanager/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PackListItem is one order line as it is packed: snapshot price included.
type PackListItem struct {
	ProductID kernel.UUID
	Name      string
	Unit      string
	Quantity  decimal.Decimal
	SellPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// PackListOrder is an order of the round with its lines and total.
type PackListOrder struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Phone        string
	Source       string
	Comment      string
	Paid         bool
	PickedUp     bool
	CreatedAt    time.Time
	Items        []PackListItem
	Total        decimal.Decimal
}

type GetPackListQueryHandler struct {
	db *gorm.DB
}

func NewGetPackListQueryHandler(db *gorm.DB) GetPackListQueryHandler {
	return GetPackListQueryHandler{db: db}
}

type packOrderRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Phone        string
	Source       string
	Comment      string
	Paid         bool
	PickedUp     bool
	CreatedAt    time.Time
}

type packItemRow struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Unit      string
	Quantity  decimal.Decimal
	SellPrice decimal.Decimal
}

// Handle lists the orders of a round by customer name, each with its lines
// ordered by product name.
func (h GetPackListQueryHandler) Handle(ctx context.Context, query RoundQuery) ([]PackListOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if _, err := loadRound(ctx, h.db, query.RoundID()); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	roundID := query.RoundID().Bytes()

	var orderRows []packOrderRow
	if err := db.Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name AS customer_name,
			c.phone,
			o.source,
			o.comment,
			o.paid,
			o.picked_up,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.round_id = ?
		ORDER BY c.name, o.created_at, o.id
	`, roundID).Scan(&orderRows).Error; err != nil {
		return nil, err
	}

	var itemRows []packItemRow
	if err := db.Raw(`
		SELECT
			oi.order_id,
			oi.product_id,
			p.name,
			p.unit,
			oi.quantity,
			oi.sell_price
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.round_id = ?
		ORDER BY p.name, oi.id
	`, roundID).Scan(&itemRows).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]PackListItem, len(orderRows))
	for _, row := range itemRows {
		item, err := row.toItem()
		if err != nil {
			return nil, err
		}
		itemsByOrder[row.OrderID] = append(itemsByOrder[row.OrderID], item)
	}

	orders := make([]PackListOrder, 0, len(orderRows))
	for _, row := range orderRows {
		o, err := row.toOrder(itemsByOrder[row.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r packItemRow) toItem() (PackListItem, error) {
	productID, err := toKernelID(r.ProductID)
	if err != nil {
		return PackListItem{}, err
	}
	quantity := r.Quantity.Round(kernel.Places)
	sellPrice := r.SellPrice.Round(kernel.Places)
	return PackListItem{
		ProductID: productID,
		Name:      r.Name,
		Unit:      r.Unit,
		Quantity:  quantity,
		SellPrice: sellPrice,
		LineTotal: sellPrice.Mul(quantity),
	}, nil
}

func (r packOrderRow) toOrder(items []PackListItem) (PackListOrder, error) {
	orderID, err := toKernelID(r.ID)
	if err != nil {
		return PackListOrder{}, err
	}
	customerID, err := toKernelID(r.CustomerID)
	if err != nil {
		return PackListOrder{}, err
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	if items == nil {
		items = []PackListItem{}
	}

	return PackListOrder{
		OrderID:      orderID,
		CustomerID:   customerID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Source:       r.Source,
		Comment:      r.Comment,
		Paid:         r.Paid,
		PickedUp:     r.PickedUp,
		CreatedAt:    r.CreatedAt,
		Items:        items,
		Total:        total,
	}, nil
}
