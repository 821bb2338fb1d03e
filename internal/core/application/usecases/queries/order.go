package queries

import (
	"context"
	"errors"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderResponse is an order as shown in the edit form: customer and round
// resolved, items with product names and snapshot prices.
type OrderResponse struct {
	ID           kernel.UUID
	RoundID      kernel.UUID
	RoundDate    time.Time
	CustomerID   kernel.UUID
	CustomerName string
	Source       string
	Comment      string
	Paid         bool
	PickedUp     bool
	CreatedAt    time.Time
	Items        []PackListItem
	Total        decimal.Decimal
}

// Quantities maps product ids to the ordered quantity.
func (r OrderResponse) Quantities() map[kernel.UUID]decimal.Decimal {
	quantities := make(map[kernel.UUID]decimal.Decimal, len(r.Items))
	for _, item := range r.Items {
		quantities[item.ProductID] = item.Quantity
	}
	return quantities
}

type orderRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Phone        string
	Source       string
	Comment      string
	Paid         bool
	PickedUp     bool
	CreatedAt    time.Time
	RoundID      uuid.UUID
	RoundDate    time.Time
}

func (r orderRow) packRow() packOrderRow {
	return packOrderRow{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Source:       r.Source,
		Comment:      r.Comment,
		Paid:         r.Paid,
		PickedUp:     r.PickedUp,
		CreatedAt:    r.CreatedAt,
	}
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var rows []orderRow
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
			o.created_at,
			o.round_id,
			r.date AS round_date
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN rounds r ON r.id = o.round_id
		WHERE o.id = ?
	`, orderID).Scan(&rows).Error; err != nil {
		return OrderResponse{}, err
	}
	if len(rows) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
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
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ?
		ORDER BY p.name, oi.id
	`, orderID).Scan(&itemRows).Error; err != nil {
		return OrderResponse{}, err
	}

	items := make([]PackListItem, 0, len(itemRows))
	for _, row := range itemRows {
		item, err := row.toItem()
		if err != nil {
			return OrderResponse{}, err
		}
		items = append(items, item)
	}

	row := rows[0]
	o, err := row.packRow().toOrder(items)
	if err != nil {
		return OrderResponse{}, err
	}
	roundID, err := toKernelID(row.RoundID)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           o.OrderID,
		RoundID:      roundID,
		RoundDate:    row.RoundDate,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Source:       o.Source,
		Comment:      o.Comment,
		Paid:         o.Paid,
		PickedUp:     o.PickedUp,
		CreatedAt:    o.CreatedAt,
		Items:        o.Items,
		Total:        o.Total,
	}, nil
}
