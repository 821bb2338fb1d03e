package queries

import (
	"context"

	"meatmanager/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShoppingListLine is the total quantity of one product ordered in a round.
type ShoppingListLine struct {
	ProductID kernel.UUID
	Name      string
	Unit      string
	Total     decimal.Decimal
}

type GetShoppingListQueryHandler struct {
	db *gorm.DB
}

func NewGetShoppingListQueryHandler(db *gorm.DB) GetShoppingListQueryHandler {
	return GetShoppingListQueryHandler{db: db}
}

// Handle sums quantities per product across all orders of the round, ordered
// by product name. Products nobody ordered do not appear.
func (h GetShoppingListQueryHandler) Handle(ctx context.Context, query RoundQuery) ([]ShoppingListLine, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if _, err := loadRound(ctx, h.db, query.RoundID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.unit,
			SUM(oi.quantity) AS total
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.round_id = ?
		GROUP BY p.id, p.name, p.unit
		ORDER BY p.name, p.id
	`, query.RoundID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]ShoppingListLine, 0)
	for rows.Next() {
		var line ShoppingListLine
		var id uuid.UUID

		if err = rows.Scan(&id, &line.Name, &line.Unit, &line.Total); err != nil {
			return nil, err
		}

		productID, idErr := toKernelID(id)
		if idErr != nil {
			return nil, idErr
		}
		line.ProductID = productID
		line.Total = line.Total.Round(kernel.Places)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
