package queries

import (
	"context"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoundProfitResponse reports revenue, purchase cost, travel cost and profit
// of a round together with the km rate that was applied.
type RoundProfitResponse struct {
	RoundID kernel.UUID
	services.Profit
}

// profitLineRow is one order line of the round at its snapshot prices.
type profitLineRow struct {
	Quantity  decimal.Decimal
	SellPrice decimal.Decimal
	BuyPrice  decimal.Decimal
}

type GetRoundProfitQueryHandler struct {
	db         *gorm.DB
	calculator services.ProfitCalculator
}

func NewGetRoundProfitQueryHandler(db *gorm.DB, calculator services.ProfitCalculator) GetRoundProfitQueryHandler {
	return GetRoundProfitQueryHandler{db: db, calculator: calculator}
}

// Handle sums snapshot prices times quantities over the round without rounding.
// A round without orders has zero revenue and cost, so its profit is minus the
// travel cost.
func (h GetRoundProfitQueryHandler) Handle(ctx context.Context, query RoundQuery) (RoundProfitResponse, error) {
	if err := query.Validate(); err != nil {
		return RoundProfitResponse{}, err
	}

	r, err := loadRound(ctx, h.db, query.RoundID())
	if err != nil {
		return RoundProfitResponse{}, err
	}

	var lines []profitLineRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT
			oi.quantity,
			oi.sell_price,
			oi.buy_price
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.round_id = ?
	`, query.RoundID().Bytes()).Scan(&lines).Error; err != nil {
		return RoundProfitResponse{}, err
	}

	revenue, cost := decimal.Zero, decimal.Zero
	for _, line := range lines {
		quantity := line.Quantity.Round(kernel.Places)
		revenue = revenue.Add(line.SellPrice.Round(kernel.Places).Mul(quantity))
		cost = cost.Add(line.BuyPrice.Round(kernel.Places).Mul(quantity))
	}

	profit := h.calculator.Calculate(revenue, cost, r.TravelKm)

	return RoundProfitResponse{RoundID: r.ID, Profit: profit}, nil
}
