package queries

import (
	"context"
)

// OrderFormResponse holds what the quick-entry form offers for a round.
type OrderFormResponse struct {
	Round     RoundResponse
	Customers []CustomerResponse
	Products  []ProductResponse
}

type GetOrderFormQueryHandler struct {
	rounds    GetRoundsQueryHandler
	customers GetCustomersQueryHandler
	products  GetProductsQueryHandler
}

func NewGetOrderFormQueryHandler(
	rounds GetRoundsQueryHandler,
	customers GetCustomersQueryHandler,
	products GetProductsQueryHandler,
) GetOrderFormQueryHandler {
	return GetOrderFormQueryHandler{rounds: rounds, customers: customers, products: products}
}

// Handle returns active customers and active products, both by name.
func (h GetOrderFormQueryHandler) Handle(ctx context.Context, query RoundQuery) (OrderFormResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderFormResponse{}, err
	}

	r, err := loadRound(ctx, h.rounds.db, query.RoundID())
	if err != nil {
		return OrderFormResponse{}, err
	}

	customers, err := h.customers.Handle(ctx, NewGetCustomersQuery("", true))
	if err != nil {
		return OrderFormResponse{}, err
	}

	products, err := h.products.Handle(ctx, NewGetProductsQuery("", true))
	if err != nil {
		return OrderFormResponse{}, err
	}

	return OrderFormResponse{Round: r, Customers: customers, Products: products}, nil
}
