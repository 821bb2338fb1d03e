package queries

import (
	"context"
)

// RoundDashboardResponse bundles everything shown for one round.
type RoundDashboardResponse struct {
	Round        RoundResponse
	ShoppingList []ShoppingListLine
	PackList     []PackListOrder
	Profit       RoundProfitResponse
}

type GetRoundDashboardQueryHandler struct {
	shoppingList GetShoppingListQueryHandler
	packList     GetPackListQueryHandler
	profit       GetRoundProfitQueryHandler
}

func NewGetRoundDashboardQueryHandler(
	shoppingList GetShoppingListQueryHandler,
	packList GetPackListQueryHandler,
	profit GetRoundProfitQueryHandler,
) GetRoundDashboardQueryHandler {
	return GetRoundDashboardQueryHandler{
		shoppingList: shoppingList,
		packList:     packList,
		profit:       profit,
	}
}

func (h GetRoundDashboardQueryHandler) Handle(ctx context.Context, query RoundQuery) (RoundDashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return RoundDashboardResponse{}, err
	}

	r, err := loadRound(ctx, h.profit.db, query.RoundID())
	if err != nil {
		return RoundDashboardResponse{}, err
	}

	shoppingList, err := h.shoppingList.Handle(ctx, query)
	if err != nil {
		return RoundDashboardResponse{}, err
	}

	packList, err := h.packList.Handle(ctx, query)
	if err != nil {
		return RoundDashboardResponse{}, err
	}

	profit, err := h.profit.Handle(ctx, query)
	if err != nil {
		return RoundDashboardResponse{}, err
	}

	return RoundDashboardResponse{
		Round:        r,
		ShoppingList: shoppingList,
		PackList:     packList,
		Profit:       profit,
	}, nil
}
