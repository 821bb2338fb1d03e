package queries

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery filters products by a case-insensitive substring of name or unit.
type GetProductsQuery struct {
	search     string
	activeOnly bool
	id         *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductsQuery(search string, activeOnly bool) GetProductsQuery {
	return GetProductsQuery{search: search, activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func NewGetProductQuery(id kernel.UUID) (GetProductsQuery, error) {
	if err := id.Validate(); err != nil {
		return GetProductsQuery{}, err
	}
	return GetProductsQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

type ProductResponse struct {
	ID        kernel.UUID
	Name      string
	Unit      string
	SellPrice decimal.Decimal
	BuyPrice  decimal.Decimal
	Active    bool
}

type productRow struct {
	ID        uuid.UUID
	Name      string
	Unit      string
	SellPrice decimal.Decimal
	BuyPrice  decimal.Decimal
	Active    bool
}

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("products").Select("id, name, unit, sell_price, buy_price, active")
	if query.id != nil {
		tx = tx.Where("id = ?", query.id.Bytes())
	}
	if query.activeOnly {
		tx = tx.Where("active = ?", true)
	}
	if pattern := likePattern(query.search); pattern != "" {
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(unit) LIKE ?", pattern, pattern)
	}

	var rows []productRow
	if err := tx.Order("name").Order("id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		id, err := toKernelID(row.ID)
		if err != nil {
			return nil, err
		}
		products = append(products, ProductResponse{
			ID:        id,
			Name:      row.Name,
			Unit:      row.Unit,
			SellPrice: row.SellPrice.Round(kernel.Places),
			BuyPrice:  row.BuyPrice.Round(kernel.Places),
			Active:    row.Active,
		})
	}

	return products, nil
}

func (h GetProductsQueryHandler) One(ctx context.Context, query GetProductsQuery) (ProductResponse, error) {
	products, err := h.Handle(ctx, query)
	if err != nil {
		return ProductResponse{}, err
	}
	if len(products) == 0 {
		id := ""
		if query.id != nil {
			id = query.id.String()
		}
		return ProductResponse{}, errs.NewObjectNotFoundError("product", id)
	}
	return products[0], nil
}
