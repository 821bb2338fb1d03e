package queries

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery filters customers by a case-insensitive substring of name
// or phone. ActiveOnly restricts the list to active customers.
type GetCustomersQuery struct {
	search     string
	activeOnly bool
	id         *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomersQuery(search string, activeOnly bool) GetCustomersQuery {
	return GetCustomersQuery{search: search, activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

// NewGetCustomerQuery selects a single customer.
func NewGetCustomerQuery(id kernel.UUID) (GetCustomersQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCustomersQuery{}, err
	}
	return GetCustomersQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

type CustomerResponse struct {
	ID     kernel.UUID
	Name   string
	Phone  string
	Active bool
	Notes  string
}

type customerRow struct {
	ID     uuid.UUID
	Name   string
	Phone  string
	Active bool
	Notes  string
}

type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("customers").Select("id, name, phone, active, notes")
	if query.id != nil {
		tx = tx.Where("id = ?", query.id.Bytes())
	}
	if query.activeOnly {
		tx = tx.Where("active = ?", true)
	}
	if pattern := likePattern(query.search); pattern != "" {
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ?", pattern, pattern)
	}

	var rows []customerRow
	if err := tx.Order("name").Order("id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	customers := make([]CustomerResponse, 0, len(rows))
	for _, row := range rows {
		id, err := toKernelID(row.ID)
		if err != nil {
			return nil, err
		}
		customers = append(customers, CustomerResponse{
			ID:     id,
			Name:   row.Name,
			Phone:  row.Phone,
			Active: row.Active,
			Notes:  row.Notes,
		})
	}

	return customers, nil
}

// One returns the single customer selected by NewGetCustomerQuery.
func (h GetCustomersQueryHandler) One(ctx context.Context, query GetCustomersQuery) (CustomerResponse, error) {
	customers, err := h.Handle(ctx, query)
	if err != nil {
		return CustomerResponse{}, err
	}
	if len(customers) == 0 {
		id := ""
		if query.id != nil {
			id = query.id.String()
		}
		return CustomerResponse{}, errs.NewObjectNotFoundError("customer", id)
	}
	return customers[0], nil
}
