package queries

import (
	"context"
	"errors"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetRoundsQueryIsNotConstructed = errors.New("GetRoundsQuery must be created via NewGetRoundsQuery constructor")

// GetRoundsQuery lists rounds; with ActiveOnly it returns at most the active one.
type GetRoundsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

func NewGetRoundsQuery(activeOnly bool) GetRoundsQuery {
	return GetRoundsQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q GetRoundsQuery) Validate() error {
	return q.guard.Validate(ErrGetRoundsQueryIsNotConstructed)
}

func (q GetRoundsQuery) ActiveOnly() bool { return q.activeOnly }

type RoundResponse struct {
	ID         kernel.UUID
	Date       time.Time
	TravelKm   decimal.Decimal
	IsActive   bool
	OrderCount int64
}

const roundSelect = `
	SELECT
		r.id,
		r.date,
		r.travel_km,
		r.is_active,
		(SELECT COUNT(*) FROM orders o WHERE o.round_id = r.id) AS order_count
	FROM rounds r`

type roundRow struct {
	ID         uuid.UUID
	Date       time.Time
	TravelKm   decimal.Decimal
	IsActive   bool
	OrderCount int64
}

func (r roundRow) toResponse() (RoundResponse, error) {
	id, err := toKernelID(r.ID)
	if err != nil {
		return RoundResponse{}, err
	}
	return RoundResponse{
		ID:         id,
		Date:       r.Date,
		TravelKm:   r.TravelKm.Round(kernel.Places),
		IsActive:   r.IsActive,
		OrderCount: r.OrderCount,
	}, nil
}

type GetRoundsQueryHandler struct {
	db *gorm.DB
}

func NewGetRoundsQueryHandler(db *gorm.DB) GetRoundsQueryHandler {
	return GetRoundsQueryHandler{db: db}
}

// Handle orders the active round first, then the rest by date, newest first.
func (h GetRoundsQueryHandler) Handle(ctx context.Context, query GetRoundsQuery) ([]RoundResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := roundSelect
	args := []any{}
	if query.ActiveOnly() {
		sql += ` WHERE r.is_active = ?`
		args = append(args, true)
	}
	sql += ` ORDER BY r.is_active DESC, r.date DESC, r.id`

	var rows []roundRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	rounds := make([]RoundResponse, 0, len(rows))
	for _, row := range rows {
		r, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}

	return rounds, nil
}

// Active returns the active round, or nil when there is none.
func (h GetRoundsQueryHandler) Active(ctx context.Context) (*RoundResponse, error) {
	rounds, err := h.Handle(ctx, NewGetRoundsQuery(true))
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil //nolint:nilnil
	}
	return &rounds[0], nil
}
