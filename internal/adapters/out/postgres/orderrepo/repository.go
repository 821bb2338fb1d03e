package orderrepo

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"
	"meatmanager/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and all of its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return order.ErrOrderHasNoItems
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	if err := db.Omit(clause.Associations).Create(&dto.Items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order columns and reconciles items by id: missing items
// are deleted, new ones inserted, existing ones get only their quantity
// rewritten.
//
// Example:
//
//	o, _ := repo.Get(ctx, id)
//	_ = o.SetQuantity(rinderhack, decimal.RequireFromString("2"))
//	_ = repo.Update(ctx, o) // sell_price/buy_price of the existing line stay untouched
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return order.ErrOrderHasNoItems
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"source":    dto.Source,
			"comment":   dto.Comment,
			"paid":      dto.Paid,
			"picked_up": dto.PickedUp,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	keep := make([]uuid.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		keep = append(keep, item.ID)
	}
	if err := db.Where("order_id = ? AND id NOT IN ?", dto.ID, keep).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	if err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).
		Create(&dto.Items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func (r *GormOrderRepository) MarkAllPaid(ctx context.Context, roundID kernel.UUID) error {
	return r.setFlagForRound(ctx, roundID, "paid")
}

func (r *GormOrderRepository) MarkAllPickedUp(ctx context.Context, roundID kernel.UUID) error {
	return r.setFlagForRound(ctx, roundID, "picked_up")
}

func (r *GormOrderRepository) setFlagForRound(ctx context.Context, roundID kernel.UUID, column string) error {
	if err := roundID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("round_id = ?", roundID.Bytes()).
		Update(column, true).Error
}
