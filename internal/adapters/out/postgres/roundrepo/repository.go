package roundrepo

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/round"
	"meatmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRoundRepository implements ports.RoundRepository using GORM.
type GormRoundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRoundRepository(db *gorm.DB, tracker aggregateTracker) *GormRoundRepository {
	return &GormRoundRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the round as given. An active round conflicts with the unique
// index if another one is already active; use Activate to switch.
func (r *GormRoundRepository) Add(ctx context.Context, aggregate *round.Round) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRoundRepository) Get(ctx context.Context, id kernel.UUID) (*round.Round, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RoundDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("round", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Activate clears the flag on all other rounds first, then sets it on id.
// The order matters for the partial unique index.
func (r *GormRoundRepository) Activate(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Model(&RoundDTO{}).
		Where("id <> ? AND is_active = ?", id.Bytes(), true).
		Update("is_active", false).Error; err != nil {
		return err
	}

	result := db.Model(&RoundDTO{}).Where("id = ?", id.Bytes()).Update("is_active", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("round", id.String())
	}

	return nil
}
