package round

import (
	"errors"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrDateIsRequired        = errs.NewValueIsRequiredError("date")
	ErrRoundIsNotConstructed = errors.New("Round must be created via NewRound constructor")
)

// Round is one delivery cycle.
type Round struct {
	id       kernel.UUID
	date     time.Time
	travelKm decimal.Decimal
	isActive bool

	guard guard.ConstructorGuard
}

// NewRound creates an inactive round. The date is reduced to its calendar day
// and travelKm is rounded to kernel.Places; negative distances are rejected.
func NewRound(id kernel.UUID, date time.Time, travelKm decimal.Decimal) (*Round, error) {
	return RestoreRound(id, date, travelKm, false)
}

// RestoreRound rebuilds a round loaded from storage.
func RestoreRound(id kernel.UUID, date time.Time, travelKm decimal.Decimal, isActive bool) (*Round, error) {
	r := &Round{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDate(date),
		r.setTravelKm(travelKm),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Round) Validate() error {
	if r == nil {
		return ErrRoundIsNotConstructed
	}
	return r.guard.Validate(ErrRoundIsNotConstructed)
}

func (r *Round) ID() kernel.UUID           { return r.id }
func (r *Round) Date() time.Time           { return r.date }
func (r *Round) TravelKm() decimal.Decimal { return r.travelKm }
func (r *Round) IsActive() bool            { return r.isActive }

func (r *Round) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Round) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	r.date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (r *Round) setTravelKm(travelKm decimal.Decimal) error {
	travelKm = travelKm.Round(kernel.Places)
	if travelKm.IsNegative() || travelKm.GreaterThan(kernel.MaxAmount) {
		return errs.NewValueIsOutOfRangeError("travel km", travelKm, 0, kernel.MaxAmount)
	}
	r.travelKm = travelKm
	return nil
}
