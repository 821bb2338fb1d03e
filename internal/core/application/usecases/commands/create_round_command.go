package commands

import (
	"errors"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateRoundCommandIsNotConstructed = errors.New(
	"CreateRoundCommand must be created via NewCreateRoundCommand constructor",
)

// CreateRoundCommand opens a new delivery round that immediately becomes the
// active one. A zero date means today.
//
// Example:
//
//	cmd, err := NewCreateRoundCommand(kernel.NewUUID(), time.Time{}, decimal.RequireFromString("42.5"))
type CreateRoundCommand struct { //nolint:recvcheck //using for validation
	roundID  kernel.UUID
	date     time.Time
	travelKm decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateRoundCommand(roundID kernel.UUID, date time.Time, travelKm decimal.Decimal) (CreateRoundCommand, error) {
	cmd := CreateRoundCommand{
		date:     date,
		travelKm: travelKm,
		guard:    guard.NewConstructorGuard(),
	}

	if err := roundID.Validate(); err != nil {
		return CreateRoundCommand{}, err
	}
	cmd.roundID = roundID

	return cmd, nil
}

func (c CreateRoundCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoundCommandIsNotConstructed)
}

func (c CreateRoundCommand) RoundID() kernel.UUID       { return c.roundID }
func (c CreateRoundCommand) Date() time.Time            { return c.date }
func (c CreateRoundCommand) TravelKm() decimal.Decimal { return c.travelKm }
