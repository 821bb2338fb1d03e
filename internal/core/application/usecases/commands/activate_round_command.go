package commands

import (
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"
)

var ErrActivateRoundCommandIsNotConstructed = errors.New(
	"ActivateRoundCommand must be created via NewActivateRoundCommand constructor",
)

// ActivateRoundCommand makes one round the active one and deactivates all others.
type ActivateRoundCommand struct { //nolint:recvcheck //using for validation
	roundID kernel.UUID

	guard guard.ConstructorGuard
}

func NewActivateRoundCommand(roundID kernel.UUID) (ActivateRoundCommand, error) {
	if err := roundID.Validate(); err != nil {
		return ActivateRoundCommand{}, err
	}

	return ActivateRoundCommand{
		roundID: roundID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ActivateRoundCommand) Validate() error {
	return c.guard.Validate(ErrActivateRoundCommandIsNotConstructed)
}

func (c ActivateRoundCommand) RoundID() kernel.UUID { return c.roundID }
