package commands

import (
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"
)

var ErrMarkOrderCommandIsNotConstructed = errors.New(
	"MarkOrderCommand must be created via NewMarkOrderCommand constructor",
)

// MarkOrderCommand sets the paid or picked-up flag of a single order. The flags
// only ever go from false to true.
//
// Example:
//
//	cmd, err := NewMarkOrderCommand(orderID, FlagPickedUp)
type MarkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	flag    OrderFlag

	guard guard.ConstructorGuard
}

func NewMarkOrderCommand(orderID kernel.UUID, flag OrderFlag) (MarkOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), flag.Validate()); err != nil {
		return MarkOrderCommand{}, err
	}

	return MarkOrderCommand{
		orderID: orderID,
		flag:    flag,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderCommandIsNotConstructed)
}

func (c MarkOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c MarkOrderCommand) Flag() OrderFlag      { return c.flag }
