package commands

import (
	"errors"
	"maps"
	"strings"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces the quantities of an order. Every product that is
// missing from quantities or has a non-positive amount loses its line.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	source     order.Source
	comment    string
	quantities Quantities

	guard guard.ConstructorGuard
}

// NewEditOrderCommand accepts a blank source, which keeps the order's current one.
func NewEditOrderCommand(orderID kernel.UUID, source, comment string, quantities Quantities) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		comment:    comment,
		quantities: maps.Clone(quantities),
		guard:      guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return EditOrderCommand{}, err
	}
	cmd.orderID = orderID

	if strings.TrimSpace(source) != "" {
		s, err := order.ParseSource(source, order.DefaultSource)
		if err != nil {
			return EditOrderCommand{}, err
		}
		cmd.source = s
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c EditOrderCommand) Comment() string      { return c.comment }

// Source returns the new source and false when the current one is kept.
func (c EditOrderCommand) Source() (order.Source, bool) {
	return c.source, c.source != ""
}

func (c EditOrderCommand) Quantity(productID kernel.UUID) decimal.Decimal {
	return c.quantities[productID]
}
