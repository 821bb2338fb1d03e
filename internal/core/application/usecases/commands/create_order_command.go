package commands

import (
	"errors"
	"maps"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrNoItemsEntered is returned when every submitted quantity is blank,
	// zero or negative.
	ErrNoItemsEntered = errors.New("no items entered")
)

// Quantities maps product ids to the entered amount. Products that are missing
// from the map count as zero.
type Quantities map[kernel.UUID]decimal.Decimal

// CreateOrderCommand takes an order for one customer in one round.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), roundID, customerID, "whatsapp", "",
//	    Quantities{rinderhackID: decimal.RequireFromString("1.5")})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd) // ErrNoItemsEntered if nothing positive was entered
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	roundID    kernel.UUID
	customerID kernel.UUID
	source     order.Source
	comment    string
	quantities Quantities

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates ids and source. A blank source means call.
func NewCreateOrderCommand(
	orderID, roundID, customerID kernel.UUID,
	source, comment string,
	quantities Quantities,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		comment:    comment,
		quantities: maps.Clone(quantities),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRoundID(roundID),
		cmd.setCustomerID(customerID),
		cmd.setSource(source),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) RoundID() kernel.UUID    { return c.roundID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Source() order.Source    { return c.source }
func (c CreateOrderCommand) Comment() string         { return c.comment }

// Quantity returns the entered amount for a product, zero when none was given.
func (c CreateOrderCommand) Quantity(productID kernel.UUID) decimal.Decimal {
	return c.quantities[productID]
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRoundID(roundID kernel.UUID) error {
	if err := roundID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("round", err)
	}
	c.roundID = roundID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("customer")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setSource(raw string) error {
	source, err := order.ParseSource(raw, order.DefaultSource)
	if err != nil {
		return err
	}
	c.source = source
	return nil
}
