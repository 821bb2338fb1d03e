package commands

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CustomerDetails are the editable fields of a customer.
type CustomerDetails struct {
	Name   string
	Phone  string
	Active bool
	Notes  string
}

type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	details    CustomerDetails

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(customerID kernel.UUID, details CustomerDetails) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{
		customerID: customerID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID  { return c.customerID }
func (c CreateCustomerCommand) Details() CustomerDetails { return c.details }

type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Details()
	c, err := customer.NewCustomer(cmd.CustomerID(), d.Name, d.Phone, d.Active, d.Notes)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
