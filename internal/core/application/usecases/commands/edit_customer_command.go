package commands

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"
)

var ErrEditCustomerCommandIsNotConstructed = errors.New(
	"EditCustomerCommand must be created via NewEditCustomerCommand constructor",
)

type EditCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	details    CustomerDetails

	guard guard.ConstructorGuard
}

func NewEditCustomerCommand(customerID kernel.UUID, details CustomerDetails) (EditCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return EditCustomerCommand{}, err
	}
	return EditCustomerCommand{
		customerID: customerID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c EditCustomerCommand) Validate() error {
	return c.guard.Validate(ErrEditCustomerCommandIsNotConstructed)
}

func (c EditCustomerCommand) CustomerID() kernel.UUID  { return c.customerID }
func (c EditCustomerCommand) Details() CustomerDetails { return c.details }

type EditCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewEditCustomerCommandHandler(uowFactory CustomerUoWFactory) EditCustomerCommandHandler {
	return EditCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *EditCustomerCommandHandler) Handle(ctx context.Context, cmd EditCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	d := cmd.Details()
	if err = c.Edit(d.Name, d.Phone, d.Active, d.Notes); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
