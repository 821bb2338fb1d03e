package commands

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/guard"
)

var ErrEditProductCommandIsNotConstructed = errors.New(
	"EditProductCommand must be created via NewEditProductCommand constructor",
)

// EditProductCommand changes the catalogue entry. Order items created earlier
// keep the prices they were taken with.
type EditProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   ProductDetails

	guard guard.ConstructorGuard
}

func NewEditProductCommand(productID kernel.UUID, details ProductDetails) (EditProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return EditProductCommand{}, err
	}
	return EditProductCommand{
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EditProductCommand) Validate() error {
	return c.guard.Validate(ErrEditProductCommandIsNotConstructed)
}

func (c EditProductCommand) ProductID() kernel.UUID  { return c.productID }
func (c EditProductCommand) Details() ProductDetails { return c.details }

type EditProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewEditProductCommandHandler(uowFactory ProductUoWFactory) EditProductCommandHandler {
	return EditProductCommandHandler{uowFactory: uowFactory}
}

func (h *EditProductCommandHandler) Handle(ctx context.Context, cmd EditProductCommand) error {
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

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	d := cmd.Details()
	if err = p.Edit(d.Name, d.Unit, d.SellPrice, d.BuyPrice, d.Active); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
