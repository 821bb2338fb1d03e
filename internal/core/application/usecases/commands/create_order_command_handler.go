package commands

import (
	"context"
	"time"

	"meatmanager/internal/core/domain/model/order"
)

// CreateOrderCommandHandler builds an order from the active catalogue. Each
// product with a positive quantity becomes an item carrying the product's
// current prices. Nothing is stored when no item results.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.RoundRepository().Get(ctx, cmd.RoundID()); err != nil {
		return err
	}
	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	products, err := uow.ProductRepository().GetAll(ctx, true)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.RoundID(), cmd.Source(), cmd.Comment(), h.now())
	if err != nil {
		return err
	}

	for _, p := range products {
		if err = o.SetQuantity(p, cmd.Quantity(p.ID())); err != nil {
			return err
		}
	}

	if o.IsEmpty() {
		return ErrNoItemsEntered
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
