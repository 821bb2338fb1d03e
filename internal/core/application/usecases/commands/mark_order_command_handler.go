package commands

import (
	"context"
)

type MarkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderCommandHandler(uowFactory OrderUoWFactory) MarkOrderCommandHandler {
	return MarkOrderCommandHandler{uowFactory: uowFactory}
}

func (h *MarkOrderCommandHandler) Handle(ctx context.Context, cmd MarkOrderCommand) error {
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

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cmd.Flag().apply(o)

	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
