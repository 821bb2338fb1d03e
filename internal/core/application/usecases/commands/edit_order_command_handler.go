package commands

import (
	"context"
)

// EditOrderResult tells the caller whether the edit emptied and removed the order.
type EditOrderResult struct {
	OrderDeleted bool
}

// EditOrderCommandHandler reconciles an order against the whole catalogue,
// inactive products included, so lines for products that were switched off
// after ordering can still be changed or removed.
//
// Existing lines keep their price snapshot; only new lines read current prices.
// An order left without lines is deleted.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) (EditOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return EditOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EditOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return EditOrderResult{}, err
	}

	products, err := uow.ProductRepository().GetAll(ctx, false)
	if err != nil {
		return EditOrderResult{}, err
	}

	for _, p := range products {
		if err = o.SetQuantity(p, cmd.Quantity(p.ID())); err != nil {
			return EditOrderResult{}, err
		}
	}

	result := EditOrderResult{}
	if o.IsEmpty() {
		if err = orders.Delete(ctx, o.ID()); err != nil {
			return EditOrderResult{}, err
		}
		result.OrderDeleted = true
	} else {
		source, changed := cmd.Source()
		if !changed {
			source = o.Source()
		}
		if err = o.ChangeDetails(source, cmd.Comment()); err != nil {
			return EditOrderResult{}, err
		}
		if err = orders.Update(ctx, o); err != nil {
			return EditOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return EditOrderResult{}, err
	}

	return result, nil
}
