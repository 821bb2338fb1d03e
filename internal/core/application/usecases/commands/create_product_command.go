package commands

import (
	"context"
	"errors"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// ProductDetails are the editable fields of a product. A blank unit means kg.
type ProductDetails struct {
	Name      string
	Unit      string
	SellPrice decimal.Decimal
	BuyPrice  decimal.Decimal
	Active    bool
}

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	details   ProductDetails

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(productID kernel.UUID, details ProductDetails) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID  { return c.productID }
func (c CreateProductCommand) Details() ProductDetails { return c.details }

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Details()
	p, err := product.NewProduct(cmd.ProductID(), d.Name, d.Unit, d.SellPrice, d.BuyPrice, d.Active)
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

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
