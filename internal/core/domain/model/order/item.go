package order

import (
	"errors"
	"fmt"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via its order")

// Item is one order line. Its prices are a snapshot of the product taken when
// the line was created; Item has no way to change them afterwards.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  decimal.Decimal
	sellPrice decimal.Decimal
	buyPrice  decimal.Decimal

	guard guard.ConstructorGuard
}

func newItem(id kernel.UUID, p *product.Product, quantity decimal.Decimal) (*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return RestoreItem(id, p.ID(), quantity, p.SellPrice(), p.BuyPrice())
}

// RestoreItem rebuilds an order line loaded from storage, prices included.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity, sellPrice, buyPrice decimal.Decimal,
) (*Item, error) {
	item := &Item{
		sellPrice: sellPrice,
		buyPrice:  buyPrice,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.id = id
	item.productID = productID
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID            { return i.id }
func (i *Item) ProductID() kernel.UUID     { return i.productID }
func (i *Item) Quantity() decimal.Decimal  { return i.quantity }
func (i *Item) SellPrice() decimal.Decimal { return i.sellPrice }
func (i *Item) BuyPrice() decimal.Decimal  { return i.buyPrice }

func (i *Item) setQuantity(quantity decimal.Decimal) error {
	quantity = quantity.Round(kernel.Places)
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if quantity.GreaterThan(kernel.MaxAmount) {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, "0.01", kernel.MaxAmount)
	}
	i.quantity = quantity
	return nil
}
