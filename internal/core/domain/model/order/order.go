package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderHasNoItems is returned when an order without lines is about to be stored.
	ErrOrderHasNoItems       = errors.New("order has no items")
	// ErrDuplicateProduct is returned when restoring an order with two lines for one product.
	ErrDuplicateProduct      = errors.New("order has more than one item for the same product")
)

// Order is the aggregate root for what one customer ordered in one round.
//
// Order follows these invariants:
//   - belongs to exactly one customer and one round
//   - holds at most one item per product
//   - item prices are frozen at item creation
//   - must not be persisted while IsEmpty
//
// Example:
//
//	o, _ := order.NewOrder(kernel.NewUUID(), customerID, roundID, order.SourceCall, "", time.Now())
//	for _, p := range activeProducts {
//	    if err := o.SetQuantity(p, kernel.ParseQuantity(input[p.ID()])); err != nil {
//	        return err
//	    }
//	}
//	if o.IsEmpty() {
//	    return ErrNoItemsEntered
//	}
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	roundID    kernel.UUID
	source     Source
	comment    string
	paid       bool
	pickedUp   bool
	createdAt  time.Time
	items      []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates an unpaid, not picked up order without items.
func NewOrder(
	id, customerID, roundID kernel.UUID,
	source Source,
	comment string,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, customerID, roundID, source, comment, false, false, createdAt, nil)
}

// RestoreOrder rebuilds an order and its items loaded from storage.
func RestoreOrder(
	id, customerID, roundID kernel.UUID,
	source Source,
	comment string,
	paid, pickedUp bool,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{
		paid:      paid,
		pickedUp:  pickedUp,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		roundID.Validate(),
		o.ChangeDetails(source, comment),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.id = id
	o.customerID = customerID
	o.roundID = roundID
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID         { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) RoundID() kernel.UUID    { return o.roundID }
func (o *Order) Source() Source          { return o.source }
func (o *Order) Comment() string         { return o.comment }
func (o *Order) IsPaid() bool            { return o.paid }
func (o *Order) IsPickedUp() bool        { return o.pickedUp }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }

// Items returns the order lines. The slice is a copy; the items are not.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// Item returns the line for productID, if any.
func (o *Order) Item(productID kernel.UUID) (*Item, bool) {
	idx := o.itemIndex(productID)
	if idx < 0 {
		return nil, false
	}
	return o.items[idx], true
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// SetQuantity reconciles the line for p with the requested quantity:
//   - not positive: the line is removed if it exists
//   - positive, line exists: only the quantity changes, prices stay frozen
//   - positive, no line: a new line is created with p's current prices
func (o *Order) SetQuantity(p *product.Product, quantity decimal.Decimal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	quantity = quantity.Round(kernel.Places)
	idx := o.itemIndex(p.ID())

	if !quantity.IsPositive() {
		if idx >= 0 {
			o.items = slices.Delete(o.items, idx, idx+1)
		}
		return nil
	}

	if idx >= 0 {
		return o.items[idx].setQuantity(quantity)
	}

	item, err := newItem(kernel.NewUUID(), p, quantity)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// ChangeDetails sets the source and the free-text comment.
func (o *Order) ChangeDetails(source Source, comment string) error {
	if err := source.Validate(); err != nil {
		return err
	}
	o.source = source
	o.comment = strings.TrimSpace(comment)
	return nil
}

// MarkPaid is idempotent.
func (o *Order) MarkPaid() {
	o.paid = true
}

// MarkPickedUp is idempotent.
func (o *Order) MarkPickedUp() {
	o.pickedUp = true
}

func (o *Order) itemIndex(productID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(item *Item) bool {
		return item.productID.IsEqual(productID)
	})
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.productID]; dup {
			return ErrDuplicateProduct
		}
		seen[item.productID] = struct{}{}
	}
	o.items = slices.Clone(items)
	return nil
}
