package product

import (
	"errors"
	"strings"
	"unicode/utf8"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// DefaultUnit is used when staff leave the unit blank.
	DefaultUnit = "kg"

	maxNameLength = 120
	maxUnitLength = 20
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the aggregate root for a sellable good and its current prices.
//
// Invariants:
//   - name is non-empty, unit is non-empty (defaults to DefaultUnit)
//   - sell and buy price are non-negative and rounded to kernel.Places
type Product struct {
	id        kernel.UUID
	name      string
	unit      string
	sellPrice decimal.Decimal
	buyPrice  decimal.Decimal
	active    bool

	guard guard.ConstructorGuard
}

// NewProduct creates a product with the given current prices.
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), "Rinderhack", "", decimal.RequireFromString("12.90"),
//	    decimal.RequireFromString("8.40"), true)
//	// p.Unit() == "kg"
func NewProduct(
	id kernel.UUID,
	name, unit string,
	sellPrice, buyPrice decimal.Decimal,
	active bool,
) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.Edit(name, unit, sellPrice, buyPrice, active),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id kernel.UUID,
	name, unit string,
	sellPrice, buyPrice decimal.Decimal,
	active bool,
) (*Product, error) {
	return NewProduct(id, name, unit, sellPrice, buyPrice, active)
}

// Edit replaces name, unit, prices and the active flag. Existing order items
// keep the prices they were created with. On error nothing changes.
func (p *Product) Edit(name, unit string, sellPrice, buyPrice decimal.Decimal, active bool) error {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultUnit
	}

	var nameErr error
	switch {
	case name == "":
		nameErr = ErrNameIsRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("name length", utf8.RuneCountInString(name), 1, maxNameLength)
	}

	var unitErr error
	if utf8.RuneCountInString(unit) > maxUnitLength {
		unitErr = errs.NewValueIsOutOfRangeError("unit length", utf8.RuneCountInString(unit), 1, maxUnitLength)
	}

	if err := errors.Join(
		nameErr,
		unitErr,
		validatePrice("sell price", sellPrice),
		validatePrice("buy price", buyPrice),
	); err != nil {
		return err
	}

	p.name = name
	p.unit = unit
	p.sellPrice = sellPrice.Round(kernel.Places)
	p.buyPrice = buyPrice.Round(kernel.Places)
	p.active = active
	return nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID            { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Unit() string               { return p.unit }
func (p *Product) SellPrice() decimal.Decimal { return p.sellPrice }
func (p *Product) BuyPrice() decimal.Decimal  { return p.buyPrice }
func (p *Product) IsActive() bool             { return p.active }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func validatePrice(param string, price decimal.Decimal) error {
	price = price.Round(kernel.Places)
	if price.IsNegative() || price.GreaterThan(kernel.MaxPrice) {
		return errs.NewValueIsOutOfRangeError(param, price, 0, kernel.MaxPrice)
	}
	return nil
}
