package customer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"
	"meatmanager/internal/pkg/guard"
)

const (
	maxNameLength  = 120
	maxPhoneLength = 40
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the aggregate root for a person ordering against rounds.
type Customer struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool
	notes  string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer. Name is required; all strings are trimmed.
func NewCustomer(id kernel.UUID, name, phone string, active bool, notes string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.Edit(name, phone, active, notes),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(id kernel.UUID, name, phone string, active bool, notes string) (*Customer, error) {
	return NewCustomer(id, name, phone, active, notes)
}

// Edit replaces the editable fields. On error the customer is left unchanged.
func (c *Customer) Edit(name, phone string, active bool, notes string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var nameErr error
	switch {
	case name == "":
		nameErr = ErrNameIsRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		nameErr = errs.NewValueIsOutOfRangeError("name length", utf8.RuneCountInString(name), 1, maxNameLength)
	}

	var phoneErr error
	if utf8.RuneCountInString(phone) > maxPhoneLength {
		phoneErr = errs.NewValueIsOutOfRangeError("phone length", utf8.RuneCountInString(phone), 0, maxPhoneLength)
	}

	if err := errors.Join(nameErr, phoneErr); err != nil {
		return err
	}

	c.name = name
	c.phone = phone
	c.active = active
	c.notes = strings.TrimSpace(notes)
	return nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Phone() string   { return c.phone }
func (c *Customer) IsActive() bool  { return c.active }
func (c *Customer) Notes() string   { return c.notes }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
