package commands

import (
	"fmt"

	"meatmanager/internal/core/domain/model/order"
	"meatmanager/internal/pkg/errs"
)

// OrderFlag names one of the two status flags of an order.
type OrderFlag string

const (
	FlagPaid     OrderFlag = "paid"
	FlagPickedUp OrderFlag = "picked_up"
)

func (f OrderFlag) Validate() error {
	switch f {
	case FlagPaid, FlagPickedUp:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("flag", fmt.Errorf("unknown order flag %q", string(f)))
	}
}

func (f OrderFlag) apply(o *order.Order) {
	switch f {
	case FlagPaid:
		o.MarkPaid()
	case FlagPickedUp:
		o.MarkPickedUp()
	}
}
