package services

import (
	"meatmanager/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultKmRate is the travel cost per kilometre when none is configured.
var DefaultKmRate = decimal.RequireFromString("0.30")

// Profit is the result of a round's profit calculation. All values are exact decimals.
type Profit struct {
	Revenue  decimal.Decimal
	Cost     decimal.Decimal
	TravelKm decimal.Decimal
	KmRate   decimal.Decimal
	Travel   decimal.Decimal
	Net      decimal.Decimal
}

// ProfitCalculator computes
//
//	travel = travelKm × kmRate
//	profit = revenue − cost − travel
//
// with kmRate fixed at construction.
type ProfitCalculator struct {
	kmRate decimal.Decimal
}

// NewProfitCalculator returns a calculator for the given per-kilometre rate.
// Negative rates are rejected.
func NewProfitCalculator(kmRate decimal.Decimal) (ProfitCalculator, error) {
	if kmRate.IsNegative() {
		return ProfitCalculator{}, errs.NewValueIsOutOfRangeError("km rate", kmRate, 0, "unbounded")
	}
	return ProfitCalculator{kmRate: kmRate}, nil
}

func (c ProfitCalculator) KmRate() decimal.Decimal {
	return c.kmRate
}

// Calculate derives travel cost and profit from already summed revenue and cost.
func (c ProfitCalculator) Calculate(revenue, cost, travelKm decimal.Decimal) Profit {
	travel := travelKm.Mul(c.kmRate)
	return Profit{
		Revenue:  revenue,
		Cost:     cost,
		TravelKm: travelKm,
		KmRate:   c.kmRate,
		Travel:   travel,
		Net:      revenue.Sub(cost).Sub(travel),
	}
}
