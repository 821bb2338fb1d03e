package kernel

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of fraction digits kept for prices, quantities and distances.
const Places int32 = 2

// Largest values the storage columns hold: quantities and distances are
// decimal(8,2), prices decimal(10,2).
var (
	MaxAmount = decimal.RequireFromString("999999.99")
	MaxPrice  = decimal.RequireFromString("99999999.99")
)

// ParseDecimal parses a number typed by staff. Surrounding whitespace is
// ignored and both "." and "," are accepted as the decimal separator.
// The result is rounded to Places.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Round(Places), nil
}

// ParseDecimalOrZero is ParseDecimal with blank and unparsable input mapped to zero.
// A mistyped quantity therefore drops the line instead of failing the form.
func ParseDecimalOrZero(raw string) decimal.Decimal {
	d, err := ParseDecimal(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity reads an order-line quantity. Anything that is not a
// positive number after rounding comes back as zero, meaning "no line".
func ParseQuantity(raw string) decimal.Decimal {
	qty := ParseDecimalOrZero(raw)
	if !qty.IsPositive() {
		return decimal.Zero
	}
	return qty
}
