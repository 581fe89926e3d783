package money

import (
	"github.com/shopspring/decimal"
)

// centTolerance is the allowed drift when reconciling caller-supplied totals.
var centTolerance = decimal.New(1, -2)

// Round normalizes a monetary amount to 2 decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Reconciles reports whether subtotal + tax equals total within one cent.
func Reconciles(subtotal, tax, total decimal.Decimal) bool {
	return subtotal.Add(tax).Sub(total).Abs().LessThanOrEqual(centTolerance)
}

// IsNegative reports whether the amount is below zero.
func IsNegative(d decimal.Decimal) bool {
	return d.IsNegative()
}

// IsPositive reports whether the amount is strictly above zero.
func IsPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}
