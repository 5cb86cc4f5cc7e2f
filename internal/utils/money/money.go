// Package money holds currency arithmetic helpers. Totals are accumulated
// in integer cents so that summing many small decimal amounts cannot drift
// the way binary floating point does.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Cents rounds an amount to the nearest cent and returns it as an integer
// count of minor currency units.
func Cents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// SumCents totals a list of amounts by accumulating integer cents and
// converting back to a decimal at the end.
func SumCents(amounts []decimal.Decimal) decimal.Decimal {
	var total int64
	for _, a := range amounts {
		total += Cents(a)
	}
	return decimal.NewFromInt(total).Div(hundred)
}
