package models

import "github.com/shopspring/decimal"

// LineTotal multiplies a unit price by a quantity with exact decimal
// math, so 19.99 * 3 comes out as 59.97 and not 59.970000000000006.
func LineTotal(price float64, quantity int) float64 {
	total := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	f, _ := total.Float64()
	return f
}
