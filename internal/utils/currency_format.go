package utils

import (
	"github.com/shopspring/decimal"
)

// FormatFixed renders amount rounded half away from zero with exactly scale fractional digits.
// Example: 180 with scale 4 returns "180.0000"
// Example: 0.12345 with scale 4 returns "0.1235"
func FormatFixed(amount decimal.Decimal, scale int32) string {
	return amount.StringFixed(scale)
}
