// Package format renders calculated amounts for display.
package format

import (
	"strconv"

	"github.com/iwvelando/gift-calc/pkg/mathutil"
)

// Number renders a value rounded half-up to the given number of fractional
// digits, without trailing-zero padding: a value landing on a whole number
// displays as an integer regardless of the decimals setting.
func Number(value float64, decimals int) string {
	rounded := mathutil.RoundTo(value, decimals)
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Amount renders the final display line: "<amount> <CURRENCY>" with an
// optional " for <recipient>" suffix.
func Amount(value float64, decimals int, currency, recipient string) string {
	out := Number(value, decimals) + " " + currency
	if recipient != "" {
		out += " for " + recipient
	}
	return out
}
