// Package validation provides common validation utilities for flag values.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/gift-calc/pkg/constants"
)

// NumericRange checks that val lies inside [lo, hi] inclusive, returning an
// error naming the offending flag otherwise.
func NumericRange(flag string, val, lo, hi float64) error {
	if val < lo || val > hi {
		return fmt.Errorf("%s must be between %s and %s", flag, trimFloat(lo), trimFloat(hi))
	}
	return nil
}

// Positive checks that val is strictly greater than zero.
func Positive(flag string, val float64) error {
	if val <= 0 {
		return fmt.Errorf("%s must be greater than 0", flag)
	}
	return nil
}

// CurrencyCode normalizes a currency token to upper case. Tokens shorter than
// three characters are rejected; no ISO list validation is performed.
func CurrencyCode(flag, code string) (string, error) {
	if len(code) < constants.MinCurrencyLength {
		return "", fmt.Errorf("%s requires a currency code", flag)
	}
	return strings.ToUpper(code), nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
