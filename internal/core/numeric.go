// Package core provides the entry domain types and numeric helpers.
//
// This file contains the tolerant coercion used when a stored numeric column
// is turned back into a number, and the rounding applied to derived figures.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseMacro converts the raw text of a numeric column to a float64.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and any
// surrounding whitespace. A blank, non-finite, or otherwise unparsable value
// returns ErrInvalidNumber; callers decide whether that drops the value from
// a sum or fails the operation.
//
// Examples:
//
//	ParseMacro("12.5")  -> 12.5, nil
//	ParseMacro("12,5")  -> 12.5, nil
//	ParseMacro("abc")   -> 0, ErrInvalidNumber
//	ParseMacro("nan")   -> 0, ErrInvalidNumber
func ParseMacro(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// FormatMacro renders a numeric value the way it is persisted: shortest
// decimal form with no imposed precision.
func FormatMacro(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round2 rounds to two decimal places, half away from zero. All derived
// figures pass through this before display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
