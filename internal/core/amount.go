// Package core provides the domain types shared by the wire client,
// the state store and the transaction workflow.
//
// This file contains amount parsing. Amounts travel as float64
// magnitudes; the income/expense direction is carried separately by the
// transaction's Type flag and never by a sign.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a form amount string to its positive magnitude.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Returns ErrInvalidAmount for empty input, non-numeric input,
// non-finite values, and values that are not strictly greater than 0.
// The MaxAmount limit is checked separately so it can surface its own
// message.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Magnitude strips the sign from an amount for editing. Stored amounts
// are already non-negative but older rows may predate that invariant.
func Magnitude(amount float64) float64 {
	return math.Abs(amount)
}

// FormatAmount renders an amount the way the form expects it: no
// exponent, no trailing zeros beyond what the value needs.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
