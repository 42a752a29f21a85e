// Package core holds the expense value types and the parsing of the raw
// text fields a user types in.
//
// This file contains the amount parsing and the cents based Money helpers.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds checked before any arithmetic on a parsed amount.
const (
	minExponent      = -30
	maxExponent      = 20
	maxIntegerDigits = 19
)

// ParseAmount converts a decimal string to Money, rounding half away from
// zero to the cent.
//
// Any sign is accepted and exponents are allowed, so "1e3" is 1000.00.
// Values that do not fit in int64 cents, and amounts written with more than
// 30 decimal places, are rejected.
//
// Examples:
//
//	ParseAmount("250.5")   -> 25050
//	ParseAmount("12.345")  -> 1235
//	ParseAmount("-3")      -> -300
//	ParseAmount("abc")     -> ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	// Rounding allocates a power of ten as large as the exponent, so
	// absurd exponents are rejected first.
	if d.Exponent() < minExponent || d.Exponent() > maxExponent ||
		len(d.Abs().Coefficient().String())+int(d.Exponent()) > maxIntegerDigits {
		return Money{}, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	cents := d.Round(2).Shift(2)
	if !cents.IsInteger() || !cents.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	return Money{Cents: cents.IntPart()}, nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Add returns m + n.
func (m Money) Add(n Money) Money {
	return Money{Cents: m.Cents + n.Cents}
}

// String formats the amount with exactly two decimals and no grouping, e.g. "1050.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Compact drops trailing zero decimals but keeps at least one, e.g. "250.5" or "1000.0".
func (m Money) Compact() string {
	s := m.Decimal().String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
