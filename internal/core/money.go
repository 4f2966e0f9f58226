// Package core provides money parsing and handling utilities.
//
// Amounts are held as integer cents internally; the wire and persisted
// representation is a plain decimal number.
package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Money is a non-negative monetary magnitude in cents. The sign of a
// transaction is carried by its Type, never by the stored value.
type Money struct {
	Cents int64
}

// ParseAmountToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot (12.34) and comma
// (12,34) separators are accepted. Zero is a valid amount; signs are
// not.
//
// Examples:
//
//	ParseAmountToCents("250.50") -> 25050, nil
//	ParseAmountToCents("12,34")  -> 1234, nil
//	ParseAmountToCents("12.346") -> 1235, nil (rounds up)
func ParseAmountToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// Float returns the decimal value for display and serialization.
// Use cents for calculations to avoid floating-point precision issues.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// MarshalJSON emits the amount as a decimal number, e.g. 250.5.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Float())
}

// UnmarshalJSON never fails: persisted records with missing or
// non-numeric amounts contribute zero rather than poisoning the whole
// collection. Numbers and numeric strings are accepted; anything else
// coerces to zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	m.Cents = 0

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		m.Cents = int64(math.Round(f * 100))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if cents, perr := ParseAmountToCents(s); perr == nil {
			m.Cents = cents
		}
	}
	return nil
}
