// Package core provides the sale ledger domain values and the query engine.
//
// This file contains money parsing and formatting. Ledger sources store
// amounts as free-form currency strings, so the parser is deliberately
// tolerant about symbols and separators.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a currency string to cents.
//
// It strips currency symbols and spaces, then handles both separator
// conventions: when the string contains both ',' and '.', the comma is a
// thousands separator ("1,234.56"); commas alone are thousands
// separators when they group digits in threes ("5,320"), otherwise a
// lone comma is a decimal separator ("12,34"). Half-up rounding is
// applied on the third decimal place. Zero and negative amounts are
// accepted; the ledger does not enforce non-negativity.
//
// Examples:
//   ParseAmount("$5,320")   -> 532000, nil
//   ParseAmount("12,34")    -> 1234, nil
//   ParseAmount("-7.005")   -> -701, nil
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '$' || r == '€' || r == '£' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	// Separator policy: with both present, or with commas grouping
	// digits in threes, the comma is a thousands separator; a lone
	// comma otherwise separates decimals.
	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ",", "")
	case isThousandsGrouped(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
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
	// Prevent overflow when multiplying by 100.
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Take the first two fractional digits; half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}

// isThousandsGrouped reports whether s is digits with commas grouping
// them in threes, e.g. "5,320" or "1,234,567".
func isThousandsGrouped(s string) bool {
	groups := strings.Split(s, ",")
	if len(groups) < 2 {
		return false
	}
	for i, g := range groups {
		if i == 0 {
			if len(g) == 0 || len(g) > 3 {
				return false
			}
		} else if len(g) != 3 {
			return false
		}
		for _, r := range g {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

// Format renders the amount as a fixed two-decimal string, e.g. "20.00".
func (m Money) Format() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
