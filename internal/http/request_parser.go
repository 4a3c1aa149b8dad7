// Package http serves the query form and the JSON query API.
//
// This file parses and sanitizes query parameters into a typed query
// request, applying the time-filter precedence: an exact date wins over a
// year selection, and the year sentinel means no time restriction.
package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"vendite/internal/core"
	"vendite/internal/ledger"
)

// QueryParams is a parsed, validated query request.
type QueryParams struct {
	Country string
	Product string
	Filter  core.TimeFilter
}

// HasInput reports whether the caller supplied a country or product at
// all, used by the index page to tell "no search yet" from "no match".
func (p QueryParams) HasInput() bool {
	return p.Country != "" || p.Product != ""
}

// ParseQueryParams extracts country, product, and the time filter from
// URL query values. Unparseable date or year values are reported as
// errors; absent ones fall through to the next filter mode.
func ParseQueryParams(q url.Values) (QueryParams, error) {
	params := QueryParams{
		Country: sanitizeInput(q.Get("country")),
		Product: sanitizeInput(q.Get("product")),
	}

	yearRaw := sanitizeInput(q.Get("year"))

	// An exact date makes the year selection irrelevant, so it is parsed
	// first and a malformed year alongside a valid date is ignored rather
	// than rejected.
	if dateRaw := sanitizeInput(q.Get("date")); dateRaw != "" {
		d, ok := ledger.ParseDate(dateRaw)
		if !ok {
			return QueryParams{}, fmt.Errorf("invalid date %q", dateRaw)
		}
		exact := core.ExactDate(d)
		if y, err := strconv.Atoi(yearRaw); err == nil {
			exact = exact.WithYear(y)
		}
		params.Filter = exact
		return params, nil
	}

	filter := core.AllTime()
	if !isYearSentinel(yearRaw) {
		y, err := strconv.Atoi(yearRaw)
		if err != nil {
			return QueryParams{}, fmt.Errorf("invalid year %q", yearRaw)
		}
		filter = core.Year(y)
	}

	params.Filter = filter
	return params, nil
}

// isYearSentinel treats an absent year, the AllYears sentinel, and the
// empty-ledger placeholder all as "no year restriction".
func isYearSentinel(s string) bool {
	if s == "" {
		return true
	}
	if strings.EqualFold(s, core.AllYears) {
		return true
	}
	return strings.EqualFold(s, core.NoYearsFound)
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}
