package ledger

import (
	"strings"
	"time"

	"vendite/internal/core"
)

// dateLayouts is the fixed set of accepted date formats, tried in order.
// The original feed writes dates like "04-Jan-22"; exports from other
// tools produce ISO dates and US-style slashed dates. Day-first slashed
// dates ("31/01/2022") are deliberately not accepted: they are ambiguous
// against the US form and the feeds never produce them.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02-Jan-06",
	"2-Jan-06",
	"02-Jan-2006",
	"2-Jan-2006",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses s against the accepted layouts and truncates the
// result to its calendar date. The boolean is false when no layout
// matches; callers drop such rows rather than failing the load.
func ParseDate(s string) (core.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return core.DateOf(t), true
		}
	}
	return core.Date{}, false
}
