package core

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// AllYears is the sentinel year option meaning "no time restriction".
	AllYears = "All"

	// NoYearsFound is the placeholder shown when the ledger holds no records.
	NoYearsFound = "No years found"
)

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// SaleRecord is one row of the ledger: a country/product/date/amount/boxes
	// tuple. The matching keys are derived once at construction and used only
	// for equality comparison, never shown to callers.
	SaleRecord struct {
		Country string
		Product string
		Amount  Money
		// Boxes stays fractional at rest; totals are truncated to whole
		// boxes only when a query result is reduced.
		Boxes float64
		Date  Date

		countryKey string
		productKey string
	}
)

// NewDate creates a Date at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// SameDay reports whether both dates fall on the same calendar day,
// ignoring any time-of-day component.
func (d Date) SameDay(other Date) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NewSaleRecord builds a record and derives its matching keys.
func NewSaleRecord(country, product string, amount Money, boxes float64, date Date) SaleRecord {
	return SaleRecord{
		Country:    country,
		Product:    product,
		Amount:     amount,
		Boxes:      boxes,
		Date:       date,
		countryKey: MatchKey(country),
		productKey: MatchKey(product),
	}
}

// MatchKey is the lowercase, whitespace-trimmed form used for equality.
func MatchKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ledger is the immutable collection of loaded sale records plus the
// derived year options. It is safe for concurrent readers; nothing
// mutates a ledger after construction.
type Ledger struct {
	records []SaleRecord
	years   []string
}

// NewLedger copies the given records, derives any missing matching keys,
// and computes the year options: distinct years sorted descending, with
// the AllYears sentinel prepended. An empty ledger yields the sentinel
// followed by the NoYearsFound placeholder.
func NewLedger(records []SaleRecord) *Ledger {
	rs := make([]SaleRecord, len(records))
	copy(rs, records)
	for i := range rs {
		if rs[i].countryKey == "" {
			rs[i].countryKey = MatchKey(rs[i].Country)
		}
		if rs[i].productKey == "" {
			rs[i].productKey = MatchKey(rs[i].Product)
		}
	}

	seen := map[int]struct{}{}
	var years []int
	for _, r := range rs {
		y := r.Date.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	opts := make([]string, 0, len(years)+2)
	opts = append(opts, AllYears)
	if len(years) == 0 {
		opts = append(opts, NoYearsFound)
	}
	for _, y := range years {
		opts = append(opts, strconv.Itoa(y))
	}

	return &Ledger{records: rs, years: opts}
}

// Records returns a copy of the ledger's records.
func (l *Ledger) Records() []SaleRecord {
	out := make([]SaleRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Years returns the year options, sentinel first.
func (l *Ledger) Years() []string {
	out := make([]string, len(l.years))
	copy(out, l.years)
	return out
}

// Len returns the number of retained records.
func (l *Ledger) Len() int {
	return len(l.records)
}
