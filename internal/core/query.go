package core

import "strconv"

// TimeFilter selects which records are eligible before country/product
// matching. A filter may carry an exact date, a calendar year, or neither
// (all time). When both a date and a year are set, the date wins.
type TimeFilter struct {
	date    Date
	hasDate bool
	year    int
	hasYear bool
}

// AllTime returns a filter with no time restriction.
func AllTime() TimeFilter {
	return TimeFilter{}
}

// Year returns a filter restricted to one calendar year.
func Year(year int) TimeFilter {
	return TimeFilter{year: year, hasYear: true}
}

// ExactDate returns a filter restricted to one calendar date.
func ExactDate(d Date) TimeFilter {
	return TimeFilter{date: d, hasDate: true}
}

// WithYear adds a year selection to the filter. It has no effect on the
// records an exact-date filter admits: the date takes precedence.
func (f TimeFilter) WithYear(year int) TimeFilter {
	f.year = year
	f.hasYear = true
	return f
}

// String renders the active window, date taking precedence: "date=2020-01-10",
// "year=2021", or "all".
func (f TimeFilter) String() string {
	if f.hasDate {
		return "date=" + f.date.Time.Format("2006-01-02")
	}
	if f.hasYear {
		return "year=" + strconv.Itoa(f.year)
	}
	return "all"
}

// Admits reports whether a record dated d satisfies the filter.
func (f TimeFilter) Admits(d Date) bool {
	if f.hasDate {
		return d.SameDay(f.date)
	}
	if f.hasYear {
		return d.Year() == f.year
	}
	return true
}

// Summary is a reduced query result: total amount and total boxes shipped.
// Boxes is truncated, not rounded, when fractional shipments sum to a
// fractional total.
type Summary struct {
	Amount Money
	Boxes  int64
}

// AmountString renders the amount total with two decimals.
func (s Summary) AmountString() string {
	return s.Amount.Format()
}

// BoxesString renders the boxes total as a whole number.
func (s Summary) BoxesString() string {
	return strconv.FormatInt(s.Boxes, 10)
}

// Query narrows the ledger to records admitted by the time filter whose
// normalized country and product both equal the normalized inputs, then
// sums amount and boxes over the survivors. The second return value is
// false when no record matches; a zero-valued match is still a match.
func (l *Ledger) Query(country, product string, filter TimeFilter) (Summary, bool) {
	countryKey := MatchKey(country)
	productKey := MatchKey(product)

	var (
		cents   int64
		boxes   float64
		matched bool
	)
	for _, r := range l.records {
		if !filter.Admits(r.Date) {
			continue
		}
		if r.countryKey != countryKey || r.productKey != productKey {
			continue
		}
		cents += r.Amount.Cents
		boxes += r.Boxes
		matched = true
	}
	if !matched {
		return Summary{}, false
	}
	// Truncate the fractional boxes total toward zero.
	return Summary{Amount: Money{Cents: cents}, Boxes: int64(boxes)}, true
}
