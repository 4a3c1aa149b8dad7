package core

import "testing"

func testLedger() *Ledger {
	return NewLedger([]SaleRecord{
		NewSaleRecord("USA", "Serum", Money{Cents: 1550}, 4, NewDate(2020, 1, 10)),
		NewSaleRecord("usa", "serum", Money{Cents: 450}, 1, NewDate(2020, 6, 1)),
		NewSaleRecord("France", "Lipstick", Money{Cents: 1000}, 2, NewDate(2021, 5, 1)),
		NewSaleRecord("France", "Lipstick", Money{Cents: 2000}, 3, NewDate(2022, 5, 1)),
	})
}

func TestQueryYearAggregation(t *testing.T) {
	sum, ok := testLedger().Query("USA", "Serum", Year(2020))
	if !ok {
		t.Fatalf("expected a match")
	}
	if got := sum.AmountString(); got != "20.00" {
		t.Fatalf("amount = %q, want 20.00", got)
	}
	if got := sum.BoxesString(); got != "5" {
		t.Fatalf("boxes = %q, want 5", got)
	}
}

func TestQueryExactDate(t *testing.T) {
	sum, ok := testLedger().Query("USA", "Serum", ExactDate(NewDate(2020, 1, 10)))
	if !ok {
		t.Fatalf("expected a match")
	}
	if sum.AmountString() != "15.50" || sum.BoxesString() != "4" {
		t.Fatalf("got %s / %s, want 15.50 / 4", sum.AmountString(), sum.BoxesString())
	}
}

func TestQueryDateWinsOverYear(t *testing.T) {
	// Both a date and a year set: the date alone determines the window.
	f := ExactDate(NewDate(2021, 5, 1)).WithYear(2022)
	sum, ok := testLedger().Query("France", "Lipstick", f)
	if !ok {
		t.Fatalf("expected a match")
	}
	if sum.AmountString() != "10.00" || sum.BoxesString() != "2" {
		t.Fatalf("got %s / %s, want the 2021 totals", sum.AmountString(), sum.BoxesString())
	}
}

func TestQueryAllTime(t *testing.T) {
	sum, ok := testLedger().Query("France", "Lipstick", AllTime())
	if !ok {
		t.Fatalf("expected a match")
	}
	if sum.AmountString() != "30.00" || sum.BoxesString() != "5" {
		t.Fatalf("got %s / %s, want 30.00 / 5", sum.AmountString(), sum.BoxesString())
	}
}

func TestQueryMatchingIsCaseAndWhitespaceInsensitive(t *testing.T) {
	sum, ok := testLedger().Query("  FRANCE ", "Lipstick", Year(2021))
	if !ok {
		t.Fatalf("expected a match for padded upper-case input")
	}
	if sum.AmountString() != "10.00" {
		t.Fatalf("amount = %q, want 10.00", sum.AmountString())
	}
}

func TestQueryNoMatchIsNotFound(t *testing.T) {
	cases := []struct {
		country string
		product string
		filter  TimeFilter
	}{
		{"France", "Serum", AllTime()},
		{"USA", "Serum", Year(2019)},
		{"USA", "Serum", ExactDate(NewDate(2020, 1, 11))},
		{"", "", AllTime()}, // empty inputs simply match nothing
	}
	for i, tc := range cases {
		if _, ok := testLedger().Query(tc.country, tc.product, tc.filter); ok {
			t.Fatalf("case %d: expected no match", i)
		}
	}
}

func TestQueryZeroValuedMatchIsFound(t *testing.T) {
	l := NewLedger([]SaleRecord{
		NewSaleRecord("Spain", "Toner", Money{Cents: 0}, 0, NewDate(2023, 2, 2)),
	})
	sum, ok := l.Query("Spain", "Toner", AllTime())
	if !ok {
		t.Fatalf("a zero-valued record is a match, not a not-found")
	}
	if sum.AmountString() != "0.00" || sum.BoxesString() != "0" {
		t.Fatalf("got %s / %s, want 0.00 / 0", sum.AmountString(), sum.BoxesString())
	}
}

func TestQueryTruncatesFractionalBoxes(t *testing.T) {
	l := NewLedger([]SaleRecord{
		NewSaleRecord("Japan", "Matcha Bars", Money{Cents: 100}, 1.5, NewDate(2023, 3, 1)),
		NewSaleRecord("Japan", "Matcha Bars", Money{Cents: 100}, 1.4, NewDate(2023, 3, 2)),
	})
	sum, ok := l.Query("Japan", "Matcha Bars", AllTime())
	if !ok {
		t.Fatalf("expected a match")
	}
	// 2.9 truncates to 2, never rounds to 3.
	if sum.BoxesString() != "2" {
		t.Fatalf("boxes = %q, want 2", sum.BoxesString())
	}
}

func TestQueryIsIdempotent(t *testing.T) {
	l := testLedger()
	first, ok1 := l.Query("USA", "Serum", Year(2020))
	second, ok2 := l.Query("USA", "Serum", Year(2020))
	if ok1 != ok2 || first != second {
		t.Fatalf("repeated queries diverged: %v/%v vs %v/%v", first, ok1, second, ok2)
	}
}
