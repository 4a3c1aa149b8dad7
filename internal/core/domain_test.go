package core

import (
	"reflect"
	"testing"
	"time"
)

func TestMatchKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  FRANCE ", "france"},
		{"Lipstick", "lipstick"},
		{"usa", "usa"},
		{"", ""},
		{"  ", ""},
	}
	for i, tc := range cases {
		if got := MatchKey(tc.in); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	a := Date{Time: time.Date(2020, 1, 10, 23, 59, 0, 0, time.UTC)}
	b := NewDate(2020, 1, 10)
	if !a.SameDay(b) {
		t.Fatalf("expected %v and %v to be the same day", a, b)
	}
	if a.SameDay(NewDate(2020, 1, 11)) {
		t.Fatalf("different days must not compare equal")
	}
}

func TestNewLedgerYears(t *testing.T) {
	l := NewLedger([]SaleRecord{
		NewSaleRecord("India", "Mint Chip Choco", Money{Cents: 100}, 1, NewDate(2021, 3, 5)),
		NewSaleRecord("India", "Mint Chip Choco", Money{Cents: 100}, 1, NewDate(2023, 1, 1)),
		NewSaleRecord("UK", "85% Dark Bars", Money{Cents: 100}, 1, NewDate(2021, 7, 9)),
		NewSaleRecord("UK", "85% Dark Bars", Money{Cents: 100}, 1, NewDate(2022, 2, 2)),
	})

	want := []string{AllYears, "2023", "2022", "2021"}
	if got := l.Years(); !reflect.DeepEqual(got, want) {
		t.Fatalf("years = %v, want %v", got, want)
	}
}

func TestNewLedgerEmptyYears(t *testing.T) {
	l := NewLedger(nil)
	want := []string{AllYears, NoYearsFound}
	if got := l.Years(); !reflect.DeepEqual(got, want) {
		t.Fatalf("years = %v, want %v", got, want)
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger, got %d records", l.Len())
	}
}

func TestLedgerAccessorsReturnCopies(t *testing.T) {
	l := NewLedger([]SaleRecord{
		NewSaleRecord("USA", "Serum", Money{Cents: 1550}, 4, NewDate(2020, 1, 10)),
	})

	rs := l.Records()
	rs[0].Country = "mutated"
	if l.Records()[0].Country != "USA" {
		t.Fatalf("mutating the returned slice must not touch the ledger")
	}

	ys := l.Years()
	ys[0] = "mutated"
	if l.Years()[0] != AllYears {
		t.Fatalf("mutating the returned years must not touch the ledger")
	}
}
