package ledger

import (
	"testing"

	"vendite/internal/core"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want core.Date
		ok   bool
	}{
		{"2022-01-04", core.NewDate(2022, 1, 4), true},
		{"04-Jan-22", core.NewDate(2022, 1, 4), true},
		{"4-Jan-22", core.NewDate(2022, 1, 4), true},
		{"04-Jan-2022", core.NewDate(2022, 1, 4), true},
		{"01/04/2022", core.NewDate(2022, 1, 4), true},
		{"1/4/2022", core.NewDate(2022, 1, 4), true},
		{"Jan 4, 2022", core.NewDate(2022, 1, 4), true},
		{" 2022-01-04 ", core.NewDate(2022, 1, 4), true},
		{"2022-01-04T09:30:00Z", core.NewDate(2022, 1, 4), true},
		{"", core.Date{}, false},
		{"not a date", core.Date{}, false},
		{"2022-13-01", core.Date{}, false},
		{"32-Jan-22", core.Date{}, false},
	}
	for i, tc := range cases {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("case %d (%q): ok = %v, want %v", i, tc.in, ok, tc.ok)
		}
		if ok && !got.SameDay(tc.want) {
			t.Fatalf("case %d (%q): got %v, want %v", i, tc.in, got, tc.want)
		}
	}
}

func TestParseDateDropsTimeOfDay(t *testing.T) {
	d, ok := ParseDate("2022-01-04 18:45:00")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}
