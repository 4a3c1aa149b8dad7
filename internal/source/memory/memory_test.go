package memory

import (
	"context"
	"errors"
	"testing"
)

func TestReadTableReturnsCopies(t *testing.T) {
	s := New([]string{"Country", "Product"}, [][]string{{"India", "Choco"}})

	first, err := s.ReadTable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Headers[0] = "mutated"
	first.Rows[0][0] = "mutated"

	second, err := s.ReadTable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Headers[0] != "Country" || second.Rows[0][0] != "India" {
		t.Fatalf("store leaked internal state: %+v", second)
	}
}

func TestSetError(t *testing.T) {
	s := NewSample()
	want := errors.New("boom")
	s.SetError(want)

	if _, err := s.ReadTable(context.Background()); !errors.Is(err, want) {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestNewSampleHasRequiredColumns(t *testing.T) {
	table, err := NewSample().ReadTable(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Headers) != 5 || len(table.Rows) == 0 {
		t.Fatalf("unexpected sample shape: %d headers, %d rows", len(table.Headers), len(table.Rows))
	}
}
