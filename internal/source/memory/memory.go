// Package memory provides an in-memory table source for tests and demos.
package memory

import (
	"context"
	"sync"

	"vendite/internal/source"
)

type Store struct {
	mu    sync.Mutex
	table source.Table
	err   error
}

// New creates a store serving the given headers and rows.
func New(headers []string, rows [][]string) *Store {
	return &Store{table: source.Table{Headers: headers, Rows: rows}}
}

// NewSample returns a store pre-seeded with a handful of sale rows, used
// by the memory backend so the server has something to answer with.
func NewSample() *Store {
	return New(
		[]string{"Country", "Product", "Amount", "Boxes Shipped", "Date"},
		[][]string{
			{"India", "Mint Chip Choco", "$5,320", "180", "04-Jan-22"},
			{"India", "85% Dark Bars", "$7,896", "94", "01-Aug-22"},
			{"Australia", "Peanut Butter Cubes", "$4,501", "245", "07-Jul-21"},
			{"UK", "Peanut Butter Cubes", "$12,726", "621", "04-Jan-22"},
			{"USA", "Smooth Silky Salty", "$2,546", "157", "11-Feb-21"},
		},
	)
}

// SetError makes every subsequent read fail with err. Tests use this to
// exercise load failure paths.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// ReadTable returns a copy of the stored table.
func (s *Store) ReadTable(_ context.Context) (source.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return source.Table{}, s.err
	}
	headers := append([]string(nil), s.table.Headers...)
	rows := make([][]string, len(s.table.Rows))
	for i, r := range s.table.Rows {
		rows[i] = append([]string(nil), r...)
	}
	return source.Table{Headers: headers, Rows: rows}, nil
}
