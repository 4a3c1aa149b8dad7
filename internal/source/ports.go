// Package source defines the row-source port the ledger loader reads from,
// along with the errors every adapter maps its failures onto.
package source

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the configured source does not exist.
	ErrNotFound = errors.New("source not found")

	// ErrParse means the source exists but cannot be interpreted as a table.
	ErrParse = errors.New("source is not tabular")
)

type (
	// Table is a raw tabular snapshot: one header row plus data rows.
	// Rows may be ragged; consumers index defensively.
	Table struct {
		Headers []string
		Rows    [][]string
	}

	// TableReader yields the full table in one read. Adapters exist for
	// CSV files, SQLite databases, Google Sheets, and in-memory fixtures.
	TableReader interface {
		ReadTable(ctx context.Context) (Table, error)
	}
)

// Cell returns the row value at column idx, or "" when the row is short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
