// Package sqlite reads a ledger source from the sales table of a SQLite
// database. The database is read-only from the loader's point of view;
// cmd/vendite-seed exists to create and populate one.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"vendite/internal/source"

	_ "modernc.org/sqlite"
)

type Reader struct {
	path string
}

func New(path string) *Reader {
	return &Reader{path: path}
}

// ReadTable selects every row of the sales table. A missing database file
// maps to source.ErrNotFound; a database without the expected table maps
// to source.ErrParse.
func (r *Reader) ReadTable(ctx context.Context) (source.Table, error) {
	// The sqlite driver happily creates missing files, so check first.
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return source.Table{}, fmt.Errorf("%w: %s", source.ErrNotFound, r.path)
	}

	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return source.Table{}, fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT country, product, amount, boxes_shipped, date FROM sales ORDER BY id`)
	if err != nil {
		return source.Table{}, fmt.Errorf("%w: %v", source.ErrParse, err)
	}
	defer rows.Close()

	table := source.Table{
		Headers: []string{"country", "product", "amount", "boxes_shipped", "date"},
	}
	for rows.Next() {
		var country, product, amount, boxes, date string
		if err := rows.Scan(&country, &product, &amount, &boxes, &date); err != nil {
			return source.Table{}, fmt.Errorf("scan sales row: %w", err)
		}
		table.Rows = append(table.Rows, []string{country, product, amount, boxes, date})
	}
	if err := rows.Err(); err != nil {
		return source.Table{}, fmt.Errorf("iterate sales rows: %w", err)
	}

	return table, nil
}
