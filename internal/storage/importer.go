package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"vendite/internal/ledger"
	"vendite/internal/source"

	_ "modernc.org/sqlite"
)

// Repository owns the sample-source database connection.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (creating if needed) the database at dbPath and
// brings its schema up to date.
func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ImportTable copies every row of the table into the sales table,
// verbatim. Values are stored as the source produced them ("$5,320",
// "04-Jan-22"); normalization stays the loader's job. Returns the number
// of rows inserted.
func (r *Repository) ImportTable(ctx context.Context, table source.Table) (int, error) {
	cols, err := ledger.ResolveColumns(table.Headers)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sales (country, product, amount, boxes_shipped, date) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, row := range table.Rows {
		_, err := stmt.ExecContext(ctx,
			source.Cell(row, cols["country"]),
			source.Cell(row, cols["product"]),
			source.Cell(row, cols["amount"]),
			source.Cell(row, cols["boxes shipped"]),
			source.Cell(row, cols["date"]),
		)
		if err != nil {
			return 0, fmt.Errorf("insert row %d: %w", inserted+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}
