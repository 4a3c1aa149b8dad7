package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"vendite/internal/core"
	"vendite/internal/ledger"
	"vendite/internal/source"
	sqlitesource "vendite/internal/source/sqlite"
)

func TestImportAndReadBack(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sales.db")

	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()

	table := source.Table{
		Headers: []string{"Country", "Product", "Amount", "Boxes Shipped", "Date"},
		Rows: [][]string{
			{"USA", "Serum", "$15.50", "4", "10-Jan-20"},
			{"usa", "serum", "4.50", "1", "2020-06-01"},
		},
	}
	inserted, err := repo.ImportTable(context.Background(), table)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("inserted %d rows, want 2", inserted)
	}

	// The seeded database must load through the sqlite source unchanged.
	led, err := ledger.Load(context.Background(), sqlitesource.New(dbPath))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sum, ok := led.Query("USA", "Serum", core.Year(2020))
	if !ok || sum.AmountString() != "20.00" || sum.BoxesString() != "5" {
		t.Fatalf("got %v/%v, want 20.00/5", sum, ok)
	}
}

func TestImportTableRejectsMissingColumns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sales.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()

	_, err = repo.ImportTable(context.Background(), source.Table{Headers: []string{"Country"}})
	var schemaErr *ledger.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sales.db")
	if _, err := NewRepository(dbPath); err != nil {
		t.Fatalf("first open: %v", err)
	}
	// Reopening runs migrations again; ErrNoChange must not surface.
	if _, err := NewRepository(dbPath); err != nil {
		t.Fatalf("second open: %v", err)
	}
}

func TestReadMissingDatabaseIsNotFound(t *testing.T) {
	_, err := ledger.Load(context.Background(),
		sqlitesource.New(filepath.Join(t.TempDir(), "absent.db")))
	if !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
