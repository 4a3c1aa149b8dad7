// vendite-seed creates the sample SQLite source database by importing a
// sales CSV, so SOURCE_BACKEND=sqlite has something to read.
package main

import (
	"context"
	"flag"
	"os"

	"vendite/internal/cli"
	"vendite/internal/source/csvfile"
	"vendite/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	var (
		csvPath = flag.String("csv", cfg.CSVPath, "sales CSV to import")
		dbPath  = flag.String("db", cfg.SQLiteDBPath, "SQLite database to create or update")
	)
	flag.Parse()

	ctx := context.Background()

	table, err := csvfile.New(*csvPath).ReadTable(ctx)
	if err != nil {
		logger.Error("Failed to read CSV", "error", err, "path", *csvPath)
		os.Exit(1)
	}

	repo, err := storage.NewRepository(*dbPath)
	if err != nil {
		logger.Error("Failed to open database", "error", err, "path", *dbPath)
		os.Exit(1)
	}
	defer repo.Close()

	inserted, err := repo.ImportTable(ctx, table)
	if err != nil {
		logger.Error("Failed to import rows", "error", err, "path", *dbPath)
		os.Exit(1)
	}

	logger.Info("Seeded sales database",
		"csv", *csvPath,
		"db", *dbPath,
		"rows", inserted)
}
