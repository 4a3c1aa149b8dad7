// Package backend selects and constructs the configured table source.
package backend

import (
	"context"
	"fmt"

	"vendite/internal/config"
	applog "vendite/internal/log"
	"vendite/internal/source"
	"vendite/internal/source/csvfile"
	gsheet "vendite/internal/source/google"
	"vendite/internal/source/memory"
	"vendite/internal/source/sqlite"
)

// Type identifies a source backend.
type Type string

const (
	CSVBackend    Type = "csv"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{CSVBackend, SQLiteBackend, SheetsBackend, MemoryBackend}
}

// New constructs the table source named by the config.
func New(ctx context.Context, cfg *config.Config, logger *applog.Logger) (source.TableReader, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentBackend)

	t := Type(cfg.SourceBackend)
	switch t {
	case CSVBackend:
		logger.Info("Initialized CSV source", "path", cfg.CSVPath)
		return csvfile.New(cfg.CSVPath), nil
	case SQLiteBackend:
		logger.Info("Initialized SQLite source", "path", cfg.SQLiteDBPath)
		return sqlite.New(cfg.SQLiteDBPath), nil
	case SheetsBackend:
		reader, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets source: %w", err)
		}
		logger.Info("Initialized Google Sheets source")
		return reader, nil
	case MemoryBackend:
		logger.Info("Initialized memory source with sample data")
		return memory.NewSample(), nil
	default:
		return nil, fmt.Errorf("unsupported source backend: %s", cfg.SourceBackend)
	}
}
