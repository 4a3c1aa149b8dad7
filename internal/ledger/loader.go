// Package ledger loads and normalizes the sales ledger from a table source.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"vendite/internal/core"
	applog "vendite/internal/log"
	"vendite/internal/source"
)

// requiredColumns are the canonical names the loader resolves against.
// Header matching is tolerant of casing and of '_'/'-' in place of spaces.
var requiredColumns = []string{"country", "product", "amount", "boxes shipped", "date"}

// Load reads the source, validates its shape, and normalizes every row
// into a sale record. It returns either a complete ledger or an error,
// never partial state.
//
// Row policy: a row whose date cannot be parsed is dropped and counted;
// an unparseable amount or boxes value degrades to zero for that field
// while the row is retained.
func Load(ctx context.Context, src source.TableReader) (*core.Ledger, error) {
	table, err := src.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	cols, err := ResolveColumns(table.Headers)
	if err != nil {
		return nil, err
	}

	var (
		records []core.SaleRecord
		dropped int
	)
	for i, row := range table.Rows {
		date, ok := ParseDate(source.Cell(row, cols["date"]))
		if !ok {
			dropped++
			slog.DebugContext(ctx, "Dropped row with unparseable date",
				applog.FieldComponent, applog.ComponentLedger,
				"row", i+1,
				applog.FieldDate, source.Cell(row, cols["date"]))
			continue
		}

		cents, err := core.ParseAmount(source.Cell(row, cols["amount"]))
		if err != nil {
			cents = 0
		}
		boxes, err := strconv.ParseFloat(strings.TrimSpace(source.Cell(row, cols["boxes shipped"])), 64)
		// ParseFloat accepts "NaN" and "Inf"; a non-finite count would
		// poison the boxes sum, so it degrades to zero like any other
		// unparseable value.
		if err != nil || math.IsNaN(boxes) || math.IsInf(boxes, 0) {
			boxes = 0
		}

		records = append(records, core.NewSaleRecord(
			source.Cell(row, cols["country"]),
			source.Cell(row, cols["product"]),
			core.Money{Cents: cents},
			boxes,
			date,
		))
	}

	slog.InfoContext(ctx, "Ledger loaded",
		applog.FieldComponent, applog.ComponentLedger,
		applog.FieldOperation, applog.OpLoad,
		applog.FieldRows, len(table.Rows),
		applog.FieldRetained, len(records),
		applog.FieldDropped, dropped)

	return core.NewLedger(records), nil
}

// ResolveColumns maps each required column to its index in the header
// row. It collects every missing column before failing so the error
// names all of them at once.
func ResolveColumns(headers []string) (map[string]int, error) {
	index := map[string]int{}
	for i, h := range headers {
		key := canonicalHeader(h)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	cols := map[string]int{}
	var missing []string
	for _, name := range requiredColumns {
		idx, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = idx
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return cols, nil
}

// canonicalHeader lowercases a header and folds '_' and '-' into spaces
// so "Boxes Shipped", "boxes_shipped", and "boxes-shipped" all resolve
// to the same column.
func canonicalHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	h = strings.ReplaceAll(h, "-", " ")
	return strings.Join(strings.Fields(h), " ")
}
