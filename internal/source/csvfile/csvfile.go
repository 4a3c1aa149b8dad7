// Package csvfile reads a ledger source from a local CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vendite/internal/source"
)

type Reader struct {
	path string
}

// New creates a reader for the CSV file at path. The file is opened on
// each ReadTable call, not at construction, so a missing file surfaces
// as a load error rather than a startup panic.
func New(path string) *Reader {
	return &Reader{path: path}
}

// ReadTable reads the whole file. A missing file maps to source.ErrNotFound,
// malformed CSV to source.ErrParse.
func (r *Reader) ReadTable(ctx context.Context) (source.Table, error) {
	if err := ctx.Err(); err != nil {
		return source.Table{}, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return source.Table{}, fmt.Errorf("%w: %s", source.ErrNotFound, r.path)
		}
		return source.Table{}, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Ragged rows are tolerated here; the loader pads short rows.
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return source.Table{}, fmt.Errorf("%w: %v", source.ErrParse, err)
	}
	if len(records) == 0 {
		return source.Table{}, fmt.Errorf("%w: empty file", source.ErrParse)
	}

	return source.Table{Headers: records[0], Rows: records[1:]}, nil
}
