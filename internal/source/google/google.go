// Package google reads a ledger source from a Google Sheets spreadsheet.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"vendite/internal/source"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Reader struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string
}

// Ensure interface conformance
var _ source.TableReader = (*Reader)(nil)

// NewFromEnv creates a Sheets reader using environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: GOOGLE_SHEET_NAME (default "Sales"), GOOGLE_SHEET_RANGE
// (default "A:E" within the named sheet).
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Reader, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Sales"
	}
	cellRange := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_RANGE"))
	if cellRange == "" {
		cellRange = "A:E"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Reader{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     fmt.Sprintf("%s!%s", sheetName, cellRange),
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// ReadTable fetches the configured range and converts the values matrix
// into a Table. An empty range maps to source.ErrParse: a spreadsheet
// without a header row cannot be interpreted as a table.
func (r *Reader) ReadTable(ctx context.Context) (source.Table, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	if err != nil {
		return source.Table{}, fmt.Errorf("%w: %v", source.ErrNotFound, err)
	}
	if len(resp.Values) == 0 {
		return source.Table{}, fmt.Errorf("%w: empty range %s", source.ErrParse, r.readRange)
	}

	slog.DebugContext(ctx, "Fetched spreadsheet values",
		"spreadsheet_id", r.spreadsheetID,
		"range", r.readRange,
		"rows", len(resp.Values))

	table := source.Table{Headers: toStrings(resp.Values[0])}
	for _, row := range resp.Values[1:] {
		table.Rows = append(table.Rows, toStrings(row))
	}
	return table, nil
}

// toStrings converts a Sheets API value row to strings.
func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case string:
			out[i] = val
		case float64:
			out[i] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(val)
		default:
			out[i] = fmt.Sprint(val)
		}
	}
	return out
}
