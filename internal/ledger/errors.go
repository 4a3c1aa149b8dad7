package ledger

import (
	"fmt"
	"strings"
)

// SchemaError reports every required column absent from the source, not
// just the first one found.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("source is missing required columns: %s", strings.Join(e.Missing, ", "))
}
