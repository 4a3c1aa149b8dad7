package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldCountry    = "country"
	FieldProduct    = "product"
	FieldYear       = "year"
	FieldDate       = "date"
	FieldFound      = "found"
	FieldAmount     = "amount_cents"
	FieldBoxes      = "boxes"
	FieldRows       = "rows"
	FieldRetained   = "retained"
	FieldDropped    = "dropped"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentQuery   = "query"
	ComponentSource  = "source"
	ComponentAMQP    = "amqp"
	ComponentCache   = "cache"
	ComponentBackend = "backend"
	ComponentSeed    = "seed"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpQuery    = "query"
	OpParse    = "parse"
	OpPublish  = "publish"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithQuery adds the country/product pair of a query
func (f LogFields) WithQuery(country, product string) LogFields {
	f[FieldCountry] = country
	f[FieldProduct] = product
	return f
}

// WithOutcome adds the reduced result of a query
func (f LogFields) WithOutcome(found bool, amountCents, boxes int64) LogFields {
	f[FieldFound] = found
	f[FieldAmount] = amountCents
	f[FieldBoxes] = boxes
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
