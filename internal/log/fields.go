package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldCommand     = "command"
	FieldCommandID   = "command_id"
	FieldDurationMs  = "duration_ms"
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldIndex       = "index"
	FieldEntries     = "entries"
	FieldHistory     = "history"
	FieldTotalCents  = "total_cents"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentExpense = "expense"
	ComponentShell   = "shell"
	ComponentConfig  = "config"
	ComponentRender  = "render"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpUndo     = "undo"
	OpDelete   = "delete"
	OpTotal    = "total"
	OpList     = "list"
	OpRecent   = "recent"
	OpValidate = "validate"
	OpRender   = "render"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithCommandID adds the shell command ID, if there is one
func (f LogFields) WithCommandID(id string) LogFields {
	if id != "" {
		f[FieldCommandID] = id
	}
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(date, category string, amountCents int64) LogFields {
	f[FieldDate] = date
	f[FieldCategory] = category
	f[FieldAmountCents] = amountCents
	return f
}

// WithLedgerState adds the entry and history counts
func (f LogFields) WithLedgerState(entries, history int) LogFields {
	f[FieldEntries] = entries
	f[FieldHistory] = history
	return f
}

// WithIndex adds a selection index
func (f LogFields) WithIndex(index int) LogFields {
	f[FieldIndex] = index
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
