package log

import (
	"context"
	"log/slog"

	"expenses/internal/trace"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// WithLogger returns a copy of ctx carrying logger
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from the context
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
		return logger
	}
	// Return default logger if not found
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides structured logging methods with context awareness
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{
		logger: logger,
	}
}

// LogExpenseAppended logs a successful append
func (sl *StructuredLogger) LogExpenseAppended(ctx context.Context, id int64, date, category string, amountCents int64) {
	fields := NewFields().
		WithCommandID(trace.CommandID(ctx)).
		WithExpense(date, category, amountCents).
		WithOperation(OpAppend).
		ToSlice()

	fields = append(fields, "id", id)

	sl.logger.WithComponent(ComponentLedger).InfoContext(ctx, "Expense appended", fields...)
}

// LogExpenseRemoved logs an expense leaving the ledger through undo or delete.
// fields carries the expense and, for deletes, the selected index.
func (sl *StructuredLogger) LogExpenseRemoved(ctx context.Context, operation string, fields LogFields, entries int) {
	if fields == nil {
		fields = NewFields()
	}
	fields = fields.
		WithCommandID(trace.CommandID(ctx)).
		WithOperation(operation)
	fields[FieldEntries] = entries

	sl.logger.WithComponent(ComponentLedger).InfoContext(ctx, "Expense removed", fields.ToSlice()...)
}

// LogRejected logs a user error that left the ledger unchanged
func (sl *StructuredLogger) LogRejected(ctx context.Context, msg string, err error, operation string, errorType string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	fields = fields.
		WithCommandID(trace.CommandID(ctx)).
		WithError(err).
		WithErrorType(errorType).
		WithOperation(operation)

	sl.logger.WithComponent(ComponentExpense).WarnContext(ctx, msg, fields.ToSlice()...)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, component string, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	allFields := fields.
		WithCommandID(trace.CommandID(ctx)).
		WithError(err).
		WithOperation(operation)

	sl.logger.WithComponent(component).ErrorContext(ctx, msg, allFields.ToSlice()...)
}
