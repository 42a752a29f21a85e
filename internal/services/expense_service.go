package services

import (
	"context"
	"errors"
	"fmt"

	"expenses/internal/core"
	"expenses/internal/ledger"
	applog "expenses/internal/log"
	"expenses/internal/trace"
)

// Book is the ledger contract the service drives.
type Book interface {
	Append(e core.Expense) ledger.Entry
	UndoLastAppend() (core.Expense, error)
	DeleteBySelection(sel ledger.Selection) (core.Expense, error)
	ComputeTotal() core.Money
	ListRecent() []core.Expense
	ListAll() []core.Expense
	Len() int
	HistoryLen() int
}

// ExpenseService validates raw input and forwards it to the ledger,
// logging every outcome. Errors are returned unchanged in kind so callers
// can match them with errors.Is.
type ExpenseService struct {
	book   Book
	logger *applog.Logger
	events *applog.StructuredLogger
}

func NewExpenseService(book Book, logger *applog.Logger) *ExpenseService {
	if logger == nil {
		logger = applog.Discard()
	}
	logger = logger.WithComponent(applog.ComponentExpense)
	return &ExpenseService{
		book:   book,
		logger: logger,
		events: applog.NewStructuredLogger(logger),
	}
}

// AddExpense validates the raw form fields and appends the expense.
func (s *ExpenseService) AddExpense(ctx context.Context, in core.Input) (core.Expense, error) {
	e, err := core.ParseInput(in)
	if err != nil {
		s.events.LogRejected(ctx, "Expense input rejected", err, applog.OpValidate, applog.ErrorTypeValidation, nil)
		return core.Expense{}, fmt.Errorf("add expense: %w", err)
	}

	entry := s.book.Append(e)
	s.events.LogExpenseAppended(ctx, entry.ID, e.Date.String(), e.Category, e.Amount.Cents)
	return e, nil
}

// UndoLast removes the most recently appended expense.
func (s *ExpenseService) UndoLast(ctx context.Context) (core.Expense, error) {
	e, err := s.book.UndoLastAppend()
	if err != nil {
		s.events.LogRejected(ctx, "Undo rejected", err, applog.OpUndo, errorType(err), nil)
		return core.Expense{}, fmt.Errorf("undo last expense: %w", err)
	}

	s.events.LogExpenseRemoved(ctx, applog.OpUndo, expenseFields(e), s.book.Len())
	return e, nil
}

// Delete removes the expense at the selected position.
func (s *ExpenseService) Delete(ctx context.Context, sel ledger.Selection) (core.Expense, error) {
	fields := applog.NewFields()
	if i, ok := sel.Index(); ok {
		fields = fields.WithIndex(i)
	}

	e, err := s.book.DeleteBySelection(sel)
	if err != nil {
		s.events.LogRejected(ctx, "Delete rejected", err, applog.OpDelete, errorType(err), fields)
		return core.Expense{}, fmt.Errorf("delete expense: %w", err)
	}

	fields = fields.WithExpense(e.Date.String(), e.Category, e.Amount.Cents)
	s.events.LogExpenseRemoved(ctx, applog.OpDelete, fields, s.book.Len())
	return e, nil
}

// Total returns the sum of all current expenses.
func (s *ExpenseService) Total(ctx context.Context) core.Money {
	total := s.book.ComputeTotal()
	s.logger.DebugContext(ctx, "Total computed",
		applog.FieldCommandID, trace.CommandID(ctx),
		applog.FieldOperation, applog.OpTotal,
		applog.FieldTotalCents, total.Cents,
		applog.FieldEntries, s.book.Len())
	return total
}

// All returns the current expenses in entry order.
func (s *ExpenseService) All(ctx context.Context) []core.Expense {
	all := s.book.ListAll()
	s.logger.DebugContext(ctx, "Expenses listed",
		applog.NewFields().
			WithCommandID(trace.CommandID(ctx)).
			WithOperation(applog.OpList).
			WithLedgerState(len(all), s.book.HistoryLen()).
			ToSlice()...)
	return all
}

// Recent returns the recent window, oldest first.
func (s *ExpenseService) Recent(ctx context.Context) []core.Expense {
	recent := s.book.ListRecent()
	s.logger.DebugContext(ctx, "Recent expenses listed",
		applog.FieldCommandID, trace.CommandID(ctx),
		applog.FieldOperation, applog.OpRecent,
		"count", len(recent))
	return recent
}

func expenseFields(e core.Expense) applog.LogFields {
	return applog.NewFields().WithExpense(e.Date.String(), e.Category, e.Amount.Cents)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, ledger.ErrEmptyHistory), errors.Is(err, ledger.ErrIndexOutOfRange):
		return applog.ErrorTypeNotFound
	case errors.Is(err, ledger.ErrNoSelection):
		return applog.ErrorTypeValidation
	default:
		return applog.ErrorTypeInternal
	}
}
