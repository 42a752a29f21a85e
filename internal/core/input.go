package core

import (
	"fmt"
	"strings"
)

// Input is the three raw text fields of the entry form.
type Input struct {
	Date     string
	Category string
	Amount   string
}

// ParseInput validates the raw fields and builds the Expense.
//
// Empty fields are reported first, before any parsing happens, so a form
// with a blank date and a bad amount yields ErrMissingField. The category
// is trimmed but its case is kept.
func ParseInput(in Input) (Expense, error) {
	date := strings.TrimSpace(in.Date)
	category := strings.TrimSpace(in.Category)
	amount := strings.TrimSpace(in.Amount)

	var missing []string
	if date == "" {
		missing = append(missing, "date")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if amount == "" {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return Expense{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	d, err := ParseDate(date)
	if err != nil {
		return Expense{}, err
	}
	m, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, err
	}
	return Expense{Date: d, Category: category, Amount: m}, nil
}
