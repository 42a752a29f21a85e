package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the DD-MM-YYYY form expenses are entered and displayed in.
const DateLayout = "02-01-2006"

// readDateLayout also accepts single-digit day and month.
const readDateLayout = "2-1-2006"

type (
	// Date is a calendar day with no time of day and no zone.
	Date struct {
		y int
		m time.Month
		d int
	}

	// Money is an amount in integer cents.
	Money struct {
		Cents int64
	}

	// Expense is a single dated, categorized amount. Values are comparable
	// with ==, which is what value-equal means for expenses.
	Expense struct {
		Date     Date
		Category string
		Amount   Money
	}
)

// Validation errors returned by ParseInput, ParseDate and ParseAmount.
var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
)

// NewDate returns the Date for year, month, day, normalizing out of range
// values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y: y, m: m, d: d}
}

// ParseDate parses s as DD-MM-YYYY. Day and month may be written with a
// single digit; the year must have four and be at least 1. Impossible days
// such as 31-02-2024 are rejected.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) < len("1-1-2006") || len(s) > len(DateLayout) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(readDateLayout, s)
	if err != nil || t.Year() < 1 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t.Date()), nil
}

// IsZero reports whether d was never set.
func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formats the date as DD-MM-YYYY.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Summary is the short "date - category" form used in notifications.
func (e Expense) Summary() string {
	return e.Date.String() + " - " + e.Category
}
