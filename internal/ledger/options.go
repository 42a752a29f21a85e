package ledger

import "fmt"

// DefaultRecentWindow is the number of appends ListRecent remembers.
const DefaultRecentWindow = 5

// UndoMatch selects how UndoLastAppend finds the entry to remove.
type UndoMatch string

const (
	// MatchByID removes the entry created by the undone append.
	MatchByID UndoMatch = "id"
	// MatchByValue removes the first entry whose date, category and amount
	// equal the undone append, wherever it sits in the list.
	MatchByValue UndoMatch = "value"
)

// String implements fmt.Stringer
func (m UndoMatch) String() string {
	return string(m)
}

// IsValid returns true if m is a known match mode
func (m UndoMatch) IsValid() bool {
	switch m {
	case MatchByID, MatchByValue:
		return true
	default:
		return false
	}
}

// ParseUndoMatch converts a config value to an UndoMatch.
func ParseUndoMatch(s string) (UndoMatch, error) {
	m := UndoMatch(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid undo match %q: must be one of [%s %s]", s, MatchByID, MatchByValue)
	}
	return m, nil
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRecentWindow sets the capacity of the recent window. Values below 1
// are ignored.
func WithRecentWindow(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.recent = newWindow(n)
		}
	}
}

// WithUndoMatch sets the undo matching mode. Unknown modes are ignored.
func WithUndoMatch(m UndoMatch) Option {
	return func(l *Ledger) {
		if m.IsValid() {
			l.match = m
		}
	}
}
