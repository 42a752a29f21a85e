// Package ledger keeps the in-memory list of expenses of one session.
//
// A Ledger tracks three sequences: the entries themselves, the append
// history consumed by UndoLastAppend, and a bounded window of the most
// recent appends. Only the entries are shown as "the ledger"; history and
// the recent window are logs of appends and are never rewritten by
// DeleteBySelection.
package ledger

import (
	"fmt"
	"sync"

	"expenses/internal/core"
)

// Entry is an expense together with the sequence number it got when it
// was appended. Sequence numbers start at 1 and are never reused.
type Entry struct {
	ID      int64
	Expense core.Expense
}

// Selection points at a zero-based position in the entries. The zero value
// selects nothing.
type Selection struct {
	index int
	ok    bool
}

// At selects position i.
func At(i int) Selection {
	return Selection{index: i, ok: true}
}

// Index returns the selected position and whether anything is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.ok
}

// Ledger is safe for use by multiple goroutines; every method is atomic.
type Ledger struct {
	mu      sync.Mutex
	nextID  int64
	match   UndoMatch
	entries []Entry
	history []Entry
	recent  *window
}

// New returns an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		match:  MatchByID,
		recent: newWindow(DefaultRecentWindow),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append adds e at the end of the entries, records it in the append
// history and pushes it into the recent window. The Ledger does not
// validate e.
func (l *Ledger) Append(e core.Expense) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	entry := Entry{ID: l.nextID, Expense: e}
	l.entries = append(l.entries, entry)
	l.history = append(l.history, entry)
	l.recent.push(e)
	return entry
}

// UndoLastAppend removes the most recently appended expense and returns it.
//
// History records whose entry was already removed through
// DeleteBySelection no longer match anything; they are dropped and the
// next older record is tried. ErrEmptyHistory is returned once no record
// is left. The recent window is not touched.
func (l *Ledger) UndoLastAppend() (core.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for len(l.history) > 0 {
		last := l.history[len(l.history)-1]
		l.history = l.history[:len(l.history)-1]
		if i := l.find(last); i >= 0 {
			removed := l.entries[i].Expense
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return removed, nil
		}
	}
	return core.Expense{}, ErrEmptyHistory
}

func (l *Ledger) find(rec Entry) int {
	for i, e := range l.entries {
		switch l.match {
		case MatchByValue:
			if e.Expense == rec.Expense {
				return i
			}
		default:
			if e.ID == rec.ID {
				return i
			}
		}
	}
	return -1
}

// DeleteBySelection removes the entry at the selected position and returns
// it. History and the recent window keep their records.
func (l *Ledger) DeleteBySelection(sel Selection) (core.Expense, error) {
	i, ok := sel.Index()
	if !ok {
		return core.Expense{}, ErrNoSelection
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.entries) {
		return core.Expense{}, fmt.Errorf("%w: index %d, %d entries", ErrIndexOutOfRange, i, len(l.entries))
	}
	removed := l.entries[i].Expense
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return removed, nil
}

// ComputeTotal sums the amounts of all current entries.
func (l *Ledger) ComputeTotal() core.Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total core.Money
	for _, e := range l.entries {
		total = total.Add(e.Expense.Amount)
	}
	return total
}

// ListRecent returns a copy of the recent window, oldest first.
func (l *Ledger) ListRecent() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recent.snapshot()
}

// ListAll returns a copy of the entries in their current order.
func (l *Ledger) ListAll() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]core.Expense, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Expense
	}
	return out
}

// Entries returns a copy of the entries with their sequence numbers.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// HistoryLen returns the number of append records UndoLastAppend may still consume.
func (l *Ledger) HistoryLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.history)
}
