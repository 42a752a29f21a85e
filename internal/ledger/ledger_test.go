package ledger

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"expenses/internal/core"
)

func exp(day int, category string, cents int64) core.Expense {
	return core.Expense{
		Date:     core.NewDate(2024, time.January, day),
		Category: category,
		Amount:   core.Money{Cents: cents},
	}
}

// mustUndo fails the test when UndoLastAppend errors.
func mustUndo(t *testing.T, l *Ledger) core.Expense {
	t.Helper()
	e, err := l.UndoLastAppend()
	if err != nil {
		t.Fatalf("UndoLastAppend err=%v", err)
	}
	return e
}

func TestNewLedgerIsEmpty(t *testing.T) {
	l := New()
	if l.Len() != 0 || l.HistoryLen() != 0 {
		t.Fatalf("expected empty ledger, got len=%d history=%d", l.Len(), l.HistoryLen())
	}
	if got := l.ComputeTotal(); got.Cents != 0 {
		t.Fatalf("expected zero total, got %v", got)
	}
	if len(l.ListAll()) != 0 || len(l.ListRecent()) != 0 {
		t.Fatalf("expected empty listings")
	}
}

func TestAppendThenListAllKeepsInsertionOrder(t *testing.T) {
	l := New()
	var want []core.Expense
	// dates deliberately out of order: the ledger never sorts
	for i, day := range []int{9, 3, 27, 1, 15, 3} {
		e := exp(day, fmt.Sprintf("c%d", i), int64(100*(i+1)))
		want = append(want, e)
		entry := l.Append(e)
		if entry.ID != int64(i+1) {
			t.Fatalf("append %d got id %d", i, entry.ID)
		}
	}
	got := l.ListAll()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListAll()=%v want %v", got, want)
	}
}

func TestAppendAllowsDuplicates(t *testing.T) {
	l := New()
	a := exp(1, "Food", 500)
	l.Append(a)
	l.Append(a)
	if l.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", l.Len())
	}
	entries := l.Entries()
	if entries[0].ID == entries[1].ID {
		t.Fatalf("duplicates must get distinct ids: %+v", entries)
	}
}

func TestUndoIsLastInFirstOut(t *testing.T) {
	l := New()
	a, b := exp(1, "A", 100), exp(2, "B", 200)
	l.Append(a)
	l.Append(b)

	if got := mustUndo(t, l); got != b {
		t.Fatalf("first undo got %v want %v", got, b)
	}
	if got := l.ListAll(); !reflect.DeepEqual(got, []core.Expense{a}) {
		t.Fatalf("after first undo entries=%v", got)
	}
	if got := mustUndo(t, l); got != a {
		t.Fatalf("second undo got %v want %v", got, a)
	}
	if _, err := l.UndoLastAppend(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("third undo: want ErrEmptyHistory, got %v", err)
	}
}

func TestUndoOnEmptyLedger(t *testing.T) {
	l := New()
	if _, err := l.UndoLastAppend(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("want ErrEmptyHistory, got %v", err)
	}
}

func TestUndoWithDuplicateValues(t *testing.T) {
	a, b := exp(1, "Food", 500), exp(2, "Rent", 1000)

	t.Run("by id removes the undone append", func(t *testing.T) {
		l := New()
		l.Append(a)
		l.Append(b)
		l.Append(a)
		mustUndo(t, l)
		entries := l.Entries()
		if len(entries) != 2 || entries[0].ID != 1 || entries[1].ID != 2 {
			t.Fatalf("unexpected entries %+v", entries)
		}
	})

	t.Run("by value removes the first equal entry", func(t *testing.T) {
		l := New(WithUndoMatch(MatchByValue))
		l.Append(a)
		l.Append(b)
		l.Append(a)
		mustUndo(t, l)
		entries := l.Entries()
		if len(entries) != 2 || entries[0].ID != 2 || entries[1].ID != 3 {
			t.Fatalf("unexpected entries %+v", entries)
		}
		if got := l.ListAll(); !reflect.DeepEqual(got, []core.Expense{b, a}) {
			t.Fatalf("ListAll()=%v", got)
		}
	})
}

func TestUndoSkipsEntriesDeletedBySelection(t *testing.T) {
	for _, m := range []UndoMatch{MatchByID, MatchByValue} {
		t.Run(m.String(), func(t *testing.T) {
			l := New(WithUndoMatch(m))
			a, b := exp(1, "A", 100), exp(2, "B", 200)
			l.Append(a)
			l.Append(b)
			if _, err := l.DeleteBySelection(At(1)); err != nil {
				t.Fatal(err)
			}
			// history still holds both appends
			if l.HistoryLen() != 2 {
				t.Fatalf("history len=%d want 2", l.HistoryLen())
			}
			if got := mustUndo(t, l); got != a {
				t.Fatalf("undo got %v want %v", got, a)
			}
			if l.Len() != 0 || l.HistoryLen() != 0 {
				t.Fatalf("expected empty ledger and history, got len=%d history=%d", l.Len(), l.HistoryLen())
			}
			if _, err := l.UndoLastAppend(); !errors.Is(err, ErrEmptyHistory) {
				t.Fatalf("want ErrEmptyHistory, got %v", err)
			}
		})
	}
}

func TestRecentWindowBound(t *testing.T) {
	l := New()
	var all []core.Expense
	for i := 1; i <= 7; i++ {
		e := exp(i, fmt.Sprintf("c%d", i), int64(i))
		all = append(all, e)
		l.Append(e)
	}
	got := l.ListRecent()
	if len(got) != 5 {
		t.Fatalf("recent len=%d want 5", len(got))
	}
	if !reflect.DeepEqual(got, all[2:]) {
		t.Fatalf("recent=%v want appends #3-#7 %v", got, all[2:])
	}
}

func TestRecentWindowIgnoresRemovals(t *testing.T) {
	l := New()
	a, b := exp(1, "A", 100), exp(2, "B", 200)
	l.Append(a)
	l.Append(b)
	mustUndo(t, l)
	if _, err := l.DeleteBySelection(At(0)); err != nil {
		t.Fatal(err)
	}
	if got := l.ListRecent(); !reflect.DeepEqual(got, []core.Expense{a, b}) {
		t.Fatalf("recent=%v want [a b]", got)
	}
}

func TestRecentWindowSize(t *testing.T) {
	l := New(WithRecentWindow(2))
	for i := 1; i <= 4; i++ {
		l.Append(exp(i, "x", int64(i)))
	}
	got := l.ListRecent()
	if len(got) != 2 || got[0].Amount.Cents != 3 || got[1].Amount.Cents != 4 {
		t.Fatalf("unexpected recent %v", got)
	}
	// non-positive sizes keep the default
	l = New(WithRecentWindow(0))
	for i := 1; i <= 7; i++ {
		l.Append(exp(i, "x", int64(i)))
	}
	if n := len(l.ListRecent()); n != DefaultRecentWindow {
		t.Fatalf("recent len=%d want %d", n, DefaultRecentWindow)
	}
}

func TestDeleteBySelection(t *testing.T) {
	a, b, c := exp(1, "A", 100), exp(2, "B", 200), exp(3, "C", 300)
	newABC := func() *Ledger {
		l := New()
		l.Append(a)
		l.Append(b)
		l.Append(c)
		return l
	}

	t.Run("removes one positional entry", func(t *testing.T) {
		l := newABC()
		got, err := l.DeleteBySelection(At(1))
		if err != nil {
			t.Fatal(err)
		}
		if got != b {
			t.Fatalf("removed %v want %v", got, b)
		}
		if all := l.ListAll(); !reflect.DeepEqual(all, []core.Expense{a, c}) {
			t.Fatalf("entries=%v want [A C]", all)
		}
		if l.HistoryLen() != 3 || len(l.ListRecent()) != 3 {
			t.Fatalf("history and recent must be untouched")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		l := newABC()
		for _, i := range []int{5, 3, -1} {
			if _, err := l.DeleteBySelection(At(i)); !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("index %d: want ErrIndexOutOfRange, got %v", i, err)
			}
		}
		if l.Len() != 3 {
			t.Fatalf("failed delete changed the ledger: len=%d", l.Len())
		}
	})

	t.Run("no selection", func(t *testing.T) {
		l := newABC()
		if _, err := l.DeleteBySelection(Selection{}); !errors.Is(err, ErrNoSelection) {
			t.Fatalf("want ErrNoSelection, got %v", err)
		}
		if l.Len() != 3 {
			t.Fatalf("failed delete changed the ledger: len=%d", l.Len())
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		if _, err := New().DeleteBySelection(At(0)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("want ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestComputeTotal(t *testing.T) {
	l := New()
	for _, c := range []int64{1000, 2050, 525} {
		l.Append(exp(1, "x", c))
	}
	if got := l.ComputeTotal(); got.String() != "35.75" {
		t.Fatalf("total=%s want 35.75", got)
	}

	// order independent
	r := New()
	for _, c := range []int64{525, 1000, 2050} {
		r.Append(exp(1, "x", c))
	}
	if r.ComputeTotal() != l.ComputeTotal() {
		t.Fatalf("totals differ: %s vs %s", r.ComputeTotal(), l.ComputeTotal())
	}
}

func TestComputeTotalHasNoFloatDrift(t *testing.T) {
	l := New()
	for i := 0; i < 10; i++ {
		l.Append(exp(1, "x", 10)) // 0.10
	}
	if got := l.ComputeTotal(); got.Cents != 100 {
		t.Fatalf("total=%d cents want 100", got.Cents)
	}
}

func TestReadsAreIdempotentSnapshots(t *testing.T) {
	l := New()
	l.Append(exp(1, "A", 100))
	l.Append(exp(2, "B", 200))

	all1, all2 := l.ListAll(), l.ListAll()
	if !reflect.DeepEqual(all1, all2) {
		t.Fatalf("ListAll not idempotent: %v vs %v", all1, all2)
	}
	rec1, rec2 := l.ListRecent(), l.ListRecent()
	if !reflect.DeepEqual(rec1, rec2) {
		t.Fatalf("ListRecent not idempotent: %v vs %v", rec1, rec2)
	}

	// mutating a snapshot must not leak into the ledger
	all1[0].Category = "changed"
	rec1[0].Category = "changed"
	if l.ListAll()[0].Category != "A" || l.ListRecent()[0].Category != "A" {
		t.Fatalf("snapshot aliases ledger state")
	}
}

func TestEndToEndScenario(t *testing.T) {
	l := New()
	rent := core.Expense{Date: core.NewDate(2024, time.January, 1), Category: "Rent", Amount: core.Money{Cents: 100000}}
	food := core.Expense{Date: core.NewDate(2024, time.January, 2), Category: "Food", Amount: core.Money{Cents: 5000}}

	l.Append(rent)
	l.Append(food)
	if got := l.ComputeTotal().String(); got != "1050.00" {
		t.Fatalf("total=%s want 1050.00", got)
	}
	if got := mustUndo(t, l); got != food {
		t.Fatalf("undo got %v want Food", got)
	}
	if got := l.ComputeTotal().String(); got != "1000.00" {
		t.Fatalf("total=%s want 1000.00", got)
	}
	if got := mustUndo(t, l); got != rent {
		t.Fatalf("undo got %v want Rent", got)
	}
	if _, err := l.UndoLastAppend(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("want ErrEmptyHistory, got %v", err)
	}
}

func TestConcurrentAppends(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Append(exp(1, "x", 1))
		}()
	}
	wg.Wait()
	if l.Len() != 50 || l.HistoryLen() != 50 || len(l.ListRecent()) != DefaultRecentWindow {
		t.Fatalf("len=%d history=%d recent=%d", l.Len(), l.HistoryLen(), len(l.ListRecent()))
	}
	if l.ComputeTotal().Cents != 50 {
		t.Fatalf("total=%d want 50", l.ComputeTotal().Cents)
	}
}

func TestParseUndoMatch(t *testing.T) {
	for _, s := range []string{"id", "value"} {
		if _, err := ParseUndoMatch(s); err != nil {
			t.Fatalf("%q: %v", s, err)
		}
	}
	if _, err := ParseUndoMatch("position"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
