package ledger

import "expenses/internal/core"

// window keeps the last size expenses pushed to it, oldest first.
type window struct {
	size  int
	items []core.Expense
}

func newWindow(size int) *window {
	return &window{size: size, items: make([]core.Expense, 0, size)}
}

func (w *window) push(e core.Expense) {
	if len(w.items) == w.size {
		copy(w.items, w.items[1:])
		w.items = w.items[:w.size-1]
	}
	w.items = append(w.items, e)
}

func (w *window) snapshot() []core.Expense {
	return append([]core.Expense(nil), w.items...)
}
