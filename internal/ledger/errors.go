package ledger

import "errors"

var (
	// ErrEmptyHistory is returned by UndoLastAppend when nothing is left to undo.
	ErrEmptyHistory = errors.New("no expense to undo")
	// ErrNoSelection is returned by DeleteBySelection for an empty Selection.
	ErrNoSelection = errors.New("no expense selected")
	// ErrIndexOutOfRange is returned by DeleteBySelection when the index is
	// outside the current entries.
	ErrIndexOutOfRange = errors.New("selection out of range")
)
