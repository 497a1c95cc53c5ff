package keyboard

import "errors"

var (
	// ErrEmptyGrid is returned by operations that need at least one row:
	// resolving any row index against a zero-row grid, or PopRow on one.
	ErrEmptyGrid = errors.New("keyboard: grid has no rows")

	// ErrOutOfRange is returned when a row index cannot be resolved under
	// the operation's wrap rule (see index.go).
	ErrOutOfRange = errors.New("keyboard: row index out of range")

	// ErrEntryIsRow is returned by Push when the entry itself is a slice
	// or array; a whole row cannot be pushed as a single button.
	ErrEntryIsRow = errors.New("keyboard: entry is a row, push one button at a time")

	// ErrNotAGrid is returned by Extract when the markup content under the
	// keyboard's kind does not decode as button rows (the remove form
	// carries the literal true instead of a grid).
	ErrNotAGrid = errors.New("keyboard: markup content is not a button grid")
)
