package keyboard

import (
	"reflect"

	logx "kbkit/pkg/logx"
)

// Grid is the mutable button grid shared by both keyboard kinds: an
// ordered sequence of rows, each an ordered sequence of entries. Rows may
// be empty and are never removed implicitly; row 0 renders first.
//
// A Grid belongs to a single goroutine; wrap it in your own lock if you
// must share it.
type Grid[E any] struct {
	rows [][]E

	// accept filters entries on AddRow. nil accepts everything.
	accept func(E) bool

	// onAdd observes every entry that makes it into the grid (Reply uses
	// it to feed its key log).
	onAdd func(E)

	log logx.Logger
}

// NewGrid returns an empty grid. accept filters AddRow entries and may be
// nil to accept everything.
func NewGrid[E any](accept func(E) bool) *Grid[E] {
	return &Grid[E]{accept: accept}
}

// RowResult reports the outcome of a row-level mutation: a handle to the
// mutated grid plus its row count after the operation.
type RowResult[E any] struct {
	Grid     *Grid[E]
	RowCount int
}

// Len returns the number of rows.
func (g *Grid[E]) Len() int { return len(g.rows) }

// Rows returns the rows for serialization. The outer slice is a copy; the
// rows themselves are shared with the grid, so treat the result as
// read-only.
func (g *Grid[E]) Rows() [][]E {
	out := make([][]E, len(g.rows))
	copy(out, g.rows)
	return out
}

// AddRow appends a new row holding the entries that pass the grid's entry
// filter, in argument order. Filtered-out entries produce no error, only
// a debug-level log. Calling AddRow with no entries appends an empty row.
func (g *Grid[E]) AddRow(entries ...E) RowResult[E] {
	row := make([]E, 0, len(entries))
	for _, e := range entries {
		if g.accept != nil && !g.accept(e) {
			g.log.Debug("dropped invalid entry", logx.Any("entry", e))
			continue
		}
		if g.onAdd != nil {
			g.onAdd(e)
		}
		row = append(row, e)
	}
	g.rows = append(g.rows, row)
	return RowResult[E]{Grid: g, RowCount: len(g.rows)}
}

// Push appends one entry to the row at i (wrapAbs). Unlike AddRow it does
// not apply the entry filter. A slice or array entry is rejected with
// ErrEntryIsRow so a whole row cannot masquerade as one button.
func (g *Grid[E]) Push(i int, entry E) error {
	idx, err := wrapAbs(i, len(g.rows))
	if err != nil {
		return err
	}
	if entryIsSequence(entry) {
		return ErrEntryIsRow
	}
	if g.onAdd != nil {
		g.onAdd(entry)
	}
	g.rows[idx] = append(g.rows[idx], entry)
	return nil
}

// RemoveRow deletes the row at i (wrapAbs) and reports the new row count.
func (g *Grid[E]) RemoveRow(i int) (RowResult[E], error) {
	idx, err := wrapAbs(i, len(g.rows))
	if err != nil {
		return RowResult[E]{}, err
	}
	g.rows = append(g.rows[:idx], g.rows[idx+1:]...)
	return RowResult[E]{Grid: g, RowCount: len(g.rows)}, nil
}

// EmptyRow clears the row at i (wrapAbs). The row stays in place, so the
// row count does not change.
func (g *Grid[E]) EmptyRow(i int) error {
	idx, err := wrapAbs(i, len(g.rows))
	if err != nil {
		return err
	}
	// Keep a non-nil row so it serializes as [], not null.
	g.rows[idx] = []E{}
	return nil
}

// PopRow removes the last row and reports the new row count. It fails
// with ErrEmptyGrid when there is nothing to remove.
func (g *Grid[E]) PopRow() (RowResult[E], error) {
	if len(g.rows) == 0 {
		return RowResult[E]{}, ErrEmptyGrid
	}
	g.rows = g.rows[:len(g.rows)-1]
	return RowResult[E]{Grid: g, RowCount: len(g.rows)}, nil
}

// Pop removes the last entry of the row at i (wrapMod). Popping from an
// empty row is a no-op.
func (g *Grid[E]) Pop(i int) error {
	idx, err := wrapMod(i, len(g.rows))
	if err != nil {
		return err
	}
	if n := len(g.rows[idx]); n > 0 {
		g.rows[idx] = g.rows[idx][:n-1]
	}
	return nil
}

// RowLen returns the entry count of the row at i (fromEnd).
func (g *Grid[E]) RowLen(i int) (int, error) {
	idx, err := fromEnd(i, len(g.rows))
	if err != nil {
		return 0, err
	}
	return len(g.rows[idx]), nil
}

// SetLogger attaches a logger used for debug diagnostics.
func (g *Grid[E]) SetLogger(log logx.Logger) { g.log = log }

// entryIsSequence reports whether v's dynamic value is a slice or array.
// Grids over struct entries can never trip this; grids over interface
// entries use it to catch a row pushed as a single button.
func entryIsSequence(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
