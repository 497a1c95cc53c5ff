package keyboard

// Row index resolution.
//
// The grid operations use three distinct wrap policies. The differences
// are load-bearing: callers rely on the exact rule of each operation, so
// the policies stay separate named functions instead of being unified.
// Each mutation documents which one it uses.

// wrapAbs resolves i against n rows for Push, RemoveRow and EmptyRow.
// In-range indices pass through; any other index wraps to abs(i % n), so
// wrapAbs(-1, 3) = 1, not the last row.
func wrapAbs(i, n int) (int, error) {
	if n == 0 {
		return 0, ErrEmptyGrid
	}
	if i >= 0 && i < n {
		return i, nil
	}
	m := i % n
	if m < 0 {
		m = -m
	}
	return m, nil
}

// wrapMod resolves i for Pop. Indices past the last row wrap by plain
// modulo; negative indices are rejected.
func wrapMod(i, n int) (int, error) {
	if n == 0 {
		return 0, ErrEmptyGrid
	}
	if i < 0 {
		return 0, ErrOutOfRange
	}
	if i < n {
		return i, nil
	}
	return i % n, nil
}

// fromEnd resolves i for RowLen. Negative indices count back from the last
// row (-1 is the last row); positive indices never wrap.
func fromEnd(i, n int) (int, error) {
	if n == 0 {
		return 0, ErrEmptyGrid
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrOutOfRange
	}
	return i, nil
}
