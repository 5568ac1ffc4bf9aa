// Package arena gives the split driver's secret copy and coefficient
// buffer a single allocation lifetime: one arena acquired at process
// start, released at exit, zeroing every buffer it handed out (spec.md
// §5). The combine driver does not use it.
package arena

import "fmt"

// Arena tracks byte slices it has allocated so it can zero them on
// Release. It is not safe for concurrent use; both sss256 binaries are
// single-threaded (spec.md §5).
type Arena struct {
	bufs [][]byte
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{}
}

// Alloc allocates a zeroed buffer of n bytes and tracks it for
// zeroization on Release.
func (a *Arena) Alloc(n int) []byte {
	b := make([]byte, n)
	a.bufs = append(a.bufs, b)
	return b
}

// AllocProduct allocates a buffer sized rows*cols, checking the
// multiplication for overflow first. This backs the coefficient buffer
// (L*(T-1) bytes, spec.md §5 and §7).
func AllocProduct(a *Arena, rows, cols int) ([]byte, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("arena: negative size")
	}
	if rows != 0 && cols > (maxInt/rows) {
		return nil, fmt.Errorf("arena: size overflow")
	}
	return a.Alloc(rows * cols), nil
}

// Release zeroes every buffer this arena handed out. Buffers remain
// valid Go slices after Release; only their contents are cleared.
func (a *Arena) Release() {
	for _, b := range a.bufs {
		for i := range b {
			b[i] = 0
		}
	}
	a.bufs = nil
}

const maxInt = int(^uint(0) >> 1)
