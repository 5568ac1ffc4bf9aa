// Package errwriter adapts an io.Writer so individual writes are
// infallible from the caller's perspective: the first underlying write
// error is latched and retrievable at teardown, letting progress
// messages and diagnostics be emitted without branching at every call
// site (spec.md §7, §9 "Error-retaining writer").
package errwriter

import "io"

// Writer wraps an underlying io.Writer, remembering the first error it
// encounters and suppressing it from the caller.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write always reports success to the caller. The first underlying
// error is latched; subsequent writes are still attempted.
func (e *Writer) Write(p []byte) (int, error) {
	if _, err := e.w.Write(p); err != nil && e.err == nil {
		e.err = err
	}
	return len(p), nil
}

// WriteString is a convenience wrapper avoiding a []byte conversion at
// call sites that already hold a string.
func (e *Writer) WriteString(s string) {
	_, _ = e.Write([]byte(s))
}

// Err returns the first write error encountered, or nil.
func (e *Writer) Err() error {
	return e.err
}
