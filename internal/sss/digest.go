package sss

import (
	"fmt"
	"io"
	"math/bits"
)

// Digest writes a short, human-readable summary of a coefficient buffer
// to w: up to six bytes, in hex, sampled from its head and tail, and the
// mean bit count per byte rounded half-up to two decimal places
// (spec.md §4.5).
func Digest(w io.Writer, coeffs []byte) {
	_, _ = io.WriteString(w, "Random coefficients are 0x")

	n := len(coeffs)
	m := 6
	if n < m {
		m = n
	}
	half := m / 2
	for k := 0; k < m; k++ {
		if k == half && n > m {
			_, _ = io.WriteString(w, "..")
		}
		off := n - m
		if k < half {
			off = 0
		}
		_, _ = fmt.Fprintf(w, "%02x", coeffs[off+k])
	}

	var pop int
	for _, b := range coeffs {
		pop += bits.OnesCount8(b)
	}
	var percent int
	if n > 0 {
		percent = (100*pop + 4*n) / (8 * n)
	}
	_, _ = fmt.Fprintf(w, " with a bit average of %d.%02d.\n", percent/100, percent%100)
}
