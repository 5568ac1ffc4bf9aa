// Package sss implements the share wire format, the byte-parallel
// polynomial evaluation that produces shares, the strict line-oriented
// parser that reads them back, and the Lagrange interpolation that
// reconstructs the secret (spec.md §3, §4.2-§4.5).
//
// Grounded on the teacher repository's internal/sss package (Split,
// Combine, Share), generalized from its fixed 2-of-2 scheme to
// arbitrary T-of-N and rebuilt around the CoordArray layout and
// column-accurate parser spec.md §4.3 requires.
package sss

// Share is a single indexed evaluation: an index in [1,255] and its
// share data, whose length equals the secret length L.
type Share struct {
	Index byte
	Data  []byte
}

// CoordArray is the packed output of Parse and the input to
// Reconstruct: T indices followed by L columns of T y-values each, as
// described in spec.md §3.
type CoordArray []byte

// L returns the secret length encoded in a CoordArray of the given
// threshold T.
func (c CoordArray) L(t int) int {
	return len(c)/t - 1
}
