package sss

import (
	"io"

	"github.com/lcrostarosa/sss256/internal/gf256"
)

// Reconstruct consumes a CoordArray produced by Parse and writes the
// reconstructed secret bytes to w via Lagrange interpolation at x=0 over
// GF(2^8) (spec.md §4.4).
//
// The preconditions on coord (length >= 2*T, length a multiple of T, all
// indices non-zero and distinct) are guaranteed by Parse; Reconstruct
// re-asserts them and panics on violation, per spec.md §7's programming
// errors, which "abort; never expected at runtime" rather than surface
// as a classified exit code.
func Reconstruct(w io.Writer, coord CoordArray, t int) error {
	total := len(coord)
	if total < 2*t {
		panic("sss: coordinate array shorter than 2*T")
	}
	if total%t != 0 {
		panic("sss: coordinate array length not a multiple of T")
	}

	xs := coord[:t]
	for i, xi := range xs {
		if xi == 0 {
			panic("sss: share index 0x00 reached the reconstructor")
		}
		for j, xj := range xs {
			if i != j && xi == xj {
				panic("sss: duplicate share index reached the reconstructor")
			}
		}
	}

	l := coord.L(t)
	out := make([]byte, l)
	for p := 0; p < l; p++ {
		ys := coord[t*(1+p) : t*(1+p)+t]
		var s byte
		for i := 0; i < t; i++ {
			basis := byte(1)
			for j := 0; j < t; j++ {
				if i == j {
					continue
				}
				num := xs[j]
				den := gf256.Add(xs[j], xs[i])
				basis = gf256.Mul(basis, gf256.Mul(num, gf256.Inv(den)))
			}
			s = gf256.Add(s, gf256.Mul(ys[i], basis))
		}
		out[p] = s
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	return nil
}
