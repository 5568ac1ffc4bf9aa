package sss

import (
	"fmt"
	"io"

	"github.com/lcrostarosa/sss256/internal/gf256"
)

// Encode writes N shares of secret, using the given flat coefficient
// buffer, to w in the wire format of spec.md §4.2/§6:
//
//	II-D1D2...DL\n
//
// len(coeffs) must equal len(secret)*(T-1) for some T in [2,N]; T is
// derived from that ratio. Each share's data byte is the Horner
// evaluation of the degree-(T-1) polynomial for that secret byte at the
// share's 1-based index. Shares are built one at a time as a Share value
// and streamed to w rather than collected, so encoding a large secret
// never holds all N shares in memory at once.
func Encode(w io.Writer, secret, coeffs []byte, n int) error {
	l := len(secret)
	tMinus1 := 0
	if l > 0 {
		tMinus1 = len(coeffs) / l
	}

	for i := 1; i <= n; i++ {
		sh := Share{Index: byte(i), Data: make([]byte, l)}
		for p := 0; p < l; p++ {
			base := p * tMinus1
			var y byte
			for k := 0; k < tMinus1; k++ {
				y = gf256.Mul(gf256.Add(y, coeffs[base+k]), sh.Index)
			}
			sh.Data[p] = gf256.Add(y, secret[p])
		}
		if err := writeShare(w, sh); err != nil {
			return err
		}
	}
	return nil
}

// writeShare writes a single share in the wire format of spec.md §4.2:
// "II-D1D2...DL\n".
func writeShare(w io.Writer, sh Share) error {
	if _, err := fmt.Fprintf(w, "%02x-", sh.Index); err != nil {
		return err
	}
	for _, d := range sh.Data {
		if _, err := fmt.Fprintf(w, "%02x", d); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
