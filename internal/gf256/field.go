// Package gf256 implements arithmetic over GF(2^8) with the Rijndael
// reducing polynomial x^8+x^4+x^3+x+1, backed by precomputed log/exp
// tables with base {03}.
package gf256

// logTable[a] gives log_{03}(a) for a in [1,255]. logTable[0] is a
// sentinel; reading it is a programming error (there is no log of zero).
var logTable [256]byte

// expTable[e] gives exp_{03}(e) for e in [0,508]. The table duplicates
// the 255-entry cycle once (indices 255..508 mirror 0..253) so Mul never
// needs a modular reduction on the summed exponent: log(x)+log(y) is at
// most 254+254 = 508, always a valid index.
var expTable [509]byte

func init() {
	a := byte(1)
	for e := 0; e < 255; e++ {
		logTable[a] = byte(e)
		expTable[e] = a
		if e < 254 {
			expTable[e+255] = a
		}
		hi := a & 0x80
		a ^= a << 1
		if hi != 0 {
			a ^= 0x1b
		}
	}
	if a != 1 {
		panic("gf256: table construction did not cycle back to 01")
	}
}

// Add returns x+y in GF(2^8), which is simply XOR.
func Add(x, y byte) byte {
	return x ^ y
}

// Mul returns x*y in GF(2^8).
func Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return expTable[int(logTable[x])+int(logTable[y])]
}

// Inv returns the multiplicative inverse of x. x must be non-zero;
// calling Inv(0) is a contract violation and panics.
func Inv(x byte) byte {
	if x == 0 {
		panic("gf256: inverse of zero is undefined")
	}
	return expTable[255-int(logTable[x])]
}
