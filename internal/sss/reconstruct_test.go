package sss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructBasic(t *testing.T) {
	coord := CoordArray{
		0x01, 0x09, 0x03,
		0x00, 0x10, 0x11,
		0x01, 0x20, 0x22,
		0x02, 0x30, 0x33,
	}
	var out bytes.Buffer
	require.NoError(t, Reconstruct(&out, coord, 3))
	assert.Len(t, out.Bytes(), 3)
}

func TestReconstructPanicsOnShortCoordArray(t *testing.T) {
	assert.Panics(t, func() {
		var out bytes.Buffer
		_ = Reconstruct(&out, CoordArray{0x01, 0x02}, 3)
	})
}

func TestReconstructByteParallelism(t *testing.T) {
	secret := []byte{0x11, 0x22, 0x33}
	coeffs := []byte{0x05, 0x06, 0x07} // T=2
	var encoded bytes.Buffer
	require.NoError(t, Encode(&encoded, secret, coeffs, 3))

	var log bytes.Buffer
	coord, err := Parse(bytes.NewReader(encoded.Bytes()), &log, 2)
	require.NoError(t, err)

	var baseline bytes.Buffer
	require.NoError(t, Reconstruct(&baseline, coord, 2))
	require.Equal(t, secret, baseline.Bytes())

	// Mutate column 1 only (the y-values for secret byte 1) across both
	// shares; column 0 and column 2 must reconstruct unchanged.
	mutated := make(CoordArray, len(coord))
	copy(mutated, coord)
	mutated[2*(1+1)+0] ^= 0xff
	mutated[2*(1+1)+1] ^= 0xff

	var out bytes.Buffer
	require.NoError(t, Reconstruct(&out, mutated, 2))
	assert.Equal(t, secret[0], out.Bytes()[0])
	assert.Equal(t, secret[2], out.Bytes()[2])
}
