package sss

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicThreeOfFive(t *testing.T) {
	input := "01-000102\n09-102030\n03-112233\n"
	var log bytes.Buffer
	coord, err := Parse(strings.NewReader(input), &log, 3)
	require.NoError(t, err)

	want := CoordArray{
		0x01, 0x09, 0x03,
		0x00, 0x10, 0x11,
		0x01, 0x20, 0x22,
		0x02, 0x30, 0x33,
	}
	assert.Equal(t, want, coord)
	assert.Empty(t, log.String())
}

func TestParseEmptyInput(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader(""), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Expected hex digit, but reached the end of input on line 1, column 1.\n", log.String())
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseMissingData(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader("01-\n02-\n"), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Expected hex digit, but found control code LF (hex 0x0a) on line 1, column 4.\n", log.String())
}

func TestParseDuplicateIndex(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader("05-00\n05-01\n"), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Shares on lines 1 and 2 have the same index 0x05.\n", log.String())
}

func TestParseZeroIndex(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader("00-00\n01-01\n"), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Share on line 1 has the invalid index 0x00.\n", log.String())
}

func TestParseWrongSeparator(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader("01x00\n02-01\n"), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Expected '-', but found 'x' on line 1, column 3.\n", log.String())
}

func TestParseUppercaseHexAccepted(t *testing.T) {
	var log bytes.Buffer
	coord, err := Parse(strings.NewReader("0A-FF\n0B-EE\n"), &log, 2)
	require.NoError(t, err)
	assert.Equal(t, CoordArray{0x0a, 0x0b, 0xff, 0xee}, coord)
}

func TestParseWrongTerminator(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader("01-00\n02-01X"), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Expected end of line, but found 'X' on line 2, column 6.\n", log.String())
}

func TestParseFirstLineInvalidByteWhereHexExpected(t *testing.T) {
	var log bytes.Buffer
	_, err := Parse(strings.NewReader("01-00X02-01\n"), &log, 2)
	require.Error(t, err)
	assert.Equal(t, "Expected hex digit, but found 'X' on line 1, column 6.\n", log.String())
}

func TestParseIgnoresTrailingBytes(t *testing.T) {
	var log bytes.Buffer
	coord, err := Parse(strings.NewReader("01-00\n02-01\ngarbage that is not consumed"), &log, 2)
	require.NoError(t, err)
	assert.Equal(t, CoordArray{0x01, 0x02, 0x00, 0x01}, coord)
}

func TestParseReadErrorOtherThanEOFPropagates(t *testing.T) {
	boom := errors.New("boom")
	var log bytes.Buffer
	_, err := Parse(&errReader{err: boom}, &log, 2)
	assert.Same(t, boom, err)
	assert.Empty(t, log.String())
}

type errReader struct{ err error }

func (r *errReader) Read(p []byte) (int, error) { return 0, r.err }
