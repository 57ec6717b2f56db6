package macpaint

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader() Header {
	h := Header{Version: 2}
	for i := range h.Patterns {
		for j := range h.Patterns[i] {
			h.Patterns[i][j] = byte(i ^ j)
		}
	}
	for i := range h.Reserved {
		h.Reserved[i] = byte(i)
	}
	return h
}

func TestHeaderSize(t *testing.T) {
	b, err := testHeader().MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, b, HeaderSize)
}

func TestHeaderRoundTrip(t *testing.T) {
	h := testHeader()

	b, err := h.MarshalBinary()
	require.NoError(t, err)

	parsed, err := ParseHeader(b)
	require.NoError(t, err)

	// Everything except the version must survive unchanged; the
	// version is covered separately below because of the byte order
	// quirk.
	assert.Equal(t, h.Patterns, parsed.Patterns)
	assert.Equal(t, h.Reserved, parsed.Reserved)
}

// The version is historically read in native byte order but always
// written big-endian. Pin both behaviors down so nobody "fixes" one
// side and silently breaks files written by the other.
func TestHeaderVersionByteOrder(t *testing.T) {
	raw := make([]byte, HeaderSize)
	copy(raw[:4], []byte{0x12, 0x34, 0x56, 0x78})

	h, err := ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, binary.NativeEndian.Uint32(raw[:4]), h.Version)

	b, err := Header{Version: 0x12345678}.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, b[:4])
}

func TestParseHeaderShort(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	assert.Error(t, err)
}

func TestDefaultHeader(t *testing.T) {
	var h Header

	b, err := h.MarshalBinary()
	require.NoError(t, err)

	for _, v := range b {
		require.Zero(t, v)
	}
}
