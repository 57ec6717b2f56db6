package macpaint

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed size of the MacPaint file header.
	HeaderSize = 512

	// NumPatterns is the number of brush patterns stored in the header.
	NumPatterns = 38

	// PatternSize is the size in bytes of one brush pattern.
	PatternSize = 8

	reservedSize = HeaderSize - 4 - NumPatterns*PatternSize
)

// Header is the fixed 512 byte MacPaint file header. The zero value is
// the default header used when synthesizing a new file.
type Header struct {
	Version  uint32
	Patterns [NumPatterns][PatternSize]byte
	Reserved [reservedSize]byte
}

// ParseHeader reads a Header from the leading HeaderSize bytes of b.
//
// The version field is read in native byte order but written back in
// big-endian order by MarshalBinary. The asymmetry is inherited from
// earlier tooling and deliberately left alone so existing files keep
// reading the same way.
func ParseHeader(b []byte) (Header, error) {
	var h Header

	if len(b) < HeaderSize {
		return h, fmt.Errorf("macpaint: header is %d bytes, expected %d", len(b), HeaderSize)
	}

	h.Version = binary.NativeEndian.Uint32(b[:4])
	for i := range h.Patterns {
		copy(h.Patterns[i][:], b[4+i*PatternSize:4+(i+1)*PatternSize])
	}
	copy(h.Reserved[:], b[4+NumPatterns*PatternSize:HeaderSize])

	return h, nil
}

// MarshalBinary encodes the header into its 512 byte on-disk form.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, HeaderSize)

	b = binary.BigEndian.AppendUint32(b, h.Version)
	for i := range h.Patterns {
		b = append(b, h.Patterns[i][:]...)
	}
	b = append(b, h.Reserved[:]...)

	return b, nil
}
