/*
Package packbits implements the PackBits run-length encoding used by
MacPaint scanline data.

The compressed stream is a sequence of (header, payload) pairs. A
header byte of 0x00-0x7f is followed by header+1 literal bytes. A
header byte of 0x81-0xff, read as a two's complement value -1 to -127,
is followed by a single byte repeated 257-header times. A header byte
of exactly 0x80 carries no payload and is skipped.
*/
package packbits

import (
	"errors"
	"fmt"
)

// MaxLineLen is the longest input PackLine accepts. MacPaint scanlines
// are 72 bytes so the limit is never reached in practice, but the
// header byte cannot describe spans longer than 127.
const MaxLineLen = 127

const (
	minRun = 3
	maxRun = 127
)

// ErrTruncated is returned by Unpack when a header byte promises more
// payload than the input contains.
var ErrTruncated = errors.New("packbits: truncated input")

// Unpack decompresses data until the input is exhausted.
func Unpack(data []byte) ([]byte, error) {
	// A rough guess; runs expand beyond the input length.
	out := make([]byte, 0, len(data)*2)

	for i := 0; i < len(data); {
		header := data[i]
		switch {
		case header == 0x80:
			// No-op marker, the next byte is another header.
			i++
		case header > 0x80:
			if i+1 >= len(data) {
				return nil, fmt.Errorf("%w: run at offset %d has no value byte", ErrTruncated, i)
			}
			count := 257 - int(header)
			for j := 0; j < count; j++ {
				out = append(out, data[i+1])
			}
			i += 2
		default:
			count := int(header) + 1
			if i+1+count > len(data) {
				return nil, fmt.Errorf("%w: literal of %d bytes at offset %d overruns input", ErrTruncated, count, i)
			}
			out = append(out, data[i+1:i+1+count]...)
			i += 1 + count
		}
	}

	return out, nil
}

// runLength counts how many times line[i] repeats starting at i,
// capped at maxRun.
func runLength(line []byte, i int) int {
	n := 1
	for i+n < len(line) && line[i+n] == line[i] && n < maxRun {
		n++
	}
	return n
}

// PackLine compresses a single scanline. Lines are compressed
// independently of each other; a run never crosses a line boundary.
func PackLine(line []byte) ([]byte, error) {
	if len(line) > MaxLineLen {
		return nil, fmt.Errorf("packbits: line of %d bytes exceeds maximum of %d", len(line), MaxLineLen)
	}

	out := make([]byte, 0, len(line)+2)

	for i := 0; i < len(line); {
		if n := runLength(line, i); n >= minRun {
			out = append(out, byte(257-n), line[i])
			i += n
			continue
		}

		// Literal span: extend until a compressible run starts or the
		// span limit is hit.
		j := i + 1
		for j < len(line) && j-i < MaxLineLen {
			if runLength(line, j) >= minRun {
				break
			}
			j++
		}
		out = append(out, byte(j-i-1))
		out = append(out, line[i:j]...)
		i = j
	}

	return out, nil
}
