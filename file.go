package macpaint

import (
	"fmt"
	"io"

	"github.com/bodgit/macpaint/grey"
	"github.com/bodgit/macpaint/packbits"
)

// The MacPaint canvas is fixed; there is no way to express any other
// size in the file format.
const (
	Width  = 576
	Height = 720

	bytesPerRow = Width / 8
)

// File is a MacPaint image: a Header followed by PackBits-compressed
// scanline data for a fixed 576 by 720 canvas of 1-bit pixels.
//
// The packed scanlines and the byte-per-pixel bitmap are two views of
// the same data; the bitmap is materialized on first use and cached.
type File struct {
	Header Header

	data      []byte   // compressed scanline data, as stored on disk
	scanlines [][]byte // Height rows of bytesPerRow packed bytes

	bitmap [][]byte // lazily derived from scanlines

	trailingJunk int
}

// Decode reads a MacPaint file from r.
//
// Some files in the wild carry trailing garbage which decompresses
// into extra scanlines; these are discarded and counted, retrievable
// via TrailingJunk. Too few scanlines is a hard error.
func Decode(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	header, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}

	f := &File{
		Header: header,
		data:   raw[HeaderSize:],
	}

	unpacked, err := packbits.Unpack(f.data)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(unpacked); i += bytesPerRow {
		end := i + bytesPerRow
		if end > len(unpacked) {
			end = len(unpacked)
		}
		f.scanlines = append(f.scanlines, unpacked[i:end])
	}

	if len(f.scanlines) > Height {
		f.trailingJunk = len(f.scanlines) - Height
		f.scanlines = f.scanlines[:Height]
	}

	if len(f.scanlines) < Height {
		return nil, fmt.Errorf("macpaint: got %d scanlines, expected %d", len(f.scanlines), Height)
	}

	if last := f.scanlines[Height-1]; len(last) != bytesPerRow {
		return nil, fmt.Errorf("macpaint: scanline %d is %d bytes, expected %d", Height-1, len(last), bytesPerRow)
	}

	return f, nil
}

// FromBitmap builds a File from a bitmap of exactly Height rows by
// Width pixels where every pixel is grey.White or grey.Black. The file
// gets a default header.
func FromBitmap(bitmap [][]byte) (*File, error) {
	if len(bitmap) != Height {
		return nil, fmt.Errorf("macpaint: bitmap has %d rows, expected %d", len(bitmap), Height)
	}

	f := &File{
		scanlines: make([][]byte, Height),
		bitmap:    bitmap,
	}

	for y, row := range bitmap {
		if len(row) != Width {
			return nil, fmt.Errorf("macpaint: bitmap row %d has %d pixels, expected %d", y, len(row), Width)
		}

		packed := make([]byte, bytesPerRow)
		for x, p := range row {
			switch p {
			case grey.Black:
				packed[x>>3] |= 1 << (7 - x&7)
			case grey.White:
			default:
				return nil, fmt.Errorf("macpaint: pixel (%d,%d) is %d, bitmap must be pure black and white", x, y, p)
			}
		}
		f.scanlines[y] = packed

		compressed, err := packbits.PackLine(packed)
		if err != nil {
			return nil, err
		}
		f.data = append(f.data, compressed...)
	}

	return f, nil
}

// Bitmap returns the image as Height rows of Width pixels, grey.Black
// where a bit is set and grey.White where it is clear. The result is
// computed once and cached; callers must not modify it.
func (f *File) Bitmap() [][]byte {
	if f.bitmap != nil {
		return f.bitmap
	}

	f.bitmap = make([][]byte, len(f.scanlines))
	for y, scanline := range f.scanlines {
		row := make([]byte, 0, Width)
		for _, b := range scanline {
			for k := 0; k < 8; k++ {
				if b&(1<<(7-k)) != 0 {
					row = append(row, grey.Black)
				} else {
					row = append(row, grey.White)
				}
			}
		}
		f.bitmap[y] = row
	}

	return f.bitmap
}

// TrailingJunk returns how many junk scanlines beyond the fixed canvas
// height were discarded when the file was decoded.
func (f *File) TrailingJunk() int {
	return f.trailingJunk
}

// MarshalBinary encodes the file into its on-disk form: the header
// followed by the compressed scanline data.
func (f *File) MarshalBinary() ([]byte, error) {
	b, err := f.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(b, f.data...), nil
}
