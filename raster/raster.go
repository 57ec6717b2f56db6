/*
Package raster is the narrow boundary between the converter and the
general-purpose image libraries. Read turns a decoded image into rows
of raw samples; WriteGray writes greyscale rows out as a PNG.

Decoders are pulled in for PNG, JPEG, BMP and QOI. GIF is deliberately
absent: GIF is always indexed color, which the converter rejects.
*/
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/google/renameio"
	_ "github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
)

// Mode describes the sample layout of a Grid row.
type Mode int

const (
	// ModeGray is one 8-bit luminance sample per pixel.
	ModeGray Mode = iota
	// ModeRGB is three 8-bit samples per pixel.
	ModeRGB
	// ModeRGBA is four 8-bit samples per pixel.
	ModeRGBA
)

// Channels returns the number of samples per pixel.
func (m Mode) Channels() int {
	switch m {
	case ModeRGB:
		return 3
	case ModeRGBA:
		return 4
	default:
		return 1
	}
}

var (
	// ErrIndexedColor is returned for palette-based images.
	ErrIndexedColor = errors.New("raster: indexed color images are not supported, convert to greyscale or RGB first")

	// ErrUnsupportedDepth is returned for images that do not use 8
	// bits per sample.
	ErrUnsupportedDepth = errors.New("raster: only 8-bit greyscale or RGB/RGBA images are supported")
)

// Grid is a decoded image as rows of raw samples, Mode.Channels()
// bytes per pixel.
type Grid struct {
	Width  int
	Height int
	Mode   Mode
	Rows   [][]byte
}

// Read decodes the image at path into a Grid. Greyscale+alpha input
// is normalized to RGBA by the underlying decoders before it gets
// here, so it comes back as ModeRGBA rather than being rejected.
func Read(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	g := &Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Rows:   make([][]byte, 0, b.Dy()),
	}

	switch m := m.(type) {
	case *image.Gray:
		g.Mode = ModeGray
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			g.Rows = append(g.Rows, m.Pix[i:i+g.Width])
		}
	case *image.NRGBA:
		g.Mode = ModeRGBA
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			g.Rows = append(g.Rows, m.Pix[i:i+g.Width*4])
		}
	case *image.RGBA:
		g.Mode = ModeRGBA
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			g.Rows = append(g.Rows, m.Pix[i:i+g.Width*4])
		}
	case *image.YCbCr:
		// JPEG; no alpha, convert to packed RGB
		g.Mode = ModeRGB
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := make([]byte, 0, g.Width*3)
			for x := b.Min.X; x < b.Max.X; x++ {
				r, gr, bl, _ := m.At(x, y).RGBA()
				row = append(row, byte(r>>8), byte(gr>>8), byte(bl>>8))
			}
			g.Rows = append(g.Rows, row)
		}
	case *image.Paletted:
		return nil, ErrIndexedColor
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedDepth, m)
	}

	return g, nil
}

// WriteGray writes rows of 8-bit greyscale samples to path as a PNG.
// The file is written via a temporary file and renamed into place so a
// failed conversion never leaves a partial file behind.
func WriteGray(path string, rows [][]byte) error {
	if len(rows) == 0 {
		return errors.New("raster: no rows to write")
	}

	m := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		copy(m.Pix[y*m.Stride:], row)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		return err
	}

	return renameio.WriteFile(path, buf.Bytes(), 0644)
}
