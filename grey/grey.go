/*
Package grey reduces color pixel data to 8-bit greyscale and then to
pure black and white suitable for a 1-bit canvas.

The greyscale reduction is gamma-aware: each channel is linearized
with a 2.2 exponent, combined into a relative luminance and mapped to
perceptual lightness before being quantized to a byte. The black and
white reduction uses Atkinson error diffusion.
*/
package grey

import (
	"fmt"
	"math"
)

// Pixel values used throughout; every binary image holds only these.
const (
	White byte = 0xff
	Black byte = 0x00
)

const gamma = 2.2

// Atkinson kernel: an eighth of the quantization error goes to each
// of these neighbors, forward and downward only.
var offsets = [6][2]int{{1, 0}, {2, 0}, {-1, 1}, {0, 1}, {1, 1}, {0, 2}}

// ToGreyscale converts rows of packed 8-bit color samples, channels
// (3 for RGB, 4 for RGBA) bytes per pixel, to one luminance byte per
// pixel. An alpha channel is ignored; callers should warn about the
// information loss.
func ToGreyscale(rows [][]byte, channels int) ([][]byte, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("grey: unsupported channel count %d", channels)
	}

	out := make([][]byte, len(rows))
	for i, row := range rows {
		if len(row)%channels != 0 {
			return nil, fmt.Errorf("grey: row %d is %d samples, not a multiple of %d", i, len(row), channels)
		}

		grey := make([]byte, 0, len(row)/channels)
		for p := 0; p < len(row); p += channels {
			rLin := math.Pow(float64(row[p+0])/255, gamma)
			gLin := math.Pow(float64(row[p+1])/255, gamma)
			bLin := math.Pow(float64(row[p+2])/255, gamma)

			y := 0.2126*rLin + 0.7152*gLin + 0.0722*bLin
			l := (116*math.Cbrt(y) - 16) / 100
			if l < -5 {
				return nil, fmt.Errorf("grey: unexpectedly negative lightness %f at row %d", l, i)
			}
			grey = append(grey, byte(math.Round(math.Max(l, 0)*255)))
		}
		out[i] = grey
	}

	return out, nil
}

// Dither converts 8-bit greyscale rows to rows containing only White
// and Black using Atkinson error diffusion. Error spilling outside the
// image is dropped.
func Dither(rows [][]byte) [][]byte {
	errs := make([][]float64, len(rows))
	for i, row := range rows {
		errs[i] = make([]float64, len(row))
	}

	out := make([][]byte, len(rows))
	for y, row := range rows {
		dithered := make([]byte, len(row))
		for x, b := range row {
			pix := float64(b) + errs[y][x]

			var col float64
			if pix > 0x80 {
				col = 255
				dithered[x] = White
			} else {
				dithered[x] = Black
			}

			err := (pix - col) / 8
			for _, off := range offsets {
				ny, nx := y+off[1], x+off[0]
				if ny < 0 || ny >= len(errs) || nx < 0 || nx >= len(errs[ny]) {
					continue
				}
				errs[ny][nx] += err
			}
		}
		out[y] = dithered
	}

	return out
}

// IsBinary reports whether every sample is already White or Black.
func IsBinary(rows [][]byte) bool {
	for _, row := range rows {
		for _, b := range row {
			if b != White && b != Black {
				return false
			}
		}
	}
	return true
}
