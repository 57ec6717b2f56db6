package raster_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/macpaint/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, m image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
	return path
}

func TestReadGray(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 4, 3))
	for i := range m.Pix {
		m.Pix[i] = byte(i * 20)
	}

	g, err := raster.Read(writePNG(t, m))
	require.NoError(t, err)

	assert.Equal(t, raster.ModeGray, g.Mode)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	require.Len(t, g.Rows, 3)
	assert.Equal(t, m.Pix[0:4], g.Rows[0])
	assert.Equal(t, m.Pix[8:12], g.Rows[2])
}

func TestReadRGBA(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	m.Set(1, 1, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	g, err := raster.Read(writePNG(t, m))
	require.NoError(t, err)

	assert.Equal(t, raster.ModeRGBA, g.Mode)
	assert.Equal(t, 4, g.Mode.Channels())
	require.Len(t, g.Rows, 2)
	assert.Equal(t, []byte{10, 20, 30, 255}, g.Rows[0][:4])
	assert.Equal(t, []byte{40, 50, 60, 255}, g.Rows[1][4:])
}

func TestReadIndexed(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
		color.Black,
		color.White,
	})

	_, err := raster.Read(writePNG(t, m))
	assert.ErrorIs(t, err, raster.ErrIndexedColor)
}

func TestReadSixteenBit(t *testing.T) {
	_, err := raster.Read(writePNG(t, image.NewGray16(image.Rect(0, 0, 2, 2))))
	assert.ErrorIs(t, err, raster.ErrUnsupportedDepth)
}

func TestWriteGrayRoundTrip(t *testing.T) {
	rows := [][]byte{
		{0, 85, 170, 255},
		{255, 170, 85, 0},
	}

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, raster.WriteGray(path, rows))

	g, err := raster.Read(path)
	require.NoError(t, err)

	assert.Equal(t, raster.ModeGray, g.Mode)
	assert.Equal(t, rows, g.Rows)
}

func TestWriteGrayEmpty(t *testing.T) {
	assert.Error(t, raster.WriteGray(filepath.Join(t.TempDir(), "out.png"), nil))
}
