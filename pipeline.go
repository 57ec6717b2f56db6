package macpaint

import (
	"os"

	"github.com/bodgit/macpaint/finder"
	"github.com/bodgit/macpaint/grey"
	"github.com/bodgit/macpaint/raster"
	"github.com/google/renameio"
)

// FromMacPaint converts the MacPaint file at in to a greyscale PNG at
// out.
//
// The bitmap is already pure black and white so it is written out
// verbatim, without any re-dithering.
func (c *Converter) FromMacPaint(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return err
	}

	if junk := m.TrailingJunk(); junk > 0 {
		c.logger.Printf("found %d junk scanlines at end of \"%s\", discarding\n", junk, in)
	}

	return raster.WriteGray(out, m.Bitmap())
}

// ToMacPaint converts the image at in to a MacPaint file at out.
//
// Color input is reduced to greyscale, anything that is not already
// pure black and white is dithered, and the result is cropped or
// padded to the fixed canvas.
func (c *Converter) ToMacPaint(in, out string) error {
	g, err := raster.Read(in)
	if err != nil {
		return err
	}

	rows := g.Rows
	switch g.Mode {
	case raster.ModeRGB, raster.ModeRGBA:
		if g.Mode == raster.ModeRGBA {
			c.logger.Printf("discarding alpha channel of \"%s\", re-encode without alpha for a better result\n", in)
		}
		if rows, err = grey.ToGreyscale(rows, g.Mode.Channels()); err != nil {
			return err
		}
	}

	if !grey.IsBinary(rows) {
		rows = grey.Dither(rows)
	}

	m, err := FromBitmap(Normalize(rows, Width, Height))
	if err != nil {
		return err
	}

	b, err := m.MarshalBinary()
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(out, b, 0644); err != nil {
		return err
	}

	// Best effort; most filesystems won't take the attribute.
	if err := finder.Tag(out, finder.TypeMacPaint, finder.CreatorMacPaint); err != nil {
		c.logger.Printf("could not tag \"%s\" with type/creator codes: %v\n", out, err)
	}

	return nil
}
