/*
Package macpaint reads and writes MacPaint images and converts them to
and from modern raster formats.

A MacPaint file is a fixed 576 by 720 pixel 1-bit canvas: a 512 byte
header followed by PackBits-compressed scanlines. Converting a color
or greyscale image onto that canvas means reducing it to luminance,
dithering it down to pure black and white and cropping or padding it
to size; all of that lives here, in the grey subpackage and the
packbits subpackage.
*/
package macpaint

import "log"

// Converter converts between MacPaint files and common raster images.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter which logs warnings to the passed logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}
