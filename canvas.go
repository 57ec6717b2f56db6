package macpaint

import "github.com/bodgit/macpaint/grey"

// Normalize crops or pads rows of pixels to exactly height rows of
// width pixels. Extra rows and columns are truncated from the bottom
// and right; missing ones are filled in with white, so a small image
// ends up in the top-left corner of the canvas.
//
// Height is adjusted first, then every row is adjusted to width.
func Normalize(rows [][]byte, width, height int) [][]byte {
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		blank := make([]byte, width)
		for i := range blank {
			blank[i] = grey.White
		}
		rows = append(rows, blank)
	}

	out := make([][]byte, height)
	for y, row := range rows {
		if len(row) > width {
			row = row[:width]
		} else if len(row) < width {
			padded := make([]byte, width)
			copy(padded, row)
			for i := len(row); i < width; i++ {
				padded[i] = grey.White
			}
			row = padded
		}
		out[y] = row
	}

	return out
}
