package zscan

import (
	"image"
	"image/color"

	"github.com/makiuchi-d/gozxing"
)

// BitMatrix is a read-only view over an encoded barcode grid. Once
// returned it belongs to the caller; there are no mutation methods.
type BitMatrix struct {
	m *gozxing.BitMatrix
}

func (b *BitMatrix) Width() int  { return b.m.GetWidth() }
func (b *BitMatrix) Height() int { return b.m.GetHeight() }

// Get reports whether the module at (x, y) is set (foreground). Coordinates
// outside [0,Width)x[0,Height) are a programming error and panic.
func (b *BitMatrix) Get(x, y int) bool { return b.m.Get(x, y) }

// Rows returns a row-major snapshot of the grid.
func (b *BitMatrix) Rows() [][]bool {
	w, h := b.Width(), b.Height()
	rows := make([][]bool, h)
	for y := 0; y < h; y++ {
		row := make([]bool, w)
		for x := 0; x < w; x++ {
			row[x] = b.m.Get(x, y)
		}
		rows[y] = row
	}
	return rows
}

// Image rasterizes the matrix as grayscale, set modules black on white.
// The result is suitable for saving or for feeding back into decoding.
func (b *BitMatrix) Image() *image.Gray {
	w, h := b.Width(), b.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.m.Get(x, y) {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
