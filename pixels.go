package zscan

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
)

// newLumaImage wraps a raw row-major 8-bit grayscale buffer without copying.
// The buffer length must match width*height exactly; violations are rejected
// here, before any luminance or binarization work happens.
func newLumaImage(pix []byte, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, &ValidationError{
			Field:  "dimensions",
			Reason: fmt.Sprintf("invalid image size %dx%d", width, height),
		}
	}
	if len(pix) != width*height {
		return nil, &ValidationError{
			Field:  "pixels",
			Reason: fmt.Sprintf("buffer length %d does not match %dx%d", len(pix), width, height),
		}
	}
	return &image.Gray{Pix: pix, Stride: width, Rect: image.Rect(0, 0, width, height)}, nil
}

// binarize runs the engine's adaptive binarizer over the image and wraps
// the output into a binary bitmap. The bitmap belongs to exactly one decode
// attempt; it is never cached or shared across calls.
func binarize(img image.Image) (*gozxing.BinaryBitmap, error) {
	src := gozxing.NewLuminanceSourceFromImage(img)
	return gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(src))
}
