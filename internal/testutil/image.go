// Package testutil provides synthesized image fixtures for tests. Barcode
// fixtures are produced by the encoder itself so decode tests exercise the
// real pipeline end to end.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/zscan"
)

// BarcodeImage renders text as a barcode of the given symbology.
func BarcodeImage(t *testing.T, text, format string, width, height int) image.Image {
	t.Helper()
	m, err := zscan.Encode(text, format, width, height, nil)
	if err != nil {
		t.Fatalf("failed to encode %s fixture: %v", format, err)
	}
	return m.Image()
}

// QRImage renders text as a square QR code.
func QRImage(t *testing.T, text string, size int) image.Image {
	t.Helper()
	return BarcodeImage(t, text, "QR_CODE", size, size)
}

// GradientImage produces an image with no barcode in it.
func GradientImage(width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}
	return img
}

// PNGBytes encodes img as PNG in memory.
func PNGBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture PNG: %v", err)
	}
	return buf.Bytes()
}

// WritePNG stores img under dir and returns the file path.
func WritePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, PNGBytes(t, img), 0o600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}
