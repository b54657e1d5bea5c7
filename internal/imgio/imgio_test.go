package imgio

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a.png"))
	assert.True(t, IsSupported("b.JPG"))
	assert.True(t, IsSupported("c.tiff"))
	assert.False(t, IsSupported("d.gif"))
	assert.False(t, IsSupported("e"))
}

func TestDecodeBytes(t *testing.T) {
	_, _, err := DecodeBytes(nil)
	require.Error(t, err)

	_, _, err = DecodeBytes([]byte("not pixels"))
	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "decode", ierr.Op)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	writeTestPNG(t, path, 32, 16)

	img, meta, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, meta.Width)
	assert.Equal(t, 16, meta.Height)
	assert.Equal(t, "png", meta.Format)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestLoad_Errors(t *testing.T) {
	_, _, err := Load("")
	require.Error(t, err)

	_, _, err = Load("unsupported.xyz")
	require.Error(t, err)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestFitWithin(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 400, 200))

	same := FitWithin(img, 500)
	assert.Equal(t, 400, same.Bounds().Dx())

	smaller := FitWithin(img, 100)
	assert.Equal(t, 100, smaller.Bounds().Dx())
	assert.Equal(t, 50, smaller.Bounds().Dy())

	unbounded := FitWithin(img, 0)
	assert.Equal(t, 400, unbounded.Bounds().Dx())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(image.NewGray(image.Rect(0, 0, 8, 8)), path))

	_, meta, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, meta.Width)
}
