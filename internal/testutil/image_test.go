package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/zscan"
)

func TestQRImage_Decodes(t *testing.T) {
	img := QRImage(t, "fixture", 160)
	res, err := zscan.DecodeImage(img, nil)
	require.NoError(t, err)
	assert.Equal(t, "fixture", res.Text)
}

func TestGradientImage_HasNoBarcode(t *testing.T) {
	_, err := zscan.DecodeImage(GradientImage(120, 120), nil)
	require.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	path := WritePNG(t, t.TempDir(), "qr.png", QRImage(t, "saved", 160))
	res, err := zscan.DecodeFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "saved", res.Text)
}
