package zscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode("data", "NOT_A_FORMAT", 100, 100, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEncode_FormatNameCaseInsensitive(t *testing.T) {
	m, err := Encode("case test", "qr_code", 120, 120, nil)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestEncode_NoEncoderForSymbology(t *testing.T) {
	_, err := Encode("data", "MAXICODE", 100, 100, nil)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, FormatMaxiCode, eerr.Format)
	assert.Equal(t, 4, eerr.DataLen)
}

func TestEncode_DecodeOnlySymbologies(t *testing.T) {
	// AZTEC has a reader but no writer; PDF_417 has neither.
	for _, name := range []string{"AZTEC", "PDF_417"} {
		_, err := Encode("data", name, 100, 100, nil)
		var eerr *EncodeError
		require.ErrorAs(t, err, &eerr, name)
		assert.Equal(t, name, eerr.Format.String())
	}
}

func TestEncode_CapacityExceeded(t *testing.T) {
	// EAN-13 carries exactly 12-13 digits; this cannot fit.
	_, err := Encode(strings.Repeat("1", 40), "EAN_13", 200, 80, nil)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, FormatEAN13, eerr.Format)
}

func TestEncode_QRWithHints(t *testing.T) {
	m, err := Encode("hinted", "QR_CODE", 160, 160, map[string]interface{}{
		"ERROR_CORRECTION": "H",
		"MARGIN":           1,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m.Width(), 160)
	assert.GreaterOrEqual(t, m.Height(), 160)
}

func TestEncode_BadHintType(t *testing.T) {
	_, err := Encode("data", "QR_CODE", 100, 100, map[string]interface{}{
		"MARGIN": "wide",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "MARGIN", verr.Field)
}

func TestBitMatrix_View(t *testing.T) {
	m, err := Encode("matrix view", "QR_CODE", 100, 100, nil)
	require.NoError(t, err)

	w, h := m.Width(), m.Height()
	assert.Positive(t, w)
	assert.Positive(t, h)

	rows := m.Rows()
	require.Len(t, rows, h)
	require.Len(t, rows[0], w)

	// The quiet zone corner is always background.
	assert.False(t, m.Get(0, 0))
	assert.Equal(t, rows[0][0], m.Get(0, 0))

	// Somewhere inside there must be foreground modules.
	set := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Get(x, y) {
				set++
			}
		}
	}
	assert.Positive(t, set)
}

func TestBitMatrix_Image(t *testing.T) {
	m, err := Encode("rastered", "QR_CODE", 100, 100, nil)
	require.NoError(t, err)

	img := m.Image()
	assert.Equal(t, m.Width(), img.Bounds().Dx())
	assert.Equal(t, m.Height(), img.Bounds().Dy())
	// Quiet zone renders white.
	assert.EqualValues(t, 255, img.GrayAt(0, 0).Y)
}
