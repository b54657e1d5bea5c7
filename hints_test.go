package zscan

import (
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecodeHints_NilMap(t *testing.T) {
	hints, err := ParseDecodeHints(nil)
	require.NoError(t, err)
	assert.Nil(t, hints.TryHarder)
	assert.Nil(t, hints.PureBarcode)
	assert.Nil(t, hints.PossibleFormats)
	assert.Nil(t, hints.CharacterSet)
	assert.Nil(t, hints.AlsoInverted)
}

func TestParseDecodeHints_CaseInsensitiveKeys(t *testing.T) {
	hints, err := ParseDecodeHints(map[string]interface{}{
		"try_harder":    true,
		"Pure_Barcode":  false,
		"also_inverted": true,
	})
	require.NoError(t, err)
	require.NotNil(t, hints.TryHarder)
	assert.True(t, *hints.TryHarder)
	require.NotNil(t, hints.PureBarcode)
	assert.False(t, *hints.PureBarcode)
	require.NotNil(t, hints.AlsoInverted)
	assert.True(t, *hints.AlsoInverted)
}

func TestParseDecodeHints_UnsetIsNotFalse(t *testing.T) {
	unset, err := ParseDecodeHints(nil)
	require.NoError(t, err)
	explicit, err := ParseDecodeHints(map[string]interface{}{"TRY_HARDER": false})
	require.NoError(t, err)

	assert.Nil(t, unset.TryHarder)
	require.NotNil(t, explicit.TryHarder)
	assert.False(t, *explicit.TryHarder)
}

func TestParseDecodeHints_TypeMismatch(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"TRY_HARDER":       {"TRY_HARDER": "yes"},
		"PURE_BARCODE":     {"PURE_BARCODE": 1},
		"POSSIBLE_FORMATS": {"POSSIBLE_FORMATS": "QR_CODE"},
		"CHARACTER_SET":    {"CHARACTER_SET": 42},
	}
	for key, opts := range cases {
		_, err := ParseDecodeHints(opts)
		require.Error(t, err, key)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, key)
		assert.Equal(t, key, verr.Field)
	}
}

func TestParseDecodeHints_UnknownKeyIgnored(t *testing.T) {
	hints, err := ParseDecodeHints(map[string]interface{}{
		"NOT_A_REAL_HINT": 1,
		"TRY_HARDER":      true,
	})
	require.NoError(t, err)
	require.NotNil(t, hints.TryHarder)
	assert.True(t, *hints.TryHarder)
}

func TestParseDecodeHints_PossibleFormats(t *testing.T) {
	hints, err := ParseDecodeHints(map[string]interface{}{
		"POSSIBLE_FORMATS": []string{"qr_code", "EAN_13", "QR_CODE"},
	})
	require.NoError(t, err)
	// Duplicates collapse, first-seen order kept.
	assert.Equal(t, []Format{FormatQRCode, FormatEAN13}, hints.PossibleFormats)
}

func TestParseDecodeHints_PossibleFormatsInterfaceSlice(t *testing.T) {
	// JSON-decoded options arrive as []interface{}.
	hints, err := ParseDecodeHints(map[string]interface{}{
		"POSSIBLE_FORMATS": []interface{}{"CODE_128", "ITF"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatCode128, FormatITF}, hints.PossibleFormats)
}

func TestParseDecodeHints_PossibleFormatsEmptyIsUnset(t *testing.T) {
	hints, err := ParseDecodeHints(map[string]interface{}{
		"POSSIBLE_FORMATS": []string{},
	})
	require.NoError(t, err)
	assert.Nil(t, hints.PossibleFormats)
}

func TestParseDecodeHints_PossibleFormatsBadName(t *testing.T) {
	_, err := ParseDecodeHints(map[string]interface{}{
		"POSSIBLE_FORMATS": []string{"QR_CODE", "NOPE"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "POSSIBLE_FORMATS", verr.Field)
}

func TestParseDecodeHints_CharacterSet(t *testing.T) {
	hints, err := ParseDecodeHints(map[string]interface{}{"CHARACTER_SET": "UTF-8"})
	require.NoError(t, err)
	require.NotNil(t, hints.CharacterSet)
	assert.Equal(t, "UTF-8", *hints.CharacterSet)

	_, err = ParseDecodeHints(map[string]interface{}{"CHARACTER_SET": "no-such-charset"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestParseEncodeHints(t *testing.T) {
	hints, err := ParseEncodeHints(map[string]interface{}{
		"error_correction": "M",
		"MARGIN":           2,
		"QR_VERSION":       float64(7), // JSON number shape
		"CHARACTER_SET":    "ISO-8859-1",
	})
	require.NoError(t, err)
	require.NotNil(t, hints.ErrorCorrection)
	assert.Equal(t, "M", *hints.ErrorCorrection)
	require.NotNil(t, hints.Margin)
	assert.Equal(t, 2, *hints.Margin)
	require.NotNil(t, hints.QRVersion)
	assert.Equal(t, 7, *hints.QRVersion)
}

func TestParseEncodeHints_NonIntegralNumber(t *testing.T) {
	_, err := ParseEncodeHints(map[string]interface{}{"MARGIN": 1.5})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "MARGIN", verr.Field)
}

func TestParseEncodeHints_UnknownKeyIgnored(t *testing.T) {
	hints, err := ParseEncodeHints(map[string]interface{}{"SHINY_NEW_OPTION": true})
	require.NoError(t, err)
	assert.Nil(t, hints.ErrorCorrection)
	assert.Nil(t, hints.Margin)
}

func TestDecodeHints_EngineMap(t *testing.T) {
	tru := true
	cs := "UTF-8"
	hints := DecodeHints{
		TryHarder:       &tru,
		CharacterSet:    &cs,
		PossibleFormats: []Format{FormatQRCode, FormatEAN13},
	}
	m := hints.engine()
	assert.Equal(t, true, m[gozxing.DecodeHintType_TRY_HARDER])
	assert.Equal(t, "UTF-8", m[gozxing.DecodeHintType_CHARACTER_SET])
	assert.Equal(t,
		[]gozxing.BarcodeFormat{gozxing.BarcodeFormat_QR_CODE, gozxing.BarcodeFormat_EAN_13},
		m[gozxing.DecodeHintType_POSSIBLE_FORMATS])
	_, present := m[gozxing.DecodeHintType_PURE_BARCODE]
	assert.False(t, present)
}

func TestEncodeHints_EngineMapEmptyWhenUnset(t *testing.T) {
	m := EncodeHints{}.engine()
	assert.Empty(t, m)
}
