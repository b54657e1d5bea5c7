package zscan

import (
	"strings"

	"github.com/makiuchi-d/gozxing"
)

// Format identifies a barcode symbology. The set is closed; parsing a name
// outside the catalog fails rather than defaulting.
type Format int

const (
	FormatAztec Format = iota
	FormatCodabar
	FormatCode39
	FormatCode93
	FormatCode128
	FormatDataMatrix
	FormatEAN8
	FormatEAN13
	FormatITF
	FormatMaxiCode
	FormatPDF417
	FormatQRCode
	FormatRSS14
	FormatRSSExpanded
	FormatUPCA
	FormatUPCE
	FormatUPCEANExtension
)

// formatNames is the bidirectional string table. The names are the canonical
// catalog values callers use in POSSIBLE_FORMATS and as encode targets.
var formatNames = map[Format]string{
	FormatAztec:           "AZTEC",
	FormatCodabar:         "CODABAR",
	FormatCode39:          "CODE_39",
	FormatCode93:          "CODE_93",
	FormatCode128:         "CODE_128",
	FormatDataMatrix:      "DATA_MATRIX",
	FormatEAN8:            "EAN_8",
	FormatEAN13:           "EAN_13",
	FormatITF:             "ITF",
	FormatMaxiCode:        "MAXICODE",
	FormatPDF417:          "PDF_417",
	FormatQRCode:          "QR_CODE",
	FormatRSS14:           "RSS_14",
	FormatRSSExpanded:     "RSS_EXPANDED",
	FormatUPCA:            "UPC_A",
	FormatUPCE:            "UPC_E",
	FormatUPCEANExtension: "UPC_EAN_EXTENSION",
}

var formatValues = func() map[string]Format {
	m := make(map[string]Format, len(formatNames))
	for f, name := range formatNames {
		m[name] = f
	}
	return m
}()

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseFormat resolves a symbology name case-insensitively. Unknown names
// yield a *ValidationError; there is no silent default.
func ParseFormat(s string) (Format, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if f, ok := formatValues[name]; ok {
		return f, nil
	}
	return 0, &ValidationError{Field: "format", Reason: "unknown barcode format " + s}
}

// Formats returns the full symbology catalog in declaration order.
func Formats() []Format {
	out := make([]Format, 0, len(formatNames))
	for f := FormatAztec; f <= FormatUPCEANExtension; f++ {
		out = append(out, f)
	}
	return out
}

// FormatNames returns the canonical catalog names, in catalog order, for
// callers that construct POSSIBLE_FORMATS or encode targets without
// guessing casing.
func FormatNames() []string {
	fs := Formats()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

// engineFormats maps the catalog onto the engine's enumeration.
var engineFormats = map[Format]gozxing.BarcodeFormat{
	FormatAztec:           gozxing.BarcodeFormat_AZTEC,
	FormatCodabar:         gozxing.BarcodeFormat_CODABAR,
	FormatCode39:          gozxing.BarcodeFormat_CODE_39,
	FormatCode93:          gozxing.BarcodeFormat_CODE_93,
	FormatCode128:         gozxing.BarcodeFormat_CODE_128,
	FormatDataMatrix:      gozxing.BarcodeFormat_DATA_MATRIX,
	FormatEAN8:            gozxing.BarcodeFormat_EAN_8,
	FormatEAN13:           gozxing.BarcodeFormat_EAN_13,
	FormatITF:             gozxing.BarcodeFormat_ITF,
	FormatMaxiCode:        gozxing.BarcodeFormat_MAXICODE,
	FormatPDF417:          gozxing.BarcodeFormat_PDF_417,
	FormatQRCode:          gozxing.BarcodeFormat_QR_CODE,
	FormatRSS14:           gozxing.BarcodeFormat_RSS_14,
	FormatRSSExpanded:     gozxing.BarcodeFormat_RSS_EXPANDED,
	FormatUPCA:            gozxing.BarcodeFormat_UPC_A,
	FormatUPCE:            gozxing.BarcodeFormat_UPC_E,
	FormatUPCEANExtension: gozxing.BarcodeFormat_UPC_EAN_EXTENSION,
}

var catalogFormats = func() map[gozxing.BarcodeFormat]Format {
	m := make(map[gozxing.BarcodeFormat]Format, len(engineFormats))
	for f, ef := range engineFormats {
		m[ef] = f
	}
	return m
}()

func (f Format) engine() gozxing.BarcodeFormat {
	return engineFormats[f]
}

// formatName stringifies an engine format through the catalog table so the
// external representation does not depend on the engine's own String().
func formatName(ef gozxing.BarcodeFormat) string {
	if f, ok := catalogFormats[ef]; ok {
		return f.String()
	}
	return ef.String()
}
