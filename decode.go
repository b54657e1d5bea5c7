package zscan

import (
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/aztec"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/MeKo-Tech/zscan/internal/imgio"
)

// decodePriority fixes the dispatch order: dense 2D symbologies first, then
// the 1D family. POSSIBLE_FORMATS restricts this list but never reorders it.
var decodePriority = []Format{
	FormatQRCode,
	FormatDataMatrix,
	FormatAztec,
	FormatCode128,
	FormatCode39,
	FormatCode93,
	FormatEAN13,
	FormatEAN8,
	FormatUPCA,
	FormatUPCE,
	FormatITF,
	FormatCodabar,
}

// engineReaders maps each symbology to its engine reader constructor.
// Catalog entries absent here (MAXICODE, PDF_417, RSS_14, RSS_EXPANDED,
// UPC_EAN_EXTENSION) are valid names that the engine cannot decode.
var engineReaders = map[Format]func() gozxing.Reader{
	FormatQRCode:     func() gozxing.Reader { return qrcode.NewQRCodeReader() },
	FormatDataMatrix: func() gozxing.Reader { return datamatrix.NewDataMatrixReader() },
	FormatAztec:      func() gozxing.Reader { return aztec.NewAztecReader() },
	FormatCode128:    func() gozxing.Reader { return oned.NewCode128Reader() },
	FormatCode39:     func() gozxing.Reader { return oned.NewCode39Reader() },
	FormatCode93:     func() gozxing.Reader { return oned.NewCode93Reader() },
	FormatEAN13:      func() gozxing.Reader { return oned.NewEAN13Reader() },
	FormatEAN8:       func() gozxing.Reader { return oned.NewEAN8Reader() },
	FormatUPCA:       func() gozxing.Reader { return oned.NewUPCAReader() },
	FormatUPCE:       func() gozxing.Reader { return oned.NewUPCEReader() },
	FormatITF:        func() gozxing.Reader { return oned.NewITFReader() },
	FormatCodabar:    func() gozxing.Reader { return oned.NewCodaBarReader() },
}

// DecodePixels decodes a barcode from a raw row-major 8-bit grayscale
// buffer. The buffer length is validated against width*height before any
// other work.
func DecodePixels(pix []byte, width, height int, opts map[string]interface{}) (*Result, error) {
	img, err := newLumaImage(pix, width, height)
	if err != nil {
		return nil, err
	}
	hints, err := ParseDecodeHints(opts)
	if err != nil {
		return nil, err
	}
	return decodeImage(img, hints)
}

// DecodeBytes decodes a barcode from encoded image bytes (PNG, JPEG, BMP,
// TIFF, WebP). A codec failure is an *ImageError, distinct from a decode
// failure.
func DecodeBytes(data []byte, opts map[string]interface{}) (*Result, error) {
	hints, err := ParseDecodeHints(opts)
	if err != nil {
		return nil, err
	}
	img, _, err := imgio.DecodeBytes(data)
	if err != nil {
		return nil, &ImageError{Op: "decode", Err: err}
	}
	return decodeImage(img, hints)
}

// DecodeFile decodes a barcode from an image file. A missing path yields a
// *NotFoundError before any read is attempted.
func DecodeFile(path string, opts map[string]interface{}) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, &ImageError{Op: "stat", Err: err}
	}
	hints, err := ParseDecodeHints(opts)
	if err != nil {
		return nil, err
	}
	img, _, err := imgio.Load(path)
	if err != nil {
		return nil, &ImageError{Op: "load", Err: err}
	}
	return decodeImage(img, hints)
}

// DecodeImage decodes a barcode from an already-materialized image. The
// other Decode entry points funnel through here.
func DecodeImage(img image.Image, opts map[string]interface{}) (*Result, error) {
	hints, err := ParseDecodeHints(opts)
	if err != nil {
		return nil, err
	}
	return decodeImage(img, hints)
}

func decodeImage(img image.Image, hints DecodeHints) (*Result, error) {
	res, lastErr := dispatch(img, hints)
	if res != nil {
		return res, nil
	}
	// ALSO_INVERTED: one more pass over the photometric inverse, only after
	// the direct attempt failed.
	if hints.AlsoInverted != nil && *hints.AlsoInverted {
		var invErr error
		res, invErr = dispatch(imaging.Invert(img), hints)
		if res != nil {
			return res, nil
		}
		if invErr != nil {
			lastErr = invErr
		}
	}
	return nil, &DecodeError{Hints: hints, Err: lastErr}
}

// dispatch binarizes once and tries each candidate symbology in priority
// order, returning on the first success. The returned error is the last
// per-format engine error, kept for diagnostics only.
func dispatch(img image.Image, hints DecodeHints) (*Result, error) {
	bmp, err := binarize(img)
	if err != nil {
		return nil, err
	}
	engineHints := hints.engine()

	var lastErr error
	for _, f := range candidateFormats(hints) {
		newReader, ok := engineReaders[f]
		if !ok {
			slog.Debug("no engine reader for symbology", "format", f.String())
			continue
		}
		r, err := newReader().Decode(bmp, engineHints)
		if err != nil {
			lastErr = err
			continue
		}
		return newResult(r), nil
	}
	return nil, lastErr
}

// candidateFormats resolves the symbologies to try. An unset or empty
// PossibleFormats means the full priority list; a set one restricts the
// list without falling back to anything outside it.
func candidateFormats(hints DecodeHints) []Format {
	if len(hints.PossibleFormats) == 0 {
		return decodePriority
	}
	want := make(map[Format]bool, len(hints.PossibleFormats))
	for _, f := range hints.PossibleFormats {
		want[f] = true
	}
	out := make([]Format, 0, len(hints.PossibleFormats))
	for _, f := range decodePriority {
		if want[f] {
			out = append(out, f)
		}
	}
	return out
}
