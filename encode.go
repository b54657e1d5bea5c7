package zscan

import (
	"errors"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// engineWriters maps encodable symbologies to their engine writer
// constructors. Formats absent here are decode-only (AZTEC) or unsupported
// by the engine entirely, and fail with an EncodeError.
var engineWriters = map[Format]func() gozxing.Writer{
	FormatQRCode:     func() gozxing.Writer { return qrcode.NewQRCodeWriter() },
	FormatDataMatrix: func() gozxing.Writer { return datamatrix.NewDataMatrixWriter() },
	FormatCode128:    func() gozxing.Writer { return oned.NewCode128Writer() },
	FormatCode39:     func() gozxing.Writer { return oned.NewCode39Writer() },
	FormatCode93:     func() gozxing.Writer { return oned.NewCode93Writer() },
	FormatEAN8:       func() gozxing.Writer { return oned.NewEAN8Writer() },
	FormatEAN13:      func() gozxing.Writer { return oned.NewEAN13Writer() },
	FormatUPCA:       func() gozxing.Writer { return oned.NewUPCAWriter() },
	FormatUPCE:       func() gozxing.Writer { return oned.NewUPCEWriter() },
	FormatITF:        func() gozxing.Writer { return oned.NewITFWriter() },
	FormatCodabar:    func() gozxing.Writer { return oned.NewCodaBarWriter() },
}

// Encode renders text as a barcode matrix of the named symbology. The
// format name is parsed first, so an unknown name is a *ValidationError
// raised before the engine runs; engine failures (capacity exceeded,
// symbology constraints) surface as *EncodeError. Width and height are the
// requested canvas; the engine may still pad per its own margin rules.
func Encode(text, format string, width, height int, opts map[string]interface{}) (*BitMatrix, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	hints, err := ParseEncodeHints(opts)
	if err != nil {
		return nil, err
	}
	newWriter, ok := engineWriters[f]
	if !ok {
		return nil, &EncodeError{Format: f, DataLen: len(text), Err: errors.New("no encoder for symbology")}
	}
	m, err := newWriter().Encode(text, f.engine(), width, height, hints.engine())
	if err != nil {
		return nil, &EncodeError{Format: f, DataLen: len(text), Err: err}
	}
	return &BitMatrix{m: m}, nil
}
