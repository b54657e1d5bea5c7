package zscan

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"golang.org/x/text/encoding/ianaindex"
)

// DecodeHints carries optional decode tuning. Nil fields mean "unset": the
// engine chooses its own default, which is not the same as an explicit
// false/empty value.
type DecodeHints struct {
	TryHarder       *bool
	PureBarcode     *bool
	PossibleFormats []Format
	CharacterSet    *string
	AlsoInverted    *bool
}

// EncodeHints carries optional encode tuning with the same unset-vs-default
// distinction as DecodeHints.
type EncodeHints struct {
	ErrorCorrection *string
	CharacterSet    *string
	Margin          *int
	QRVersion       *int
}

// Recognized option keys. Matching is case-insensitive; keys are
// canonicalized by uppercasing.
const (
	hintTryHarder       = "TRY_HARDER"
	hintPureBarcode     = "PURE_BARCODE"
	hintPossibleFormats = "POSSIBLE_FORMATS"
	hintCharacterSet    = "CHARACTER_SET"
	hintAlsoInverted    = "ALSO_INVERTED"
	hintErrorCorrection = "ERROR_CORRECTION"
	hintMargin          = "MARGIN"
	hintQRVersion       = "QR_VERSION"
)

// ParseDecodeHints translates a flat string-keyed option map into typed
// decode hints. Unknown keys are logged and ignored so hint-set evolution
// does not break callers; wrongly typed values are a hard failure naming
// the offending key. A nil map yields all-unset hints.
func ParseDecodeHints(opts map[string]interface{}) (DecodeHints, error) {
	var hints DecodeHints
	for key, value := range opts {
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case hintTryHarder:
			b, err := hintBool(key, value)
			if err != nil {
				return DecodeHints{}, err
			}
			hints.TryHarder = &b
		case hintPureBarcode:
			b, err := hintBool(key, value)
			if err != nil {
				return DecodeHints{}, err
			}
			hints.PureBarcode = &b
		case hintPossibleFormats:
			formats, err := hintFormats(key, value)
			if err != nil {
				return DecodeHints{}, err
			}
			// An empty set is treated as unset, not "match nothing".
			if len(formats) > 0 {
				hints.PossibleFormats = formats
			}
		case hintCharacterSet:
			s, err := hintCharset(key, value)
			if err != nil {
				return DecodeHints{}, err
			}
			hints.CharacterSet = &s
		case hintAlsoInverted:
			b, err := hintBool(key, value)
			if err != nil {
				return DecodeHints{}, err
			}
			hints.AlsoInverted = &b
		default:
			slog.Warn("ignoring unknown decode hint", "key", key)
		}
	}
	return hints, nil
}

// ParseEncodeHints translates a flat string-keyed option map into typed
// encode hints, with the same unknown-key and type-mismatch policy as
// ParseDecodeHints.
func ParseEncodeHints(opts map[string]interface{}) (EncodeHints, error) {
	var hints EncodeHints
	for key, value := range opts {
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case hintErrorCorrection:
			s, err := hintString(key, value)
			if err != nil {
				return EncodeHints{}, err
			}
			hints.ErrorCorrection = &s
		case hintCharacterSet:
			s, err := hintCharset(key, value)
			if err != nil {
				return EncodeHints{}, err
			}
			hints.CharacterSet = &s
		case hintMargin:
			n, err := hintInt(key, value)
			if err != nil {
				return EncodeHints{}, err
			}
			hints.Margin = &n
		case hintQRVersion:
			n, err := hintInt(key, value)
			if err != nil {
				return EncodeHints{}, err
			}
			hints.QRVersion = &n
		default:
			slog.Warn("ignoring unknown encode hint", "key", key)
		}
	}
	return hints, nil
}

func hintBool(key string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &ValidationError{Field: key, Reason: fmt.Sprintf("expected bool, got %T", v)}
	}
	return b, nil
}

func hintString(key string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: key, Reason: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

// hintInt accepts the integer shapes that reach this layer in practice:
// native ints and the float64 values JSON decoding produces.
func hintInt(key string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &ValidationError{Field: key, Reason: fmt.Sprintf("expected integer, got %v", n)}
		}
		return int(n), nil
	default:
		return 0, &ValidationError{Field: key, Reason: fmt.Sprintf("expected integer, got %T", v)}
	}
}

// hintCharset resolves a character set name against the IANA index so typos
// fail before the engine runs.
func hintCharset(key string, v interface{}) (string, error) {
	s, err := hintString(key, v)
	if err != nil {
		return "", err
	}
	if _, err := ianaindex.IANA.Encoding(s); err != nil {
		return "", &ValidationError{Field: key, Reason: "unknown character set " + s}
	}
	return s, nil
}

// hintFormats parses a sequence of symbology names, collapsing duplicates
// while preserving first-seen order. A non-sequence value is a type error.
func hintFormats(key string, v interface{}) ([]Format, error) {
	var names []string
	switch seq := v.(type) {
	case []string:
		names = seq
	case []interface{}:
		names = make([]string, 0, len(seq))
		for _, item := range seq {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Field: key, Reason: fmt.Sprintf("expected sequence of strings, found %T element", item)}
			}
			names = append(names, s)
		}
	default:
		return nil, &ValidationError{Field: key, Reason: fmt.Sprintf("expected sequence of format names, got %T", v)}
	}

	seen := make(map[Format]bool, len(names))
	formats := make([]Format, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, &ValidationError{Field: key, Reason: "unknown barcode format " + name}
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// engine converts the typed hints into the engine's hint map. AlsoInverted
// is handled by the dispatcher itself and does not appear here.
func (h DecodeHints) engine() map[gozxing.DecodeHintType]interface{} {
	m := make(map[gozxing.DecodeHintType]interface{})
	if h.TryHarder != nil && *h.TryHarder {
		m[gozxing.DecodeHintType_TRY_HARDER] = true
	}
	if h.PureBarcode != nil && *h.PureBarcode {
		m[gozxing.DecodeHintType_PURE_BARCODE] = true
	}
	if h.CharacterSet != nil {
		m[gozxing.DecodeHintType_CHARACTER_SET] = *h.CharacterSet
	}
	if len(h.PossibleFormats) > 0 {
		formats := make([]gozxing.BarcodeFormat, len(h.PossibleFormats))
		for i, f := range h.PossibleFormats {
			formats[i] = f.engine()
		}
		m[gozxing.DecodeHintType_POSSIBLE_FORMATS] = formats
	}
	return m
}

func (h EncodeHints) engine() map[gozxing.EncodeHintType]interface{} {
	m := make(map[gozxing.EncodeHintType]interface{})
	if h.ErrorCorrection != nil {
		m[gozxing.EncodeHintType_ERROR_CORRECTION] = *h.ErrorCorrection
	}
	if h.CharacterSet != nil {
		m[gozxing.EncodeHintType_CHARACTER_SET] = *h.CharacterSet
	}
	if h.Margin != nil {
		m[gozxing.EncodeHintType_MARGIN] = *h.Margin
	}
	if h.QRVersion != nil {
		m[gozxing.EncodeHintType_QR_VERSION] = *h.QRVersion
	}
	return m
}
