package zscan

import "fmt"

// ValidationError reports malformed input rejected before any engine work
// begins: a pixel buffer whose length does not match its dimensions, an
// unparseable format name, or a hint value of the wrong type.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "zscan: " + e.Reason
	}
	return fmt.Sprintf("zscan: %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced input file that does not exist. It is
// raised before any read or decode is attempted.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("zscan: file not found: %s", e.Path)
}

// ImageError reports that the image codec could not load or parse input
// bytes. It is distinct from DecodeError: the pixels never reached the
// barcode engine.
type ImageError struct {
	Op  string
	Err error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("zscan: image %s failed: %v", e.Op, e.Err)
}

func (e *ImageError) Unwrap() error { return e.Err }

// DecodeError reports that every applicable symbology was attempted and
// none produced a result. It carries the hints that were in effect so
// callers can see what was tried.
type DecodeError struct {
	Hints DecodeHints
	Err   error
}

func (e *DecodeError) Error() string {
	if len(e.Hints.PossibleFormats) > 0 {
		return fmt.Sprintf("zscan: no barcode found (formats tried: %v)", e.Hints.PossibleFormats)
	}
	return "zscan: no barcode found"
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that the engine could not produce a matrix for the
// given data and format, e.g. because the symbology's capacity is exceeded.
type EncodeError struct {
	Format  Format
	DataLen int
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("zscan: encoding %d bytes as %s failed: %v", e.DataLen, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
