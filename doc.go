// Package zscan is a boundary layer over a multi-format barcode engine.
//
// It translates loosely-typed caller input (raw pixel buffers or encoded
// image bytes, plus a flat string-keyed option map) into the typed hints,
// luminance sources and binary bitmaps the engine works with, dispatches
// decoding across candidate symbologies, and marshals engine results into a
// transport-stable shape with deterministic metadata stringification.
//
// Decoding:
//
//	res, err := zscan.DecodeFile("ticket.png", map[string]interface{}{
//		"TRY_HARDER":       true,
//		"POSSIBLE_FORMATS": []string{"QR_CODE", "AZTEC"},
//	})
//
// Encoding:
//
//	m, err := zscan.Encode("https://example.com", "QR_CODE", 256, 256, nil)
//	img := m.Image()
//
// Every call constructs its own reader, bitmap and hints; nothing is shared
// or cached across calls, so concurrent use from independent goroutines is
// safe by construction.
package zscan
