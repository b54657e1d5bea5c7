package zscan

import (
	"fmt"

	"github.com/makiuchi-d/gozxing"
)

// Point is an image-space coordinate of a detection feature, e.g. a finder
// pattern corner. Value semantics, freely copyable.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Result is the transport-stable decode output. It is deliberately a
// separate type from the engine's internal result so the external contract
// survives engine changes.
type Result struct {
	Text      string            `json:"text"`
	RawBytes  []byte            `json:"raw_bytes,omitempty"`
	NumBits   int               `json:"num_bits"`
	Points    []Point           `json:"result_points,omitempty"`
	Format    string            `json:"barcode_format"`
	Metadata  map[string]string `json:"result_metadata,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// metadataKeys pins the textual form of the engine's metadata tags. Callers
// match on these strings, so the table is part of the public contract and
// must stay stable.
var metadataKeys = map[gozxing.ResultMetadataType]string{
	gozxing.ResultMetadataType_OTHER:                      "OTHER",
	gozxing.ResultMetadataType_ORIENTATION:                "ORIENTATION",
	gozxing.ResultMetadataType_BYTE_SEGMENTS:              "BYTE_SEGMENTS",
	gozxing.ResultMetadataType_ERROR_CORRECTION_LEVEL:     "ERROR_CORRECTION_LEVEL",
	gozxing.ResultMetadataType_ISSUE_NUMBER:               "ISSUE_NUMBER",
	gozxing.ResultMetadataType_SUGGESTED_PRICE:            "SUGGESTED_PRICE",
	gozxing.ResultMetadataType_POSSIBLE_COUNTRY:           "POSSIBLE_COUNTRY",
	gozxing.ResultMetadataType_UPC_EAN_EXTENSION:          "UPC_EAN_EXTENSION",
	gozxing.ResultMetadataType_PDF417_EXTRA_METADATA:      "PDF417_EXTRA_METADATA",
	gozxing.ResultMetadataType_STRUCTURED_APPEND_SEQUENCE: "STRUCTURED_APPEND_SEQUENCE",
	gozxing.ResultMetadataType_STRUCTURED_APPEND_PARITY:   "STRUCTURED_APPEND_PARITY",
}

func metadataKey(t gozxing.ResultMetadataType) string {
	if s, ok := metadataKeys[t]; ok {
		return s
	}
	return fmt.Sprintf("METADATA_%d", int(t))
}

// metadataValue renders an engine metadata value as a stable string:
// strings pass through, everything else goes through fmt's default verb,
// which is deterministic for the scalar and byte-slice values the engine
// produces.
func metadataValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// newResult marshals the engine's result into the external shape. Point
// order is preserved as detected; raw bytes are carried whenever the engine
// supplies them.
func newResult(r *gozxing.Result) *Result {
	enginePoints := r.GetResultPoints()
	points := make([]Point, 0, len(enginePoints))
	for _, p := range enginePoints {
		points = append(points, Point{X: float32(p.GetX()), Y: float32(p.GetY())})
	}

	var metadata map[string]string
	if engineMeta := r.GetResultMetadata(); len(engineMeta) > 0 {
		metadata = make(map[string]string, len(engineMeta))
		for k, v := range engineMeta {
			metadata[metadataKey(k)] = metadataValue(v)
		}
	}

	return &Result{
		Text:      r.GetText(),
		RawBytes:  r.GetRawBytes(),
		NumBits:   r.GetNumBits(),
		Points:    points,
		Format:    formatName(r.GetBarcodeFormat()),
		Metadata:  metadata,
		Timestamp: r.GetTimestamp(),
	}
}
