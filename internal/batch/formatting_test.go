package batch

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/zscan"
)

func sampleResults() []FileResult {
	return []FileResult{
		{
			Path: "/in/qr.png",
			Result: &zscan.Result{
				Text:    "hello",
				Format:  "QR_CODE",
				NumBits: 104,
				Points:  []zscan.Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 10, Y: 50}},
			},
		},
		{Path: "/in/none.png", Err: errors.New("no barcode found")},
	}
}

func TestFormatResults_Text(t *testing.T) {
	out, err := formatResults(sampleResults(), "text")
	require.NoError(t, err)
	assert.Contains(t, out, "# /in/qr.png")
	assert.Contains(t, out, "QR_CODE: hello")
	assert.Contains(t, out, "error: no barcode found")
}

func TestFormatResults_JSON(t *testing.T) {
	out, err := formatResults(sampleResults(), "json")
	require.NoError(t, err)

	var report struct {
		Files []map[string]interface{} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Files, 2)
	assert.Equal(t, "/in/qr.png", report.Files[0]["file"])
	assert.NotNil(t, report.Files[0]["barcode"])
	assert.Equal(t, "no barcode found", report.Files[1]["error"])
}

func TestFormatResults_CSV(t *testing.T) {
	out, err := formatResults(sampleResults(), "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"file", "format", "text", "num_bits", "points", "error"}, rows[0])
	assert.Equal(t, "QR_CODE", rows[1][1])
	assert.Equal(t, "104", rows[1][3])
	assert.Equal(t, "3", rows[1][4])
	assert.Equal(t, "no barcode found", rows[2][5])
}

func TestFormatResults_DefaultsToText(t *testing.T) {
	out, err := formatResults(sampleResults(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "QR_CODE: hello")
}
