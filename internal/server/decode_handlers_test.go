package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/zscan/internal/testutil"
)

// multipartImage builds a multipart body with the given PNG under the
// "image" field, plus optional extra fields.
func multipartImage(t *testing.T, pngData []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("image", "test.png")
	require.NoError(t, err)
	_, err = fw.Write(pngData)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestDecodeHandler_QRCode(t *testing.T) {
	srv := newTestServer(t)
	pngData := testutil.PNGBytes(t, testutil.QRImage(t, "hello server", 200))

	body, contentType := multipartImage(t, pngData, nil)
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp DecodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "hello server", resp.Result.Text)
	assert.Equal(t, "QR_CODE", resp.Result.Format)
}

func TestDecodeHandler_NoFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/decode", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeHandler_InvalidImage(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartImage(t, []byte("not a png"), nil)
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeHandler_NoBarcode(t *testing.T) {
	srv := newTestServer(t)
	pngData := testutil.PNGBytes(t, testutil.GradientImage(120, 120))

	body, contentType := multipartImage(t, pngData, nil)
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDecodeHandler_FormatRestriction(t *testing.T) {
	srv := newTestServer(t)
	pngData := testutil.PNGBytes(t, testutil.QRImage(t, "restricted", 200))

	// Restricting to EAN_13 must make the QR image undecodable.
	body, contentType := multipartImage(t, pngData, map[string]string{
		"options": `{"possible_formats": ["EAN_13"]}`,
	})
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDecodeHandler_BadOptionsJSON(t *testing.T) {
	srv := newTestServer(t)
	pngData := testutil.PNGBytes(t, testutil.QRImage(t, "x", 120))

	body, contentType := multipartImage(t, pngData, map[string]string{
		"options": `{not json`,
	})
	req := httptest.NewRequest(http.MethodPost, "/decode", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/decode", nil)
	rec := httptest.NewRecorder()
	srv.decodeHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
