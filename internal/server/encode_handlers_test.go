package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postEncode(t *testing.T, srv *Server, req EncodeRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/encode", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.encodeHandler(rec, httpReq)
	return rec
}

func TestEncodeHandler_PNG(t *testing.T) {
	srv := newTestServer(t)

	rec := postEncode(t, srv, EncodeRequest{
		Text: "https://example.com", Format: "QR_CODE", Width: 200, Height: 200,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestEncodeHandler_JSONMatrix(t *testing.T) {
	srv := newTestServer(t)

	rec := postEncode(t, srv, EncodeRequest{
		Text: "matrix", Format: "QR_CODE", Width: 100, Height: 100, Output: "json",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EncodeMatrixResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 100, resp.Width)
	assert.Equal(t, 100, resp.Height)
	assert.Len(t, resp.Rows, 100)
	assert.Len(t, resp.Rows[0], 100)
}

func TestEncodeHandler_UnknownFormat(t *testing.T) {
	srv := newTestServer(t)

	rec := postEncode(t, srv, EncodeRequest{
		Text: "x", Format: "NOT_A_FORMAT", Width: 100, Height: 100,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEncodeHandler_UnsupportedSymbology(t *testing.T) {
	srv := newTestServer(t)

	// MAXICODE is in the catalog but has no encoder.
	rec := postEncode(t, srv, EncodeRequest{
		Text: "x", Format: "MAXICODE", Width: 100, Height: 100,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEncodeHandler_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	t.Run("empty text", func(t *testing.T) {
		rec := postEncode(t, srv, EncodeRequest{Format: "QR_CODE", Width: 100, Height: 100})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-positive dimensions", func(t *testing.T) {
		rec := postEncode(t, srv, EncodeRequest{Text: "x", Format: "QR_CODE", Width: 0, Height: 100})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/encode", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		srv.encodeHandler(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
