package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/zscan"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(Config{
		CORSOrigin:  "*",
		MaxUploadMB: 10,
		TimeoutSec:  30,
	})
	require.NoError(t, err)
	return srv
}

func TestHealthHandler(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.healthHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Time)
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	srv.healthHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFormatsHandler(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/formats", nil)
	rec := httptest.NewRecorder()
	srv.formatsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp FormatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Formats), resp.Count)
	assert.Contains(t, resp.Formats, "QR_CODE")
	assert.Contains(t, resp.Formats, "EAN_13")
}

func TestNewServer_InvalidDefaultOptions(t *testing.T) {
	_, err := NewServer(Config{
		DecodeOptions: map[string]interface{}{"TRY_HARDER": "yes"},
	})
	require.Error(t, err)
	var verr *zscan.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &zscan.ValidationError{Field: "TRY_HARDER", Reason: "bad"}, http.StatusBadRequest},
		{"image", &zscan.ImageError{Op: "decode", Err: errors.New("bad png")}, http.StatusBadRequest},
		{"not found", &zscan.NotFoundError{Path: "/x.png"}, http.StatusNotFound},
		{"decode", &zscan.DecodeError{Err: errors.New("no barcode")}, http.StatusUnprocessableEntity},
		{"encode", &zscan.EncodeError{Format: zscan.FormatQRCode, Err: errors.New("too long")}, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.corsMiddleware(srv.healthHandler)

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}
