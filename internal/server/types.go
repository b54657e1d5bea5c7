package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MeKo-Tech/zscan"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	corsOrigin    string
	maxUploadMB   int64
	timeoutSec    int
	decodeOptions map[string]interface{}
}

// Config holds server configuration.
type Config struct {
	Host          string
	Port          int
	CORSOrigin    string
	MaxUploadMB   int64
	TimeoutSec    int
	DecodeOptions map[string]interface{}
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

type FormatsResponse struct {
	Formats []string `json:"formats"`
	Count   int      `json:"count"`
}

type DecodeResponse struct {
	Success bool          `json:"success"`
	Result  *zscan.Result `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// EncodeRequest is the JSON body accepted by the encode endpoint.
type EncodeRequest struct {
	Text    string                 `json:"text"`
	Format  string                 `json:"format"`
	Width   int                    `json:"width"`
	Height  int                    `json:"height"`
	Options map[string]interface{} `json:"options,omitempty"`
	Output  string                 `json:"output,omitempty"` // "png" (default) or "json"
}

type EncodeMatrixResponse struct {
	Success bool     `json:"success"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Rows    [][]bool `json:"rows"`
}

// NewServer creates a new barcode server instance.
func NewServer(config Config) (*Server, error) {
	if _, err := zscan.ParseDecodeHints(config.DecodeOptions); err != nil {
		return nil, err
	}
	return &Server{
		corsOrigin:    config.CORSOrigin,
		maxUploadMB:   config.MaxUploadMB,
		timeoutSec:    config.TimeoutSec,
		decodeOptions: config.DecodeOptions,
	}, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/formats", s.corsMiddleware(s.formatsHandler))
	mux.HandleFunc("/decode", s.corsMiddleware(s.decodeHandler))
	mux.HandleFunc("/encode", s.corsMiddleware(s.encodeHandler))
	mux.HandleFunc("/scan", s.scanWebSocketHandler)
	mux.Handle("/metrics", promhttp.Handler())
}
