package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MeKo-Tech/zscan"
	"github.com/MeKo-Tech/zscan/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// formatsHandler returns the supported symbology catalog.
func (s *Server) formatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names := zscan.FormatNames()
	response := FormatsResponse{
		Formats: names,
		Count:   len(names),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding formats response: %v\n", err)
	}
}

// statusForError maps decoder and encoder errors to HTTP status codes.
// Bad input is the caller's fault; a clean image with no barcode is 422.
func statusForError(err error) int {
	var verr *zscan.ValidationError
	var ierr *zscan.ImageError
	var nferr *zscan.NotFoundError
	var derr *zscan.DecodeError
	var eerr *zscan.EncodeError
	switch {
	case errors.As(err, &verr), errors.As(err, &ierr):
		return http.StatusBadRequest
	case errors.As(err, &nferr):
		return http.StatusNotFound
	case errors.As(err, &derr), errors.As(err, &eerr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := DecodeResponse{
		Success: false,
		Error:   message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error, but can't send another response
		fmt.Fprintf(os.Stderr, "Error writing error response: %v\n", err)
	}
}
