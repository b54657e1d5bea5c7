package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/MeKo-Tech/zscan"
)

// decodeHandler processes barcode decode requests for uploaded images.
func (s *Server) decodeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Set content length limit
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB*1024*1024)

	// Parse multipart form
	if err := r.ParseMultipartForm(s.maxUploadMB * 1024 * 1024); err != nil {
		s.writeErrorResponse(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}

	// Get uploaded file
	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeErrorResponse(w, "No image file provided", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	// Validate file size
	if header.Size > s.maxUploadMB*1024*1024 {
		s.writeErrorResponse(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	}
	uploadSizeBytes.Observe(float64(header.Size))

	imageData, err := io.ReadAll(file)
	if err != nil {
		s.writeErrorResponse(w, "Failed to read image data", http.StatusInternalServerError)
		return
	}

	opts, err := s.requestOptions(r)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	result, err := zscan.DecodeBytes(imageData, opts)
	duration := time.Since(start)
	decodeDuration.WithLabelValues("http").Observe(duration.Seconds())

	if err != nil {
		decodeRequestsTotal.WithLabelValues("http", "error").Inc()
		s.writeErrorResponse(w, fmt.Sprintf("Decoding failed: %v", err), statusForError(err))
		return
	}

	decodeRequestsTotal.WithLabelValues("http", "success").Inc()
	decodedSymbologies.WithLabelValues(result.Format).Inc()

	w.Header().Set("Content-Type", "application/json")
	response := DecodeResponse{Success: true, Result: result}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding decode response: %v\n", err)
	}
}

// requestOptions merges the server's configured decode options with the
// per-request options JSON from the form, request values winning.
func (s *Server) requestOptions(r *http.Request) (map[string]interface{}, error) {
	raw := r.FormValue("options")
	if raw == "" {
		raw = r.URL.Query().Get("options")
	}

	var reqOpts map[string]interface{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &reqOpts); err != nil {
			return nil, fmt.Errorf("invalid options JSON: %w", err)
		}
	}
	return s.mergeOptions(reqOpts), nil
}
