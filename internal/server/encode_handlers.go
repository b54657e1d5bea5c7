package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"os"

	"github.com/MeKo-Tech/zscan"
)

// encodeHandler generates a barcode from a JSON request body. The default
// output is a PNG image; output "json" returns the bit matrix rows instead.
func (s *Server) encodeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB*1024*1024)

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		s.writeErrorResponse(w, "No text provided", http.StatusBadRequest)
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		s.writeErrorResponse(w, "Width and height must be positive", http.StatusBadRequest)
		return
	}

	matrix, err := zscan.Encode(req.Text, req.Format, req.Width, req.Height, req.Options)
	if err != nil {
		encodeRequestsTotal.WithLabelValues("error").Inc()
		s.writeErrorResponse(w, fmt.Sprintf("Encoding failed: %v", err), statusForError(err))
		return
	}
	encodeRequestsTotal.WithLabelValues("success").Inc()

	if req.Output == "json" {
		w.Header().Set("Content-Type", "application/json")
		response := EncodeMatrixResponse{
			Success: true,
			Width:   matrix.Width(),
			Height:  matrix.Height(),
			Rows:    matrix.Rows(),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding matrix response: %v\n", err)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, matrix.Image()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing barcode image: %v\n", err)
	}
}
