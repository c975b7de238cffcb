package server

import (
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// maxUploadBytes caps resume uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleAnalyze accepts one resume document as multipart form data and
// returns the assembled analysis result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "a resume file is required in the 'file' form field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	requestID := uuid.New().String()
	log.Printf("[%s] analyzing %s (%d bytes, %s)", requestID, header.Filename, len(data), contentType)

	result, err := s.pipeline.Analyze(r.Context(), data, contentType)
	if err != nil {
		s.analysisError(w, requestID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
