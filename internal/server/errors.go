package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/career-forge/internal/analyzer"
	"github.com/jonathan/career-forge/internal/extract"
	"github.com/jonathan/career-forge/internal/pipeline"
)

// analysisError maps pipeline failures to HTTP statuses. Bad input gets a
// 4xx with a descriptive message, a missing model credential gets 503, and
// everything else gets a generic 500: internal error text is logged but
// never sent to the caller.
func (s *Server) analysisError(w http.ResponseWriter, requestID string, err error) {
	var unsupported *extract.UnsupportedFormatError
	switch {
	case errors.As(err, &unsupported):
		s.errorResponse(w, http.StatusBadRequest, unsupported.Error())
	case errors.Is(err, pipeline.ErrEmptyDocument):
		s.errorResponse(w, http.StatusUnprocessableEntity, "failed to extract text from the document")
	case errors.Is(err, analyzer.ErrServiceUnavailable):
		s.errorResponse(w, http.StatusServiceUnavailable, "the analysis service is not configured")
	default:
		log.Printf("[%s] analysis failed: %v", requestID, err)
		s.errorResponse(w, http.StatusInternalServerError, "an unexpected error occurred during analysis")
	}
}
