package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// apiPrefix is the version segment every service route starts with.
const apiPrefix = "/2017-08-29"

// maxBodyBytes bounds request documents.
const maxBodyBytes = 4 << 20

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /ping) must include
// a valid Authorization: Bearer <token> header.
func (s *JobServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+apiPrefix+"/jobs", s.handleCreateJob)
	mux.HandleFunc("GET "+apiPrefix+"/jobs", s.handleListJobs)
	mux.HandleFunc("GET "+apiPrefix+"/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("DELETE "+apiPrefix+"/jobs/{id}", s.handleCancelJob)
	mux.HandleFunc("POST "+apiPrefix+"/tags", s.handleTagResource)
	mux.HandleFunc("GET "+apiPrefix+"/tags/{arn...}", s.handleListTagsForResource)
	mux.HandleFunc("PUT "+apiPrefix+"/tags/{arn...}", s.handleUntagResource)
	mux.HandleFunc("GET "+apiPrefix+"/events/stream", s.handleEventStream)
	mux.HandleFunc("GET /ping", s.handleHealth)
	return RecoveryMiddleware(LoggingMiddleware(AuthMiddleware(authToken, mux)))
}

// handleHealth handles GET /ping.
func (s *JobServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readDocument decodes a JSON request body into a generic document. Numbers
// stay json.Number so integer fields decode exactly. An empty body is an
// empty document.
func readDocument(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	doc := map[string]any{}
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, inputError("invalid JSON body")
	}
	return doc, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps an operation error to its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *types.ValidationError
	var ce conflictError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    fmt.Sprintf("%d problem(s)", len(ve.Errors)),
			"problems": ve.Errors,
		})
	case isInputError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyExists), errors.As(err, &ce):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
