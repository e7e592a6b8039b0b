package server

import (
	"net/http"
	"strconv"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// handleCreateJob handles POST /2017-08-29/jobs.
func (s *JobServer) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	req, err := types.DecodeCreateJobRequest(doc)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	res, err := s.CreateJob(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleListJobs handles GET /2017-08-29/jobs.
func (s *JobServer) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	doc := map[string]any{}
	for _, key := range []string{"nextToken", "order", "queue", "status"} {
		if v := q.Get(key); v != "" {
			doc[key] = v
		}
	}
	if v := q.Get("maxResults"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "maxResults must be an integer")
			return
		}
		doc["maxResults"] = n
	}

	req, err := types.DecodeListJobsRequest(doc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := s.ListJobs(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleGetJob handles GET /2017-08-29/jobs/{id}.
func (s *JobServer) handleGetJob(w http.ResponseWriter, r *http.Request) {
	res, err := s.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleCancelJob handles DELETE /2017-08-29/jobs/{id}.
func (s *JobServer) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	res, err := s.CancelJob(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, res)
}
