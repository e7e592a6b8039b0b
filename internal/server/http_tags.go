package server

import (
	"net/http"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// handleTagResource handles POST /2017-08-29/tags.
func (s *JobServer) handleTagResource(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	req, err := types.DecodeTagResourceRequest(doc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := s.TagResource(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleUntagResource handles PUT /2017-08-29/tags/{arn...}. The body
// carries the tagKeys to remove.
func (s *JobServer) handleUntagResource(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	doc["arn"] = r.PathValue("arn")
	req, err := types.DecodeUntagResourceRequest(doc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := s.UntagResource(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleListTagsForResource handles GET /2017-08-29/tags/{arn...}.
func (s *JobServer) handleListTagsForResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListTagsForResource(r.Context(), r.PathValue("arn"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
