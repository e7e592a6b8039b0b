package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/server"
	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// testHandler captures the incoming request details and returns a canned response.
type testHandler struct {
	// captured from the request
	method      string
	path        string
	rawPath     string // URL-encoded path (for testing PathEscape)
	query       string
	body        string
	contentType string
	auth        string

	// canned response
	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.rawPath = r.URL.RawPath
	h.query = r.URL.RawQuery
	h.contentType = r.Header.Get("Content-Type")
	h.auth = r.Header.Get("Authorization")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

// newTestClient creates an HTTPClient pointed at a test server with the given handler.
func newTestClient(h http.Handler) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := NewHTTPClient(srv.URL+"/", "tok")
	return c, srv
}

func TestHTTPClient_CreateJob(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusCreated,
		responseBody: `{"job": {"id": "1-abc", "status": "SUBMITTED", "priority": 3, "createdAt": "2024-05-01T09:00:00Z"}}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	req := types.NewCreateJobRequestBuilder().WithRole("r").WithPriority(3).Build()
	res, err := c.CreateJob(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateJob() error = %v", err)
	}

	if h.method != http.MethodPost || h.path != "/2017-08-29/jobs" {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.contentType != "application/json" {
		t.Errorf("content-type = %q, want application/json", h.contentType)
	}
	if h.auth != "Bearer tok" {
		t.Errorf("authorization = %q", h.auth)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(h.body), &body); err != nil {
		t.Fatalf("unmarshaling request body: %v", err)
	}
	if !reflect.DeepEqual(body, map[string]any{"role": "r", "priority": float64(3)}) {
		t.Errorf("request body = %v", body)
	}

	job := res.Job().Or(types.Job{})
	if job.Id().Or("") != "1-abc" || job.Priority().Or(0) != 3 || job.Status().Or("") != types.JobStatusSubmitted {
		t.Errorf("job = %s", job)
	}
	if !job.CreatedAt().Or(time.Time{}).Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt = %v", job.CreatedAt())
	}
}

func TestHTTPClient_ListJobsQuery(t *testing.T) {
	h := &testHandler{responseBody: `{"jobs": [{"id": "b"}, {"id": "a"}], "nextToken": "t2"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	res, err := c.ListJobs(context.Background(), types.NewListJobsRequestBuilder().
		WithMaxResults(2).
		WithNextToken("t1").
		WithOrder(types.OrderAscending).
		WithQueue("Default").
		WithStatus(types.JobStatusComplete).
		Build())
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if want := "maxResults=2&nextToken=t1&order=ASCENDING&queue=Default&status=COMPLETE"; h.query != want {
		t.Errorf("query = %q, want %q", h.query, want)
	}
	if len(res.Jobs().Or(nil)) != 2 || res.NextToken().Or("") != "t2" {
		t.Errorf("result = %s", res)
	}
}

func TestHTTPClient_PathEscape(t *testing.T) {
	h := &testHandler{responseBody: `{}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	arn := "arn:aws:mediaconvert:us-east-1:111122223333:jobs/1-a"
	if _, err := c.UntagResource(context.Background(), types.NewUntagResourceRequestBuilder().WithArn(arn).WithTagKeys("env").Build()); err != nil {
		t.Fatalf("UntagResource() error = %v", err)
	}
	if h.method != http.MethodPut || h.path != "/2017-08-29/tags/"+arn {
		t.Errorf("request = %s %s", h.method, h.path)
	}
	if h.rawPath != "/2017-08-29/tags/arn:aws:mediaconvert:us-east-1:111122223333:jobs%2F1-a" {
		t.Errorf("raw path = %q", h.rawPath)
	}
	if h.body != `{"tagKeys":["env"]}` {
		t.Errorf("body = %s", h.body)
	}
}

func TestHTTPClient_APIError(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusBadRequest,
		responseBody: `{"error": "1 problem(s)", "problems": [{"field": "role", "message": "is required"}]}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.CreateJob(context.Background(), types.NewCreateJobRequestBuilder().Build())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "1 problem(s)" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if len(apiErr.Problems) != 1 || apiErr.Problems[0].Field != "role" {
		t.Errorf("problems = %+v", apiErr.Problems)
	}
	if apiErr.Error() != "HTTP 400: 1 problem(s)" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestHTTPClient_NonJSONError(t *testing.T) {
	h := &testHandler{statusCode: http.StatusBadGateway, responseBody: "upstream down"}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.GetJob(context.Background(), "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "upstream down" {
		t.Fatalf("err = %v", err)
	}
}

func TestHTTPClient_UndecodableResponse(t *testing.T) {
	h := &testHandler{responseBody: `{"job": {"status": "FINISHED"}}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.GetJob(context.Background(), "x")
	if !errors.Is(err, types.ErrUnrecognizedEnumValue) {
		t.Fatalf("err = %v, want an enum error", err)
	}
}

// TestHTTPClient_AgainstServer runs every operation against a real handler.
func TestHTTPClient_AgainstServer(t *testing.T) {
	js := server.NewJobServer(memory.New(), events.Discard, server.Options{})
	srv := httptest.NewServer(js.NewHTTPHandler("secret"))
	defer srv.Close()
	c := NewHTTPClient(srv.URL, "secret")
	ctx := context.Background()

	if status, err := c.Health(ctx); err != nil || status != "ok" {
		t.Fatalf("Health() = %q, %v", status, err)
	}

	created, err := c.CreateJob(ctx, types.NewCreateJobRequestBuilder().
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		WithSettings(types.NewJobSettingsBuilder().
			WithInputs(types.NewInputBuilder().WithFileInput("s3://in/a.mp4").Build()).
			Build()).
		WithTags(map[string]string{"env": "prod"}).
		Build())
	if err != nil {
		t.Fatalf("CreateJob() error = %v", err)
	}
	job := created.Job().Or(types.Job{})
	id, arn := job.Id().Or(""), job.Arn().Or("")

	got, err := c.GetJob(ctx, id)
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if !got.Job().Or(types.Job{}).Equal(job) {
		t.Errorf("GetJob() = %s, want %s", got, job)
	}

	if _, err := c.TagResource(ctx, types.NewTagResourceRequestBuilder().WithArn(arn).WithTags(map[string]string{"team": "video"}).Build()); err != nil {
		t.Fatalf("TagResource() error = %v", err)
	}
	if _, err := c.UntagResource(ctx, types.NewUntagResourceRequestBuilder().WithArn(arn).WithTagKeys("env").Build()); err != nil {
		t.Fatalf("UntagResource() error = %v", err)
	}
	tags, err := c.ListTagsForResource(ctx, arn)
	if err != nil {
		t.Fatalf("ListTagsForResource() error = %v", err)
	}
	if rt := tags.ResourceTags().Or(types.ResourceTags{}); !reflect.DeepEqual(rt.Tags().Or(nil), map[string]string{"team": "video"}) {
		t.Errorf("tags = %s", rt)
	}

	if _, err := c.CancelJob(ctx, id); err != nil {
		t.Fatalf("CancelJob() error = %v", err)
	}
	list, err := c.ListJobs(ctx, types.NewListJobsRequestBuilder().WithStatus(types.JobStatusCanceled).Build())
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if jobs := list.Jobs().Or(nil); len(jobs) != 1 || jobs[0].Id().Or("") != id {
		t.Errorf("ListJobs() = %s", list)
	}

	_, err = c.CancelJob(ctx, id)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		t.Errorf("second CancelJob() = %v, want 409", err)
	}
}
