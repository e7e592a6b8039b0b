package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const createBody = `{
	"role": "arn:aws:iam::111122223333:role/MediaConvert",
	"queue": "Default",
	"priority": 4,
	"tags": {"env": "prod"},
	"settings": {"inputs": [{"fileInput": "s3://in/a.mp4"}]}
}`

// do sends a request to h and returns the recorder.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// createViaHTTP posts createBody and returns the new job document.
func createViaHTTP(t *testing.T, h http.Handler) map[string]any {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/2017-08-29/jobs", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d; body: %s", rec.Code, rec.Body.String())
	}
	job, ok := decodeBody(t, rec)["job"].(map[string]any)
	if !ok {
		t.Fatalf("create: no job in %s", rec.Body.String())
	}
	return job
}

func TestHTTP_Health(t *testing.T) {
	_, _, h := newTestServer()
	rec := do(t, h, http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec)["status"]; got != "ok" {
		t.Errorf("status = %v", got)
	}
}

func TestHTTP_CreateAndGetJob(t *testing.T) {
	_, _, h := newTestServer()
	job := createViaHTTP(t, h)

	if job["status"] != "SUBMITTED" {
		t.Errorf("status = %v", job["status"])
	}
	if job["priority"] != float64(4) {
		t.Errorf("priority = %v", job["priority"])
	}
	if q, _ := job["queue"].(string); !strings.HasSuffix(q, ":queues/Default") {
		t.Errorf("queue = %v", job["queue"])
	}
	if _, ok := job["tags"]; ok {
		t.Error("tags belong to the resource, not the job document")
	}

	id := job["id"].(string)
	rec := do(t, h, http.MethodGet, "/2017-08-29/jobs/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, rec)["job"].(map[string]any)
	if got["id"] != id || got["arn"] != job["arn"] {
		t.Errorf("get returned %v", got)
	}

	rec = do(t, h, http.MethodGet, "/2017-08-29/tags/"+url.PathEscape(job["arn"].(string)), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("tags: expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	rt := decodeBody(t, rec)["resourceTags"].(map[string]any)
	if tags := rt["tags"].(map[string]any); tags["env"] != "prod" {
		t.Errorf("tags = %v", tags)
	}
}

func TestHTTP_CreateJobErrors(t *testing.T) {
	_, _, h := newTestServer()

	for _, tc := range []struct {
		name string
		body string
		want int
		msg  string
	}{
		{"invalid json", `{`, http.StatusBadRequest, "invalid JSON body"},
		{"unknown field", `{"role": "r", "colour": "red"}`, http.StatusBadRequest, "colour"},
		{"bad enum", `{"role": "r", "statusUpdateInterval": "SECONDS_7"}`, http.StatusBadRequest, "SECONDS_7"},
		{"validation", `{"priority": 60}`, http.StatusBadRequest, "3 problem(s)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/2017-08-29/jobs", tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d; body: %s", tc.want, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.msg) {
				t.Errorf("body %s does not mention %q", rec.Body.String(), tc.msg)
			}
		})
	}
}

func TestHTTP_ValidationProblems(t *testing.T) {
	_, _, h := newTestServer()
	rec := do(t, h, http.MethodPost, "/2017-08-29/jobs", `{"role": "r", "priority": 60}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var out struct {
		Problems []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"problems"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Problems) != 2 || out.Problems[0].Field != "priority" || out.Problems[1].Field != "settings" {
		t.Errorf("problems = %+v", out.Problems)
	}
}

func TestHTTP_GetJobNotFound(t *testing.T) {
	_, _, h := newTestServer()
	rec := do(t, h, http.MethodGet, "/2017-08-29/jobs/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHTTP_ListJobs(t *testing.T) {
	_, _, h := newTestServer()
	first := createViaHTTP(t, h)
	second := createViaHTTP(t, h)
	third := createViaHTTP(t, h)

	rec := do(t, h, http.MethodGet, "/2017-08-29/jobs?maxResults=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	page := decodeBody(t, rec)
	jobs := page["jobs"].([]any)
	if len(jobs) != 2 || jobs[0].(map[string]any)["id"] != third["id"] || jobs[1].(map[string]any)["id"] != second["id"] {
		t.Fatalf("first page = %v", jobs)
	}
	token, _ := page["nextToken"].(string)
	if token == "" {
		t.Fatal("expected a nextToken")
	}

	rec = do(t, h, http.MethodGet, "/2017-08-29/jobs?maxResults=2&nextToken="+url.QueryEscape(token), "")
	page = decodeBody(t, rec)
	jobs = page["jobs"].([]any)
	if len(jobs) != 1 || jobs[0].(map[string]any)["id"] != first["id"] {
		t.Fatalf("second page = %v", jobs)
	}
	if _, ok := page["nextToken"]; ok {
		t.Error("last page should carry no nextToken")
	}

	for _, q := range []string{"maxResults=abc", "maxResults=0", "order=SIDEWAYS", "nextToken=%21%21"} {
		if rec := do(t, h, http.MethodGet, "/2017-08-29/jobs?"+q, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestHTTP_CancelJob(t *testing.T) {
	_, _, h := newTestServer()
	job := createViaHTTP(t, h)
	path := "/2017-08-29/jobs/" + job["id"].(string)

	if rec := do(t, h, http.MethodDelete, path, ""); rec.Code != http.StatusAccepted {
		t.Fatalf("cancel: expected 202, got %d; body: %s", rec.Code, rec.Body.String())
	}
	got := decodeBody(t, do(t, h, http.MethodGet, path, ""))["job"].(map[string]any)
	if got["status"] != "CANCELED" {
		t.Errorf("status = %v", got["status"])
	}
	if rec := do(t, h, http.MethodDelete, path, ""); rec.Code != http.StatusConflict {
		t.Fatalf("second cancel: expected 409, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, "/2017-08-29/jobs/missing", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("cancel missing: expected 404, got %d", rec.Code)
	}
}

func TestHTTP_Tags(t *testing.T) {
	_, _, h := newTestServer()
	arn := "arn:aws:mediaconvert:us-west-2:444455556666:jobs/1-a"

	rec := do(t, h, http.MethodPost, "/2017-08-29/tags", `{"arn": "`+arn+`", "tags": {"env": "prod", "team": "video"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("tag: expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPut, "/2017-08-29/tags/"+url.PathEscape(arn), `{"tagKeys": ["team"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("untag: expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	// The ARN may also be sent unescaped.
	rec = do(t, h, http.MethodGet, "/2017-08-29/tags/"+arn, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	rt := decodeBody(t, rec)["resourceTags"].(map[string]any)
	if rt["arn"] != arn {
		t.Errorf("arn = %v", rt["arn"])
	}
	tags := rt["tags"].(map[string]any)
	if len(tags) != 1 || tags["env"] != "prod" {
		t.Errorf("tags = %v", tags)
	}

	if rec := do(t, h, http.MethodPost, "/2017-08-29/tags", `{"tags": {"a": "b"}}`); rec.Code != http.StatusBadRequest {
		t.Errorf("tag without arn: expected 400, got %d", rec.Code)
	}
}

func TestHTTP_Auth(t *testing.T) {
	srv, _, _ := newTestJobServer()
	h := srv.NewHTTPHandler("secret")

	if rec := do(t, h, http.MethodGet, "/2017-08-29/jobs", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/ping", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/2017-08-29/jobs", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}
