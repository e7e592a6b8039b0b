package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/server"
	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
)

// startLedger runs a ledger behind httptest and points the client
// commands at it.
func startLedger(t *testing.T) *memory.MemoryStore {
	t.Helper()
	st := memory.New()
	js := server.NewJobServer(st, events.Discard, server.Options{})
	srv := httptest.NewServer(js.NewHTTPHandler("tok"))
	t.Cleanup(srv.Close)
	t.Setenv("MCJOB_SERVER_URL", srv.URL)
	t.Setenv("MCJOB_SERVER_TOKEN", "tok")
	return st
}

// createJob submits validSpec through the CLI and returns the new job id.
func createJob(t *testing.T) string {
	t.Helper()
	out, err := execute(t, "jobs", "create", "--json", writeSpec(t, "job.json", validSpec))
	if err != nil {
		t.Fatalf("jobs create: %v\n%s", err, out)
	}
	var res struct {
		Job struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"job"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Job.ID == "" || res.Job.Status != "SUBMITTED" {
		t.Fatalf("created job = %+v", res.Job)
	}
	return res.Job.ID
}

func TestJobsCommands(t *testing.T) {
	st := startLedger(t)
	id := createJob(t)

	if _, err := st.GetJob(context.Background(), id); err != nil {
		t.Fatalf("job not stored: %v", err)
	}

	out, err := execute(t, "jobs", "get", id)
	if err != nil {
		t.Fatalf("jobs get: %v\n%s", err, out)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "SUBMITTED") || !strings.Contains(out, "queues/Default") {
		t.Errorf("jobs get output:\n%s", out)
	}

	out, err = execute(t, "jobs", "list")
	if err != nil {
		t.Fatalf("jobs list: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "ID") || !strings.Contains(out, id) {
		t.Errorf("jobs list output:\n%s", out)
	}

	out, err = execute(t, "jobs", "cancel", id)
	if err != nil {
		t.Fatalf("jobs cancel: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Canceled "+id) {
		t.Errorf("jobs cancel output = %q", out)
	}

	out, err = execute(t, "jobs", "list", "--status", "SUBMITTED")
	if err != nil {
		t.Fatalf("jobs list --status: %v", err)
	}
	if !strings.Contains(out, "no jobs") {
		t.Errorf("expected no SUBMITTED jobs after cancel:\n%s", out)
	}

	if _, err := execute(t, "jobs", "cancel", id); err == nil || !strings.Contains(err.Error(), "409") {
		t.Errorf("second cancel error = %v, want HTTP 409", err)
	}
}

func TestJobsListPaging(t *testing.T) {
	startLedger(t)
	for i := 0; i < 3; i++ {
		createJob(t)
	}

	out, err := execute(t, "jobs", "list", "--json", "--max-results", "2", "--order", "ASCENDING")
	if err != nil {
		t.Fatalf("jobs list: %v\n%s", err, out)
	}
	var page struct {
		Jobs      []map[string]any `json:"jobs"`
		NextToken string           `json:"nextToken"`
	}
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(page.Jobs) != 2 || page.NextToken == "" {
		t.Fatalf("first page = %+v", page)
	}

	out, err = execute(t, "jobs", "list", "--json", "--max-results", "2", "--order", "ASCENDING", "--next-token", page.NextToken)
	if err != nil {
		t.Fatalf("jobs list: %v\n%s", err, out)
	}
	page.NextToken = ""
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatal(err)
	}
	if len(page.Jobs) != 1 || page.NextToken != "" {
		t.Errorf("second page = %+v", page)
	}

	if _, err := execute(t, "jobs", "list", "--status", "DONE"); err == nil {
		t.Error("expected an error for an unknown status")
	}
}

func TestJobsCreate_Invalid(t *testing.T) {
	startLedger(t)
	_, err := execute(t, "jobs", "create", writeSpec(t, "job.json", `{"role": "r"}`))
	if err == nil || !strings.Contains(err.Error(), "HTTP 400") {
		t.Errorf("error = %v, want HTTP 400", err)
	}
}

func TestJobsCommands_Unauthorized(t *testing.T) {
	startLedger(t)
	t.Setenv("MCJOB_SERVER_TOKEN", "wrong")
	if _, err := execute(t, "jobs", "list"); err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("error = %v, want HTTP 401", err)
	}
}

func TestTagsCommands(t *testing.T) {
	st := startLedger(t)
	arn := "arn:aws:mediaconvert:us-east-1:111122223333:jobs/1-a"

	if out, err := execute(t, "tags", "add", arn, "env=prod", "team=video"); err != nil {
		t.Fatalf("tags add: %v\n%s", err, out)
	}
	if out, err := execute(t, "tags", "remove", arn, "team"); err != nil {
		t.Fatalf("tags remove: %v\n%s", err, out)
	}

	got, err := st.ListTags(context.Background(), arn)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, map[string]string{"env": "prod"}) {
		t.Errorf("stored tags = %v", got)
	}

	out, err := execute(t, "tags", "list", arn)
	if err != nil {
		t.Fatalf("tags list: %v\n%s", err, out)
	}
	if out != "env=prod\n" {
		t.Errorf("tags list output = %q", out)
	}

	if _, err := execute(t, "tags", "add", arn, "novalue"); err == nil {
		t.Error("expected an error for a tag without '='")
	}
}

func TestParseTagPairs(t *testing.T) {
	got, err := parseTagPairs([]string{"a=1", "b=", "c=x=y"})
	if err != nil {
		t.Fatal(err)
	}
	if want := map[string]string{"a": "1", "b": "", "c": "x=y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("parseTagPairs = %v, want %v", got, want)
	}
	for _, bad := range [][]string{{"=v"}, {"k"}, {"k=1", "k=2"}} {
		if _, err := parseTagPairs(bad); err == nil {
			t.Errorf("parseTagPairs(%q) = nil error", bad)
		}
	}
}

func TestServeHTTP(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	js := server.NewJobServer(memory.New(), events.Discard, server.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, lis, js.NewHTTPHandler("")) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("GET /ping: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serveHTTP() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP did not return after cancel")
	}
}

func TestServeHTTP_ClosesStreamsOnShutdown(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	js := server.NewJobServer(memory.New(), events.Discard, server.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, lis, js.NewHTTPHandler(""), js.CloseStreams) }()

	resp, err := http.Get("http://" + lis.Addr().String() + "/2017-08-29/events/stream")
	if err != nil {
		t.Fatalf("GET stream: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serveHTTP() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown waited on an open stream")
	}
}

func TestOpenLedgerStore_Memory(t *testing.T) {
	if _, err := execute(t, "enums", "Order"); err != nil {
		t.Fatal(err)
	}
	cfg.DatabaseURL, cfg.SyncInterval = "", 0
	st, err := openLedgerStore()
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if _, ok := st.(*memory.MemoryStore); !ok {
		t.Errorf("store = %T, want *memory.MemoryStore", st)
	}
	if newSyncScheduler(context.Background(), st) != nil {
		t.Error("no scheduler expected when MCJOB_SYNC_INTERVAL is unset")
	}
}

func TestPreRun_WiresSpecLoaderAndLedger(t *testing.T) {
	if _, err := execute(t, "enums", "Order"); err != nil {
		t.Fatal(err)
	}
	if s3Objects == nil || loader == nil || loader.Store != s3Objects {
		t.Fatalf("spec loader not wired to the shared S3 objects: loader=%+v", loader)
	}
	cfg.DatabaseURL = ""
	var st store.Store
	st, err := openLedgerStore()
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
}
