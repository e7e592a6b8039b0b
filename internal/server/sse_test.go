package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/types"
)

func change(id string, status types.JobStatus, queue string) events.JobStateChange {
	return events.JobStateChange{DetailType: events.DetailType, JobID: id, Status: status, Queue: queue}
}

// readStream opens the event stream at path, runs during while it is
// connected, and returns everything written to it.
func readStream(t *testing.T, h http.Handler, path, lastEventID string, during func()) *httptest.ResponseRecorder {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	if lastEventID != "" {
		req.Header.Set("Last-Event-ID", lastEventID)
	}
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(rec, req)
	}()

	// Give the handler time to attach.
	time.Sleep(50 * time.Millisecond)
	during()
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done
	return rec
}

func TestStreamFilter(t *testing.T) {
	q := "arn:aws:mediaconvert:us-west-2:444455556666:queues/Fast"
	c := change("1-a", types.JobStatusComplete, q)

	for _, tc := range []struct {
		name   string
		filter streamFilter
		want   bool
	}{
		{"zero", streamFilter{}, true},
		{"status", streamFilter{statuses: map[types.JobStatus]bool{types.JobStatusComplete: true}}, true},
		{"other status", streamFilter{statuses: map[types.JobStatus]bool{types.JobStatusError: true}}, false},
		{"queue", streamFilter{queue: q}, true},
		{"other queue", streamFilter{queue: q + "er"}, false},
		{"job", streamFilter{jobID: "1-a"}, true},
		{"other job", streamFilter{jobID: "1-b"}, false},
	} {
		if got := tc.filter.matches(c); got != tc.want {
			t.Errorf("%s: matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestJobStream_PublishAndReplay(t *testing.T) {
	s := newJobStream()
	live, replay := s.attach(streamFilter{}, 0)
	defer s.detach(live)
	if len(replay) != 0 {
		t.Fatalf("replay without Last-Event-ID = %v", replay)
	}

	s.publish(change("1-a", types.JobStatusSubmitted, ""))
	s.publish(change("1-a", types.JobStatusProgressing, ""))
	s.publish(change("1-b", types.JobStatusSubmitted, ""))

	select {
	case ev := <-live.ch:
		if ev.Seq != 1 || ev.Change.JobID != "1-a" {
			t.Errorf("first event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	late, replay := s.attach(streamFilter{jobID: "1-a"}, 1)
	defer s.detach(late)
	if len(replay) != 1 || replay[0].Seq != 2 || replay[0].Change.Status != types.JobStatusProgressing {
		t.Errorf("replay = %+v", replay)
	}
}

func TestJobStream_HistoryIsBounded(t *testing.T) {
	s := newJobStream()
	for i := 0; i < streamHistory+10; i++ {
		s.publish(change("1-a", types.JobStatusSubmitted, ""))
	}
	cl, replay := s.attach(streamFilter{}, 1)
	defer s.detach(cl)
	if len(replay) != streamHistory {
		t.Fatalf("replayed %d events, want %d", len(replay), streamHistory)
	}
	if replay[0].Seq != 11 {
		t.Errorf("oldest replayed seq = %d, want 11", replay[0].Seq)
	}
}

func TestJobStream_SlowClientDoesNotBlock(t *testing.T) {
	s := newJobStream()
	cl, _ := s.attach(streamFilter{}, 0)
	defer s.detach(cl)

	done := make(chan struct{})
	go func() {
		for i := 0; i < streamBuffer*2; i++ {
			s.publish(change("1-a", types.JobStatusSubmitted, ""))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a client that never reads")
	}
	if len(cl.ch) != streamBuffer {
		t.Errorf("buffered %d events, want %d", len(cl.ch), streamBuffer)
	}
}

func TestHandleEventStream_CreateJob(t *testing.T) {
	srv, _, h := newTestServer()

	var id string
	rec := readStream(t, h, "/2017-08-29/events/stream", "", func() {
		res, err := srv.CreateJob(context.Background(), baseRequest().Build())
		if err != nil {
			t.Errorf("CreateJob: %v", err)
			return
		}
		id = res.Job().Or(types.Job{}).Id().Or("")
	})

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "event:"+events.TopicJobSubmitted) {
		t.Fatalf("expected a submitted event, got:\n%s", body)
	}
	if !strings.Contains(body, `"jobId":"`+id+`"`) {
		t.Fatalf("expected job id %s in payload, got:\n%s", id, body)
	}
}

func TestHandleEventStream_Filters(t *testing.T) {
	srv, _, h := newTestServer()
	fast := "arn:aws:mediaconvert:us-west-2:444455556666:queues/Fast"

	rec := readStream(t, h, "/2017-08-29/events/stream?status=COMPLETE,ERROR&queue=Fast", "", func() {
		srv.stream.publish(change("1-skip-status", types.JobStatusSubmitted, fast))
		srv.stream.publish(change("1-skip-queue", types.JobStatusComplete, "arn:aws:mediaconvert:us-west-2:444455556666:queues/Default"))
		srv.stream.publish(change("1-keep", types.JobStatusError, fast))
	})

	body := rec.Body.String()
	if strings.Contains(body, "1-skip") {
		t.Errorf("filtered events leaked:\n%s", body)
	}
	if !strings.Contains(body, "1-keep") || !strings.Contains(body, "event:"+events.TopicJobError) {
		t.Errorf("expected the error event, got:\n%s", body)
	}
}

func TestHandleEventStream_BadStatus(t *testing.T) {
	_, _, h := newTestServer()
	rec := do(t, h, http.MethodGet, "/2017-08-29/events/stream?status=DONE", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleEventStream_LastEventID(t *testing.T) {
	srv, _, h := newTestServer()
	srv.stream.publish(change("1-n1", types.JobStatusSubmitted, ""))
	srv.stream.publish(change("1-n2", types.JobStatusProgressing, ""))
	srv.stream.publish(change("1-n3", types.JobStatusComplete, ""))

	body := readStream(t, h, "/2017-08-29/events/stream", "1", func() {}).Body.String()
	if strings.Contains(body, "1-n1") {
		t.Errorf("event 1 should not be replayed:\n%s", body)
	}
	if !strings.Contains(body, "1-n2") || !strings.Contains(body, "1-n3") {
		t.Errorf("events 2 and 3 should be replayed:\n%s", body)
	}
}

func TestHandleEventStream_Format(t *testing.T) {
	srv, _, h := newTestServer()
	rec := readStream(t, h, "/2017-08-29/events/stream", "", func() {
		srv.stream.publish(change("1-fmt", types.JobStatusCanceled, ""))
	})

	var id, event, data string
	scanner := bufio.NewScanner(strings.NewReader(rec.Body.String()))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "id:"):
			id = strings.TrimPrefix(line, "id:")
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimPrefix(line, "event:")
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimPrefix(line, "data:")
		}
	}
	if id != "1" || event != events.TopicJobCanceled {
		t.Errorf("id, event = %q, %q", id, event)
	}
	ev, err := events.ParseJobStateChange([]byte(data))
	if err != nil {
		t.Fatalf("data does not parse: %v", err)
	}
	if ev.JobID != "1-fmt" || ev.Status != types.JobStatusCanceled {
		t.Errorf("event = %+v", ev)
	}
}

func TestHandleEventStream_CloseStreams(t *testing.T) {
	srv, _, h := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/2017-08-29/events/stream", nil)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(rec, req)
	}()
	time.Sleep(50 * time.Millisecond)
	srv.CloseStreams()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler still running after CloseStreams")
	}
	srv.CloseStreams()
}
