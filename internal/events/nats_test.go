package events

import (
	"context"
	"errors"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// startTestNATS starts an embedded NATS server and returns its client URL.
func startTestNATS(t *testing.T) string {
	t.Helper()
	srv, err := natsserver.NewServer(&natsserver.Options{Host: "127.0.0.1", Port: -1})
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func dialTest(t *testing.T, url string) *Bus {
	t.Helper()
	b, err := Dial(url)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func next(t *testing.T, ch <-chan Delivery) Delivery {
	t.Helper()
	select {
	case d, ok := <-ch:
		if !ok {
			t.Fatal("delivery channel closed")
		}
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a delivery")
	}
	return Delivery{}
}

var (
	_ Publisher = (*Bus)(nil)
	_ Watcher   = (*Bus)(nil)
)

func TestBus_PublishWatch(t *testing.T) {
	url := startTestNATS(t)
	pub, sub := dialTest(t, url), dialTest(t, url)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := sub.Watch(ctx, TopicJobSubmitted)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	c, err := NewJobStateChange(submittedJob(), "111122223333", time.UnixMilli(1583867853213))
	if err != nil {
		t.Fatalf("NewJobStateChange: %v", err)
	}
	if err := pub.Publish(context.Background(), c); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	d := next(t, ch)
	if d.Err != nil {
		t.Fatalf("delivery error: %v", d.Err)
	}
	if d.Subject != TopicJobSubmitted {
		t.Errorf("subject = %q", d.Subject)
	}
	if d.Change.JobID != "1583867853213-1nvvbu" || d.Change.UserMetadata["team"] != "video" {
		t.Errorf("change = %+v", d.Change)
	}
}

func TestBus_WatchAllTopics(t *testing.T) {
	url := startTestNATS(t)
	b := dialTest(t, url)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Watch(ctx, TopicAll)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	statuses := []types.JobStatus{types.JobStatusSubmitted, types.JobStatusProgressing, types.JobStatusComplete, types.JobStatusError}
	for _, s := range statuses {
		if err := b.Publish(context.Background(), JobStateChange{DetailType: DetailType, JobID: "j", Status: s}); err != nil {
			t.Fatalf("Publish(%s): %v", s, err)
		}
	}
	for _, s := range statuses {
		d := next(t, ch)
		if d.Subject != TopicFor(s) || d.Change.Status != s {
			t.Errorf("got %s on %q, want %s on %q", d.Change.Status, d.Subject, s, TopicFor(s))
		}
	}
}

func TestBus_WatchReportsBadPayloads(t *testing.T) {
	url := startTestNATS(t)
	b := dialTest(t, url)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Watch(ctx, TopicAll)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	raw, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("connecting: %v", err)
	}
	defer raw.Close()
	raw.Publish(TopicJobComplete, []byte(`{"jobId":"x","status":"DONE"}`)) //nolint:errcheck
	raw.Flush()                                                             //nolint:errcheck

	d := next(t, ch)
	if !errors.Is(d.Err, types.ErrUnrecognizedEnumValue) {
		t.Errorf("Err = %v, want ErrUnrecognizedEnumValue", d.Err)
	}
	if d.Subject != TopicJobComplete {
		t.Errorf("subject = %q", d.Subject)
	}
}

func TestBus_WatchClosesOnCancel(t *testing.T) {
	url := startTestNATS(t)
	b := dialTest(t, url)
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := b.Watch(ctx, TopicAll)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Cancel while changes are still arriving.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = b.Publish(context.Background(), JobStateChange{JobID: "x", Status: types.JobStatusSubmitted})
		}
	}()
	cancel()
	<-done

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestBus_PublishAfterClose(t *testing.T) {
	url := startTestNATS(t)
	b, err := Dial(url)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	if !b.Connected() {
		t.Fatal("expected a live connection")
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Publish(context.Background(), JobStateChange{JobID: "j", Status: types.JobStatusComplete}); err == nil {
		t.Error("expected an error publishing after close")
	}
}

func TestDial_Unreachable(t *testing.T) {
	if _, err := Dial("nats://127.0.0.1:1", nats.MaxReconnects(0), nats.Timeout(200*time.Millisecond)); err == nil {
		t.Fatal("expected a connection error")
	}
}
