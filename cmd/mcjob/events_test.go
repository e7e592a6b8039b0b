package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// chanWatcher is an events.Watcher that replays a fixed list of deliveries
// and then stays open until the watch is canceled.
type chanWatcher struct {
	deliveries []events.Delivery
}

func (w *chanWatcher) Watch(ctx context.Context, topic string) (<-chan events.Delivery, error) {
	ch := make(chan events.Delivery)
	go func() {
		defer close(ch)
		for _, d := range w.deliveries {
			select {
			case ch <- d:
			case <-ctx.Done():
				return
			}
		}
		<-ctx.Done()
	}()
	return ch, nil
}

func (w *chanWatcher) Close() error { return nil }

func TestTailEvents_StopsAtLimit(t *testing.T) {
	_, bad := events.ParseJobStateChange([]byte(`{"jobId":"b","status":"DONE"}`))
	sub := &chanWatcher{deliveries: []events.Delivery{
		{Subject: events.TopicJobSubmitted, Change: events.JobStateChange{JobID: "a", Status: types.JobStatusSubmitted}},
		{Subject: "mediaconvert.job.done", Err: bad},
		{Subject: events.TopicJobProgressing, Change: events.JobStateChange{JobID: "c", Status: types.JobStatusProgressing}},
	}}

	var out bytes.Buffer
	if err := tailEvents(context.Background(), &out, sub, events.TopicAll, 2); err != nil {
		t.Fatalf("tailEvents: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (the bad payload is skipped):\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "SUBMITTED") || !strings.Contains(lines[0], "a") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "PROGRESSING") || !strings.Contains(lines[1], "c") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestTailEvents_StopsOnCancel(t *testing.T) {
	sub := &chanWatcher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tailEvents(ctx, &bytes.Buffer{}, sub, events.TopicAll, 0); err != nil {
		t.Fatalf("tailEvents: %v", err)
	}
}

func TestFormatEvent(t *testing.T) {
	line := formatEvent(events.JobStateChange{
		Timestamp:    1583867853213,
		JobID:        "1583867853213-1nvvbu",
		Status:       types.JobStatusError,
		Queue:        "arn:aws:mediaconvert:us-east-1:111122223333:queues/Default",
		ErrorCode:    1010,
		ErrorMessage: "Unable to open input file",
	})
	for _, want := range []string{"2020-03-10T19:17:33Z", "ERROR", "1583867853213-1nvvbu", "queues/Default", "(1010: Unable to open input file)"} {
		if !strings.Contains(line, want) {
			t.Errorf("formatEvent() = %q, missing %q", line, want)
		}
	}
}

func TestSimulateCommand_PublishesSubmitted(t *testing.T) {
	srv, err := natsserver.NewServer(&natsserver.Options{Host: "127.0.0.1", Port: -1})
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}

	nc, err := nats.Connect(srv.ClientURL())
	if err != nil {
		t.Fatalf("connecting: %v", err)
	}
	defer nc.Close()
	msgs := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(events.TopicAll, msgs)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer sub.Unsubscribe() //nolint:errcheck
	nc.Flush()

	t.Setenv("MCJOB_NATS_URL", srv.ClientURL())
	if out, err := execute(t, "simulate", writeSpec(t, "job.json", validSpec)); err != nil {
		t.Fatalf("simulate: %v\n%s", err, out)
	}

	select {
	case msg := <-msgs:
		if msg.Subject != events.TopicJobSubmitted {
			t.Errorf("subject = %q, want %q", msg.Subject, events.TopicJobSubmitted)
		}
		ev, err := events.ParseJobStateChange(msg.Data)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if ev.AccountID != "111122223333" || ev.Status != types.JobStatusSubmitted {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the submitted event")
	}
}
