package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
)

// recordingDestination keeps every export written to it. Writes fail while
// err is set.
type recordingDestination struct {
	name string

	mu     sync.Mutex
	writes [][]byte
	err    error
}

func (d *recordingDestination) Write(_ context.Context, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.writes = append(d.writes, append([]byte(nil), data...))
	return nil
}

func (d *recordingDestination) String() string { return d.name }

func (d *recordingDestination) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.writes)
}

func (d *recordingDestination) setErr(err error) {
	d.mu.Lock()
	d.err = err
	d.mu.Unlock()
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSyncNow_SkipsUnchanged(t *testing.T) {
	ctx := context.Background()
	ms := memory.New()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	if err := ms.CreateJob(ctx, testJob("1-a", now)); err != nil {
		t.Fatal(err)
	}

	dest := &recordingDestination{name: "rec"}
	sched := NewScheduler(ms, []Destination{dest}, time.Hour, discard)

	if err := sched.SyncNow(ctx); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if err := sched.SyncNow(ctx); err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if n := dest.count(); n != 1 {
		t.Fatalf("unchanged ledger written %d times, want 1", n)
	}

	if err := ms.TagResource(ctx, testJob("1-a", now).Arn().Or(""), map[string]string{"env": "prod"}); err != nil {
		t.Fatal(err)
	}
	if err := sched.SyncNow(ctx); err != nil {
		t.Fatalf("third sync: %v", err)
	}
	if n := dest.count(); n != 2 {
		t.Fatalf("retagged ledger written %d times total, want 2", n)
	}
	if last := string(dest.writes[1]); !strings.Contains(last, `"env":"prod"`) {
		t.Errorf("latest export missing tag:\n%s", last)
	}
}

func TestSyncNow_RetriesFailedDestination(t *testing.T) {
	ctx := context.Background()
	ok := &recordingDestination{name: "ok"}
	flaky := &recordingDestination{name: "flaky", err: errors.New("unreachable")}
	sched := NewScheduler(memory.New(), []Destination{ok, flaky}, time.Hour, discard)

	err := sched.SyncNow(ctx)
	if err == nil || !strings.Contains(err.Error(), "flaky: unreachable") {
		t.Fatalf("err = %v, want the flaky destination's failure", err)
	}
	if ok.count() != 1 {
		t.Errorf("healthy destination written %d times, want 1", ok.count())
	}

	flaky.setErr(nil)
	if err := sched.SyncNow(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if ok.count() != 1 || flaky.count() != 1 {
		t.Errorf("after retry: ok=%d flaky=%d, want 1 and 1", ok.count(), flaky.count())
	}
}

func TestSchedulerStartStop(t *testing.T) {
	dest := &recordingDestination{name: "rec"}
	sched := NewScheduler(memory.New(), []Destination{dest}, 20*time.Millisecond, discard)
	sched.Start()

	deadline := time.Now().Add(2 * time.Second)
	for dest.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	sched.Stop()

	// The ledger never changes, so ticks after the first export are no-ops.
	if n := dest.count(); n != 1 {
		t.Fatalf("writes = %d, want 1", n)
	}
	lines := nonEmptyLines(string(dest.writes[0]))
	if len(lines) != 1 || !strings.Contains(lines[0], `"type":"header"`) {
		t.Errorf("export = %q, want a header only", lines)
	}
}

func TestSchedulerStop_NoStart(t *testing.T) {
	NewScheduler(memory.New(), nil, time.Minute, discard).Stop()
}

func TestContentDigest_IgnoresHeader(t *testing.T) {
	body := `{"type":"job","data":{"id":"1-a"}}` + "\n"
	a := contentDigest([]byte(`{"type":"header","timestamp":"2024-05-01T09:00:00Z"}` + "\n" + body))
	b := contentDigest([]byte(`{"type":"header","timestamp":"2024-05-01T10:00:00Z"}` + "\n" + body))
	if a != b {
		t.Error("digest depends on the header timestamp")
	}
	if c := contentDigest([]byte(`{"type":"header"}` + "\n")); c == a {
		t.Error("digest ignores the job lines")
	}
}

type fakePutter struct {
	bucket, key, contentType string
	data                     []byte
	err                      error
}

func (f *fakePutter) PutObject(_ context.Context, bucket, key string, data []byte, contentType string) error {
	f.bucket, f.key, f.data, f.contentType = bucket, key, data, contentType
	return f.err
}

func TestS3Destination(t *testing.T) {
	p := &fakePutter{}
	dest := NewS3Destination(p, "ledger", "exports/jobs.jsonl")
	if got := dest.String(); got != "s3://ledger/exports/jobs.jsonl" {
		t.Errorf("String() = %q", got)
	}
	if err := dest.Write(context.Background(), []byte("{}\n")); err != nil {
		t.Fatal(err)
	}
	if p.bucket != "ledger" || p.key != "exports/jobs.jsonl" || p.contentType != "application/x-ndjson" || string(p.data) != "{}\n" {
		t.Errorf("put = %+v", p)
	}

	p.err = errors.New("denied")
	err := dest.Write(context.Background(), nil)
	if !errors.Is(err, p.err) {
		t.Errorf("err = %v, want it to wrap %v", err, p.err)
	}
}
