package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/idgen"
	"github.com/alfredjeanlab/mediaconvert/types"
)

const (
	// streamHistory is how many recent state changes are kept for
	// Last-Event-ID replay.
	streamHistory = 500

	streamKeepalive = 15 * time.Second

	// streamBuffer is the per-client backlog; a client that falls further
	// behind misses changes.
	streamBuffer = 64
)

// streamEvent is one job state change as sent on the event stream.
type streamEvent struct {
	Seq    uint64
	Change events.JobStateChange
	Data   []byte
}

// streamFilter selects the changes a client sees. Zero fields match all.
type streamFilter struct {
	statuses map[types.JobStatus]bool
	queue    string
	jobID    string
}

func (f streamFilter) matches(c events.JobStateChange) bool {
	if len(f.statuses) > 0 && !f.statuses[c.Status] {
		return false
	}
	if f.queue != "" && c.Queue != f.queue {
		return false
	}
	return f.jobID == "" || c.JobID == f.jobID
}

type streamClient struct {
	filter streamFilter
	ch     chan streamEvent
}

// jobStream fans job state changes out to event stream clients.
type jobStream struct {
	mu      sync.Mutex
	seq     uint64
	history []streamEvent
	clients map[*streamClient]struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func newJobStream() *jobStream {
	return &jobStream{clients: make(map[*streamClient]struct{}), done: make(chan struct{})}
}

// close ends every attached stream and any attached later.
func (s *jobStream) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// publish records c and delivers it to every matching client without
// blocking on slow ones.
func (s *jobStream) publish(c events.JobStateChange) {
	data, err := json.Marshal(c)
	if err != nil {
		slog.Warn("failed to encode job state change for stream", "job_id", c.JobID, "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	ev := streamEvent{Seq: s.seq, Change: c, Data: data}
	s.history = append(s.history, ev)
	if len(s.history) > streamHistory {
		s.history = s.history[len(s.history)-streamHistory:]
	}
	for cl := range s.clients {
		if !cl.filter.matches(c) {
			continue
		}
		select {
		case cl.ch <- ev:
		default:
			slog.Debug("dropping job state change for slow stream client", "job_id", c.JobID)
		}
	}
}

// attach registers a client and returns the recorded changes after
// lastSeq that it should replay first.
func (s *jobStream) attach(f streamFilter, lastSeq uint64) (*streamClient, []streamEvent) {
	cl := &streamClient{filter: f, ch: make(chan streamEvent, streamBuffer)}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[cl] = struct{}{}

	var replay []streamEvent
	if lastSeq > 0 {
		for _, ev := range s.history {
			if ev.Seq > lastSeq && f.matches(ev.Change) {
				replay = append(replay, ev)
			}
		}
	}
	return cl, replay
}

func (s *jobStream) detach(cl *streamClient) {
	s.mu.Lock()
	delete(s.clients, cl)
	s.mu.Unlock()
}

// parseStreamFilter reads the status, queue and jobId query parameters.
// status takes a comma-separated list; queue takes a name or an ARN.
func (s *JobServer) parseStreamFilter(r *http.Request) (streamFilter, error) {
	q := r.URL.Query()
	f := streamFilter{jobID: q.Get("jobId")}
	if v := q.Get("queue"); v != "" {
		f.queue = idgen.QueueARN(s.opts.Region, s.opts.Account, v)
	}
	for _, raw := range strings.Split(q.Get("status"), ",") {
		if raw = strings.TrimSpace(raw); raw == "" {
			continue
		}
		st, err := types.ParseJobStatus(raw)
		if err != nil {
			return streamFilter{}, err
		}
		if f.statuses == nil {
			f.statuses = make(map[types.JobStatus]bool)
		}
		f.statuses[st] = true
	}
	return f, nil
}

// handleEventStream handles GET /2017-08-29/events/stream. Each job state
// change is one server-sent event named after its topic.
func (s *JobServer) handleEventStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}
	filter, err := s.parseStreamFilter(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var lastSeq uint64
	if v := r.Header.Get("Last-Event-ID"); v != "" {
		lastSeq, _ = strconv.ParseUint(v, 10, 64)
	}

	client, replay := s.stream.attach(filter, lastSeq)
	defer s.stream.detach(client)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	for _, ev := range replay {
		writeStreamEvent(w, ev)
	}
	flusher.Flush()

	keepalive := time.NewTicker(streamKeepalive)
	defer keepalive.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-s.stream.done:
			return
		case ev := <-client.ch:
			writeStreamEvent(w, ev)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ":keepalive\n\n")
			flusher.Flush()
		}
	}
}

func writeStreamEvent(w http.ResponseWriter, ev streamEvent) {
	fmt.Fprintf(w, "id:%d\nevent:%s\ndata:%s\n\n", ev.Seq, ev.Change.Topic(), ev.Data)
}
