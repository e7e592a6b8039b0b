// Package sync periodically exports the job ledger to S3 or a git repo.
package sync

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
)

// Destination receives ledger exports.
type Destination interface {
	// Write replaces the destination's copy with data.
	Write(ctx context.Context, data []byte) error
	// String names the destination in logs.
	String() string
}

// Scheduler exports the ledger on a fixed interval. A destination is only
// written when the jobs or tags changed since its last successful write.
type Scheduler struct {
	store    store.Store
	dests    []Destination
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	synced map[Destination]string

	stop context.CancelFunc
	done chan struct{}
}

func NewScheduler(s store.Store, dests []Destination, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:    s,
		dests:    dests,
		interval: interval,
		logger:   logger,
		synced:   make(map[Destination]string, len(dests)),
	}
}

// Start exports once right away and then on every tick until Stop.
func (s *Scheduler) Start() {
	ctx, stop := context.WithCancel(context.Background())
	s.stop = stop
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		tick := time.NewTicker(s.interval)
		defer tick.Stop()
		for {
			if err := s.SyncNow(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("ledger sync failed", "err", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
			}
		}
	}()
}

// Stop ends the loop and waits for an export in flight. It is a no-op on a
// scheduler that was never started.
func (s *Scheduler) Stop() {
	if s.stop == nil {
		return
	}
	s.stop()
	<-s.done
}

// SyncNow exports the ledger and writes it to every destination whose copy
// is stale. Failed destinations are retried on the next call.
func (s *Scheduler) SyncNow(ctx context.Context) error {
	var buf bytes.Buffer
	if err := ExportJSONL(ctx, s.store, &buf); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	data := buf.Bytes()
	sum := contentDigest(data)

	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	wrote := 0
	for _, d := range s.dests {
		if s.synced[d] == sum {
			continue
		}
		if err := d.Write(ctx, data); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d, err))
			continue
		}
		s.synced[d] = sum
		wrote++
	}
	s.logger.Debug("ledger sync done", "written", wrote, "destinations", len(s.dests), "bytes", len(data))
	return errors.Join(errs...)
}

// contentDigest hashes an export without its header line, whose timestamp
// changes on every run.
func contentDigest(export []byte) string {
	if i := bytes.IndexByte(export, '\n'); i >= 0 {
		export = export[i+1:]
	}
	h := sha256.Sum256(export)
	return hex.EncodeToString(h[:])
}
