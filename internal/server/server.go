// Package server serves a local MediaConvert job ledger. Jobs are accepted,
// listed, canceled and tagged the way the service's 2017-08-29 REST API does,
// but nothing is transcoded: a job stays SUBMITTED until it is canceled.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// Options identify the account the ledger acts for.
type Options struct {
	Region      string // region in job and queue ARNs
	Account     string // account id in job and queue ARNs
	TokenPrefix string // prefix for generated job ids
	Now         func() time.Time
}

// JobServer implements the job operations on top of a store.
type JobServer struct {
	store     store.Store
	publisher events.Publisher
	stream    *jobStream
	opts      Options
}

// NewJobServer returns a JobServer backed by the given store and publisher.
func NewJobServer(s store.Store, p events.Publisher, opts Options) *JobServer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if opts.Account == "" {
		opts.Account = "111122223333"
	}
	return &JobServer{
		store:     s,
		publisher: p,
		stream:    newJobStream(),
		opts:      opts,
	}
}

// CloseStreams ends every open event stream, so a graceful shutdown does not
// wait on subscribers to hang up. Register it with
// http.Server.RegisterOnShutdown.
func (s *JobServer) CloseStreams() {
	s.stream.close()
}

// now reads the clock at the microsecond precision the ledger stores, so a
// cursor built from a returned job matches its stored row.
func (s *JobServer) now() time.Time {
	return s.opts.Now().UTC().Truncate(time.Microsecond)
}

// publishJob announces job's current status on the event bus and to event
// stream clients. Failures are logged but do not fail the caller.
func (s *JobServer) publishJob(ctx context.Context, job types.Job, at time.Time) {
	ev, err := events.NewJobStateChange(job, s.opts.Account, at)
	if err != nil {
		slog.Warn("failed to build job state change", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish event", "topic", ev.Topic(), "job_id", ev.JobID, "error", err)
	}
	s.stream.publish(ev)
}

// inputError indicates invalid user input.
// Transport layers map this to 400.
type inputError string

func (e inputError) Error() string { return string(e) }

// conflictError indicates a request that the job's current status forbids.
// Transport layers map this to 409.
type conflictError string

func (e conflictError) Error() string { return string(e) }

// isInputError reports whether err was caused by the request itself.
func isInputError(err error) bool {
	var ie inputError
	var ve *types.ValidationError
	var de *types.DecodeError
	return errors.As(err, &ie) || errors.As(err, &ve) || errors.As(err, &de) ||
		errors.Is(err, types.ErrUnrecognizedEnumValue)
}
