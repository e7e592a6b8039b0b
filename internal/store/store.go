// Package store persists the jobs and resource tags of the local job ledger.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// ErrNotFound is returned when no job or resource matches.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a job id is reused.
var ErrAlreadyExists = errors.New("already exists")

// JobFilter selects and orders jobs for ListJobs. After, when set, resumes
// a listing just past the given job in the chosen order.
type JobFilter struct {
	Queue      string
	Status     types.JobStatus
	Descending bool
	Limit      int
	After      *Cursor
}

// Cursor is a position in a job listing.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// Store defines the persistence interface for the job ledger.
type Store interface {
	// Jobs
	CreateJob(ctx context.Context, job types.Job) error
	GetJob(ctx context.Context, id string) (types.Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]types.Job, error)
	UpdateJob(ctx context.Context, job types.Job) error

	// Tags, keyed by resource ARN.
	TagResource(ctx context.Context, arn string, tags map[string]string) error
	UntagResource(ctx context.Context, arn string, keys []string) error
	ListTags(ctx context.Context, arn string) (map[string]string, error)

	// Transaction support
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error

	// Lifecycle
	Close() error
}
