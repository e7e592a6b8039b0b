// Package memory implements store.Store in process memory. Nothing survives
// a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// MemoryStore implements store.Store with maps guarded by a mutex.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]types.Job
	tags map[string]map[string]string
}

var (
	_ store.Store = (*MemoryStore)(nil)
	_ store.Store = txStore{}
)

// New returns an empty store.
func New() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]types.Job),
		tags: make(map[string]map[string]string),
	}
}

func (s *MemoryStore) CreateJob(ctx context.Context, job types.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createJob(job)
}

func (s *MemoryStore) GetJob(ctx context.Context, id string) (types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getJob(id)
}

func (s *MemoryStore) UpdateJob(ctx context.Context, job types.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateJob(job)
}

func (s *MemoryStore) ListJobs(ctx context.Context, filter store.JobFilter) ([]types.Job, error) {
	s.mu.RLock()
	out := s.matchJobs(filter)
	s.mu.RUnlock()
	return pageJobs(out, filter), nil
}

func (s *MemoryStore) TagResource(ctx context.Context, arn string, tags map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tagResource(arn, tags)
	return nil
}

func (s *MemoryStore) UntagResource(ctx context.Context, arn string, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.untagResource(arn, keys)
	return nil
}

func (s *MemoryStore) ListTags(ctx context.Context, arn string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listTags(arn), nil
}

// RunInTransaction runs fn while holding the store's write lock, so other
// callers neither see its partial writes nor interleave with it. If fn
// returns an error every write it made is undone.
func (s *MemoryStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, tags := s.snapshot()
	if err := fn(txStore{s}); err != nil {
		s.jobs, s.tags = jobs, tags
		return err
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// The lowercase methods below expect the caller to hold mu.

func (s *MemoryStore) createJob(job types.Job) error {
	id, ok := job.Id().Get()
	if !ok {
		return fmt.Errorf("create job: missing id")
	}
	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %s: %w", id, store.ErrAlreadyExists)
	}
	s.jobs[id] = job
	return nil
}

func (s *MemoryStore) getJob(id string) (types.Job, error) {
	job, ok := s.jobs[id]
	if !ok {
		return types.Job{}, fmt.Errorf("job %s: %w", id, store.ErrNotFound)
	}
	return job, nil
}

func (s *MemoryStore) updateJob(job types.Job) error {
	id := job.Id().Or("")
	if _, ok := s.jobs[id]; !ok {
		return fmt.Errorf("job %s: %w", id, store.ErrNotFound)
	}
	s.jobs[id] = job
	return nil
}

func (s *MemoryStore) matchJobs(filter store.JobFilter) []types.Job {
	var out []types.Job
	for _, job := range s.jobs {
		if filter.Queue != "" && job.Queue().Or("") != filter.Queue {
			continue
		}
		if filter.Status != "" && job.Status().Or("") != filter.Status {
			continue
		}
		out = append(out, job)
	}
	return out
}

func (s *MemoryStore) tagResource(arn string, tags map[string]string) {
	m := s.tags[arn]
	if m == nil {
		m = make(map[string]string, len(tags))
		s.tags[arn] = m
	}
	for k, v := range tags {
		m[k] = v
	}
}

func (s *MemoryStore) untagResource(arn string, keys []string) {
	for _, k := range keys {
		delete(s.tags[arn], k)
	}
}

func (s *MemoryStore) listTags(arn string) map[string]string {
	out := make(map[string]string, len(s.tags[arn]))
	for k, v := range s.tags[arn] {
		out[k] = v
	}
	return out
}

// snapshot copies the maps so a failed transaction can restore them.
func (s *MemoryStore) snapshot() (map[string]types.Job, map[string]map[string]string) {
	jobs := make(map[string]types.Job, len(s.jobs))
	for id, job := range s.jobs {
		jobs[id] = job
	}
	tags := make(map[string]map[string]string, len(s.tags))
	for arn, m := range s.tags {
		c := make(map[string]string, len(m))
		for k, v := range m {
			c[k] = v
		}
		tags[arn] = c
	}
	return jobs, tags
}

// pageJobs sorts jobs by (createdAt, id) in the filter's direction, then
// applies its cursor and limit.
func pageJobs(out []types.Job, filter store.JobFilter) []types.Job {
	less := func(a, b store.Cursor) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := cursorOf(out[i]), cursorOf(out[j])
		if filter.Descending {
			return less(b, a)
		}
		return less(a, b)
	})

	if filter.After != nil {
		after := *filter.After
		i := sort.Search(len(out), func(i int) bool {
			c := cursorOf(out[i])
			if filter.Descending {
				return less(c, after)
			}
			return less(after, c)
		})
		out = out[i:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out
}

func cursorOf(job types.Job) store.Cursor {
	return store.Cursor{CreatedAt: job.CreatedAt().Or(time.Time{}), ID: job.Id().Or("")}
}

// txStore is the view handed to a transaction. Its caller already holds the
// write lock.
type txStore struct{ s *MemoryStore }

func (t txStore) CreateJob(ctx context.Context, job types.Job) error { return t.s.createJob(job) }

func (t txStore) GetJob(ctx context.Context, id string) (types.Job, error) { return t.s.getJob(id) }

func (t txStore) UpdateJob(ctx context.Context, job types.Job) error { return t.s.updateJob(job) }

func (t txStore) ListJobs(ctx context.Context, filter store.JobFilter) ([]types.Job, error) {
	return pageJobs(t.s.matchJobs(filter), filter), nil
}

func (t txStore) TagResource(ctx context.Context, arn string, tags map[string]string) error {
	t.s.tagResource(arn, tags)
	return nil
}

func (t txStore) UntagResource(ctx context.Context, arn string, keys []string) error {
	t.s.untagResource(arn, keys)
	return nil
}

func (t txStore) ListTags(ctx context.Context, arn string) (map[string]string, error) {
	return t.s.listTags(arn), nil
}

// RunInTransaction joins the enclosing transaction.
func (t txStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(t)
}

// Close is a no-op; the enclosing transaction owns the store.
func (t txStore) Close() error { return nil }
