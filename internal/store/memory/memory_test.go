package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

func job(id, queue string, status types.JobStatus, created time.Time) types.Job {
	return types.NewJobBuilder().
		WithId(id).
		WithQueue(queue).
		WithStatus(status).
		WithCreatedAt(created).
		Build()
}

func ids(jobs []types.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Id().Or("")
	}
	return out
}

func seed(t *testing.T) *MemoryStore {
	t.Helper()
	s := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, j := range []types.Job{
		job("a", "Default", types.JobStatusSubmitted, base),
		job("b", "Default", types.JobStatusComplete, base.Add(time.Minute)),
		job("c", "Fast", types.JobStatusSubmitted, base.Add(2*time.Minute)),
		job("d", "Default", types.JobStatusSubmitted, base.Add(2*time.Minute)),
	} {
		if err := s.CreateJob(context.Background(), j); err != nil {
			t.Fatalf("CreateJob #%d: %v", i, err)
		}
	}
	return s
}

func TestCreateGetJob(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	got, err := s.GetJob(ctx, "b")
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if got.Status().Or("") != types.JobStatusComplete {
		t.Errorf("Status = %v", got.Status())
	}

	if _, err := s.GetJob(ctx, "zzz"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetJob(missing) error = %v, want ErrNotFound", err)
	}
	if err := s.CreateJob(ctx, job("a", "", types.JobStatusSubmitted, time.Now())); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("CreateJob(duplicate) error = %v, want ErrAlreadyExists", err)
	}
	if err := s.CreateJob(ctx, types.NewJobBuilder().Build()); err == nil {
		t.Error("CreateJob without id should fail")
	}
}

func TestUpdateJob(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	j, _ := s.GetJob(ctx, "a")
	if err := s.UpdateJob(ctx, j.ToBuilder().WithStatus(types.JobStatusCanceled).Build()); err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	got, _ := s.GetJob(ctx, "a")
	if got.Status().Or("") != types.JobStatusCanceled {
		t.Errorf("Status = %v, want CANCELED", got.Status())
	}

	if err := s.UpdateJob(ctx, job("zzz", "", types.JobStatusError, time.Now())); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UpdateJob(missing) error = %v, want ErrNotFound", err)
	}
}

func TestListJobs(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name   string
		filter store.JobFilter
		want   []string
	}{
		{"ascending", store.JobFilter{}, []string{"a", "b", "c", "d"}},
		{"descending", store.JobFilter{Descending: true}, []string{"d", "c", "b", "a"}},
		{"queue", store.JobFilter{Queue: "Default"}, []string{"a", "b", "d"}},
		{"status", store.JobFilter{Status: types.JobStatusSubmitted, Descending: true}, []string{"d", "c", "a"}},
		{"limit", store.JobFilter{Limit: 2}, []string{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.ListJobs(ctx, tc.filter)
			if err != nil {
				t.Fatalf("ListJobs: %v", err)
			}
			if !reflect.DeepEqual(ids(got), tc.want) {
				t.Errorf("ids = %v, want %v", ids(got), tc.want)
			}
		})
	}
}

func TestListJobs_Cursor(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	first, _ := s.ListJobs(ctx, store.JobFilter{Limit: 2, Descending: true})
	last := first[len(first)-1]
	rest, err := s.ListJobs(ctx, store.JobFilter{
		Limit:      2,
		Descending: true,
		After:      &store.Cursor{CreatedAt: last.CreatedAt().Or(time.Time{}), ID: last.Id().Or("")},
	})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if got := append(ids(first), ids(rest)...); !reflect.DeepEqual(got, []string{"d", "c", "b", "a"}) {
		t.Errorf("paged ids = %v", got)
	}
}

func TestTags(t *testing.T) {
	s := New()
	ctx := context.Background()
	arn := "arn:aws:mediaconvert:us-east-1:111122223333:jobs/a"

	if err := s.TagResource(ctx, arn, map[string]string{"env": "prod", "team": "video"}); err != nil {
		t.Fatalf("TagResource: %v", err)
	}
	if err := s.TagResource(ctx, arn, map[string]string{"env": "dev"}); err != nil {
		t.Fatalf("TagResource: %v", err)
	}
	if err := s.UntagResource(ctx, arn, []string{"team", "missing"}); err != nil {
		t.Fatalf("UntagResource: %v", err)
	}
	got, err := s.ListTags(ctx, arn)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]string{"env": "dev"}) {
		t.Errorf("tags = %v", got)
	}

	got["env"] = "mutated"
	again, _ := s.ListTags(ctx, arn)
	if again["env"] != "dev" {
		t.Error("ListTags must return a copy")
	}

	empty, err := s.ListTags(ctx, "arn:other")
	if err != nil || len(empty) != 0 {
		t.Errorf("ListTags(untagged) = %v, %v", empty, err)
	}
}

func TestRunInTransaction(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	err := s.RunInTransaction(ctx, func(tx store.Store) error {
		j, err := tx.GetJob(ctx, "c")
		if err != nil {
			return err
		}
		return tx.UpdateJob(ctx, j.ToBuilder().WithStatus(types.JobStatusProgressing).Build())
	})
	if err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}
	got, _ := s.GetJob(ctx, "c")
	if got.Status().Or("") != types.JobStatusProgressing {
		t.Errorf("Status = %v", got.Status())
	}
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	s := seed(t)
	ctx := context.Background()
	arn := "arn:aws:mediaconvert:us-west-2:444455556666:jobs/c"
	if err := s.TagResource(ctx, arn, map[string]string{"team": "video"}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := s.RunInTransaction(ctx, func(tx store.Store) error {
		if err := tx.CreateJob(ctx, job("e", "Default", types.JobStatusSubmitted, time.Now())); err != nil {
			return err
		}
		j, err := tx.GetJob(ctx, "c")
		if err != nil {
			return err
		}
		if err := tx.UpdateJob(ctx, j.ToBuilder().WithStatus(types.JobStatusCanceled).Build()); err != nil {
			return err
		}
		if err := tx.TagResource(ctx, arn, map[string]string{"team": "audio", "env": "prod"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTransaction = %v, want boom", err)
	}

	if _, err := s.GetJob(ctx, "e"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("created job survived rollback: %v", err)
	}
	got, _ := s.GetJob(ctx, "c")
	if got.Status().Or("") == types.JobStatusCanceled {
		t.Error("update survived rollback")
	}
	tags, _ := s.ListTags(ctx, arn)
	if !reflect.DeepEqual(tags, map[string]string{"team": "video"}) {
		t.Errorf("tags = %v after rollback", tags)
	}
}

func TestRunInTransaction_BlocksWriters(t *testing.T) {
	s := New()
	ctx := context.Background()

	inTx := make(chan struct{})
	release := make(chan struct{})
	txDone := make(chan error, 1)
	go func() {
		txDone <- s.RunInTransaction(ctx, func(tx store.Store) error {
			close(inTx)
			<-release
			return tx.CreateJob(ctx, job("a", "Default", types.JobStatusSubmitted, time.Now()))
		})
	}()
	<-inTx

	written := make(chan error, 1)
	go func() {
		written <- s.CreateJob(ctx, job("a", "Default", types.JobStatusSubmitted, time.Now()))
	}()
	select {
	case err := <-written:
		t.Fatalf("CreateJob ran during a transaction: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	if err := <-txDone; err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}
	if err := <-written; !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("CreateJob after transaction = %v, want ErrAlreadyExists", err)
	}
}

func TestRunInTransaction_Nested(t *testing.T) {
	s := New()
	ctx := context.Background()
	err := s.RunInTransaction(ctx, func(tx store.Store) error {
		return tx.RunInTransaction(ctx, func(inner store.Store) error {
			return inner.CreateJob(ctx, job("a", "Default", types.JobStatusSubmitted, time.Now()))
		})
	})
	if err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}
	if _, err := s.GetJob(ctx, "a"); err != nil {
		t.Errorf("GetJob: %v", err)
	}
}
