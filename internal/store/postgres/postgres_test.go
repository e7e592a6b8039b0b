package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

const testARN = "arn:aws:mediaconvert:us-east-1:111122223333:jobs/job-1"

func testJob(now time.Time) types.Job {
	return types.NewJobBuilder().
		WithId("job-1").
		WithArn(testARN).
		WithQueue("Default").
		WithStatus(types.JobStatusSubmitted).
		WithPriority(-3).
		WithCreatedAt(now).
		Build()
}

func TestScanHelpers(t *testing.T) {
	if nullString("").Valid {
		t.Error("nullString(\"\") should be invalid")
	}
	if ns := nullString("hello"); !ns.Valid || ns.String != "hello" {
		t.Errorf("nullString(\"hello\") = %v", ns)
	}
}

func TestDecodeJobDocument(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 30, 0, 250_000_000, time.UTC)
	job := testJob(now)
	doc, err := job.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	got, err := decodeJobDocument(doc)
	if err != nil {
		t.Fatalf("decodeJobDocument: %v", err)
	}
	if !got.Equal(job) {
		t.Fatalf("round trip = %s, want %s", got, job)
	}

	if _, err := decodeJobDocument([]byte(`{"id": "x", "bogus": 1}`)); !errors.Is(err, types.ErrUnknownField) {
		t.Errorf("unknown field error = %v", err)
	}
	if _, err := decodeJobDocument([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNewJobRow(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 123456789, time.UTC)
	row, err := newJobRow(testJob(now))
	if err != nil {
		t.Fatalf("newJobRow: %v", err)
	}
	if row.id != "job-1" || row.arn != testARN || row.queue != "Default" || row.status != "SUBMITTED" {
		t.Errorf("row = %+v", row)
	}
	if want := time.Date(2024, 5, 1, 9, 0, 0, 123456000, time.UTC); !row.createdAt.Equal(want) {
		t.Errorf("createdAt = %v, want %v (truncated, never rounded)", row.createdAt, want)
	}

	if _, err := newJobRow(types.NewJobBuilder().WithStatus(types.JobStatusError).Build()); err == nil {
		t.Error("expected error for job without id")
	}
	if _, err := newJobRow(types.NewJobBuilder().WithId("x").Build()); err == nil {
		t.Error("expected error for job without status")
	}
}

func TestQueryCreateJob(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC().Truncate(time.Microsecond)
	mock.ExpectExec("INSERT INTO jobs").
		WithArgs("job-1", testARN, "Default", "SUBMITTED", now, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := queryCreateJob(context.Background(), db, testJob(now)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryCreateJob_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO jobs").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := queryCreateJob(context.Background(), db, testJob(now))
	if !errors.Is(err, store.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestQueryGetJob(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"document"}).
		AddRow([]byte(`{"id":"job-1","status":"COMPLETE","priority":7,"createdAt":"2024-05-01T08:30:00Z"}`))
	mock.ExpectQuery("SELECT document FROM jobs WHERE id = \\$1").WithArgs("job-1").WillReturnRows(rows)

	job, err := queryGetJob(context.Background(), db, "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Status().Or("") != types.JobStatusComplete || job.Priority().Or(0) != 7 {
		t.Fatalf("got %s", job)
	}
}

func TestQueryGetJob_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT document FROM jobs WHERE id = \\$1").WithArgs("nonexistent").WillReturnError(sql.ErrNoRows)

	_, err := queryGetJob(context.Background(), db, "nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryUpdateJob(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC().Truncate(time.Microsecond)
	mock.ExpectExec("UPDATE jobs SET").
		WithArgs("job-1", testARN, "Default", "SUBMITTED", now, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := queryUpdateJob(context.Background(), db, testJob(now)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryUpdateJob_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE jobs SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := queryUpdateJob(context.Background(), db, testJob(time.Now()))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListJobsQuery(t *testing.T) {
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		name     string
		filter   store.JobFilter
		want     string
		wantArgs int
	}{
		{
			name:   "all",
			filter: store.JobFilter{},
			want:   "SELECT document FROM jobs ORDER BY created_at ASC, id ASC",
		},
		{
			name:     "filtered descending page",
			filter:   store.JobFilter{Queue: "Default", Status: types.JobStatusSubmitted, Descending: true, Limit: 2, After: &store.Cursor{CreatedAt: after, ID: "b"}},
			want:     "SELECT document FROM jobs WHERE queue = $1 AND status = $2 AND (created_at, id) < ($3, $4) ORDER BY created_at DESC, id DESC LIMIT $5",
			wantArgs: 5,
		},
		{
			name:     "ascending cursor",
			filter:   store.JobFilter{After: &store.Cursor{CreatedAt: after, ID: "b"}},
			want:     "SELECT document FROM jobs WHERE (created_at, id) > ($1, $2) ORDER BY created_at ASC, id ASC",
			wantArgs: 2,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, args := listJobsQuery(tc.filter)
			if got != tc.want {
				t.Errorf("query = %q\nwant    %q", got, tc.want)
			}
			if len(args) != tc.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tc.wantArgs)
			}
		})
	}
}

func TestQueryListJobs(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"document"}).
		AddRow([]byte(`{"id":"b","status":"SUBMITTED","queue":"Default"}`)).
		AddRow([]byte(`{"id":"a","status":"SUBMITTED","queue":"Default"}`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT document FROM jobs WHERE queue = $1 ORDER BY created_at DESC, id DESC LIMIT $2")).
		WithArgs("Default", 2).
		WillReturnRows(rows)

	jobs, err := queryListJobs(context.Background(), db, store.JobFilter{Queue: "Default", Descending: true, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 || jobs[0].Id().Or("") != "b" || jobs[1].Id().Or("") != "a" {
		t.Fatalf("got %v", jobs)
	}
}

// microsecondArg matches a time argument equal to want that carries no
// sub-microsecond part.
type microsecondArg struct{ want time.Time }

func (a microsecondArg) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && t.Nanosecond()%1000 == 0 && t.Equal(a.want)
}

func TestListJobs_SecondPageCursor(t *testing.T) {
	db, mock := newMockDB(t)
	s := &PostgresStore{db: db}
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT document FROM jobs WHERE queue = $1 ORDER BY created_at DESC, id DESC LIMIT $2")).
		WithArgs("Default", 2).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).
			AddRow([]byte(`{"id":"1-c","queue":"Default","createdAt":"2024-05-01T09:00:02.5Z"}`)).
			AddRow([]byte(`{"id":"1-b","queue":"Default","createdAt":"2024-05-01T09:00:01.123456789Z"}`)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT document FROM jobs WHERE queue = $1 AND (created_at, id) < ($2, $3) ORDER BY created_at DESC, id DESC LIMIT $4")).
		WithArgs("Default", microsecondArg{time.Date(2024, 5, 1, 9, 0, 1, 123456000, time.UTC)}, "1-b", 2).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).
			AddRow([]byte(`{"id":"1-a","queue":"Default","createdAt":"2024-05-01T09:00:00Z"}`)))

	filter := store.JobFilter{Queue: "Default", Descending: true, Limit: 2}
	first, err := s.ListJobs(ctx, filter)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first page has %d jobs", len(first))
	}
	last := first[len(first)-1]
	filter.After = &store.Cursor{CreatedAt: last.CreatedAt().Or(time.Time{}), ID: last.Id().Or("")}

	second, err := s.ListJobs(ctx, filter)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second) != 1 || second[0].Id().Or("") != "1-a" {
		t.Fatalf("second page = %v", second)
	}
}

func TestQueryListJobs_BadDocument(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"document"}).AddRow([]byte(`{"status":"FINISHED"}`))
	mock.ExpectQuery("SELECT document FROM jobs").WillReturnRows(rows)

	_, err := queryListJobs(context.Background(), db, store.JobFilter{})
	var enumErr *types.EnumError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected EnumError, got %v", err)
	}
}

func TestQueryTagResource(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO resource_tags").WithArgs(testARN, "env", "prod").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO resource_tags").WithArgs(testARN, "team", "video").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := queryTagResource(context.Background(), db, testARN, map[string]string{"team": "video", "env": "prod"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryUntagResource(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM resource_tags WHERE arn = \\$1 AND key = ANY\\(\\$2\\)").
		WithArgs(testARN, `{"team","missing"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := queryUntagResource(context.Background(), db, testARN, []string{"team", "missing"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No keys issues no statement.
	if err := queryUntagResource(context.Background(), db, testARN, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryListTags(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("env", "prod").
		AddRow("team", "video")
	mock.ExpectQuery("SELECT key, value FROM resource_tags WHERE arn = \\$1").WithArgs(testARN).WillReturnRows(rows)

	tags, err := queryListTags(context.Background(), db, testARN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags["env"] != "prod" || tags["team"] != "video" {
		t.Fatalf("got %v", tags)
	}
}

func TestRunInTransaction_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	s := &PostgresStore{db: db}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO resource_tags").WithArgs(testARN, "env", "prod").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.RunInTransaction(context.Background(), func(tx store.Store) error {
		return tx.TagResource(context.Background(), testARN, map[string]string{"env": "prod"})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunInTransaction_Rollback(t *testing.T) {
	db, mock := newMockDB(t)
	s := &PostgresStore{db: db}
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := s.RunInTransaction(context.Background(), func(tx store.Store) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunInTransaction_Nested(t *testing.T) {
	db, mock := newMockDB(t)
	s := &PostgresStore{db: db}
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM resource_tags").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.RunInTransaction(context.Background(), func(tx store.Store) error {
		if err := tx.Close(); err != nil {
			return err
		}
		return tx.RunInTransaction(context.Background(), func(inner store.Store) error {
			return inner.UntagResource(context.Background(), testARN, []string{"env"})
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
