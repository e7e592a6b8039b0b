package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// uniqueViolation is the PostgreSQL error code for a duplicate key.
const uniqueViolation = "23505"

func queryCreateJob(ctx context.Context, db executor, job types.Job) error {
	row, err := newJobRow(job)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO jobs (id, arn, queue, status, created_at, document)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		row.id,
		nullString(row.arn),
		nullString(row.queue),
		row.status,
		row.createdAt,
		row.document,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("job %s: %w", row.id, store.ErrAlreadyExists)
	}
	return err
}

func queryGetJob(ctx context.Context, db executor, id string) (types.Job, error) {
	row := db.QueryRowContext(ctx, `SELECT document FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Job{}, fmt.Errorf("job %s: %w", id, store.ErrNotFound)
	}
	return job, err
}

func queryUpdateJob(ctx context.Context, db executor, job types.Job) error {
	row, err := newJobRow(job)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `
		UPDATE jobs SET arn = $2, queue = $3, status = $4, created_at = $5, document = $6
		WHERE id = $1`,
		row.id,
		nullString(row.arn),
		nullString(row.queue),
		row.status,
		row.createdAt,
		row.document,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("job %s: %w", row.id, store.ErrNotFound)
	}
	return nil
}

// listJobsQuery builds the SELECT for filter. Pages are keyset-paginated on
// (created_at, id) in the requested direction.
func listJobsQuery(filter store.JobFilter) (string, []any) {
	var (
		whereClauses []string
		args         []any
		argIdx       int
	)

	nextArg := func() string {
		argIdx++
		return fmt.Sprintf("$%d", argIdx)
	}

	if filter.Queue != "" {
		whereClauses = append(whereClauses, "queue = "+nextArg())
		args = append(args, filter.Queue)
	}
	if filter.Status != "" {
		whereClauses = append(whereClauses, "status = "+nextArg())
		args = append(args, string(filter.Status))
	}

	dir, cmp := "ASC", ">"
	if filter.Descending {
		dir, cmp = "DESC", "<"
	}
	if filter.After != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("(created_at, id) %s (%s, %s)", cmp, nextArg(), nextArg()))
		args = append(args, columnTime(filter.After.CreatedAt), filter.After.ID)
	}

	var b strings.Builder
	b.WriteString("SELECT document FROM jobs")
	if len(whereClauses) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(whereClauses, " AND "))
	}
	fmt.Fprintf(&b, " ORDER BY created_at %s, id %s", dir, dir)
	if filter.Limit > 0 {
		b.WriteString(" LIMIT " + nextArg())
		args = append(args, filter.Limit)
	}
	return b.String(), args
}

func queryListJobs(ctx context.Context, db executor, filter store.JobFilter) ([]types.Job, error) {
	query, args := listJobsQuery(filter)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func queryTagResource(ctx context.Context, db executor, arn string, tags map[string]string) error {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, err := db.ExecContext(ctx, `
			INSERT INTO resource_tags (arn, key, value) VALUES ($1, $2, $3)
			ON CONFLICT (arn, key) DO UPDATE SET value = EXCLUDED.value`,
			arn, k, tags[k],
		)
		if err != nil {
			return fmt.Errorf("tag %s: %w", k, err)
		}
	}
	return nil
}

func queryUntagResource(ctx context.Context, db executor, arn string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := db.ExecContext(ctx,
		`DELETE FROM resource_tags WHERE arn = $1 AND key = ANY($2)`,
		arn, pq.Array(keys),
	)
	return err
}

func queryListTags(ctx context.Context, db executor, arn string) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM resource_tags WHERE arn = $1 ORDER BY key`, arn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		tags[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// columnTime truncates t to the microsecond precision of a TIMESTAMPTZ
// column. Postgres would otherwise round, leaving a cursor built from a job
// document on the wrong side of its own row.
func columnTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// jobRow holds the indexed columns of a job next to its full document.
type jobRow struct {
	id        string
	arn       string
	queue     string
	status    string
	createdAt time.Time
	document  []byte
}

func newJobRow(job types.Job) (jobRow, error) {
	id, ok := job.Id().Get()
	if !ok {
		return jobRow{}, errors.New("job: missing id")
	}
	status, ok := job.Status().Get()
	if !ok {
		return jobRow{}, fmt.Errorf("job %s: missing status", id)
	}
	doc, err := job.MarshalJSON()
	if err != nil {
		return jobRow{}, fmt.Errorf("job %s: encode document: %w", id, err)
	}
	return jobRow{
		id:        id,
		arn:       job.Arn().Or(""),
		queue:     job.Queue().Or(""),
		status:    string(status),
		createdAt: columnTime(job.CreatedAt().Or(time.Time{})),
		document:  doc,
	}, nil
}
