// Package postgres keeps the job ledger in PostgreSQL. Jobs are stored as
// their JSON document next to the columns ListJobs filters and pages on.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore is a store.Store over a connection pool. Inside
// RunInTransaction the same type runs every query on the open transaction.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx
}

var _ store.Store = (*PostgresStore)(nil)

// New connects to databaseURL and brings the schema up to date.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	target, err := migratepg.WithInstance(db, &migratepg.Config{MigrationsTable: "mcjob_schema_migrations"})
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// q is the open transaction, if any, or the pool.
func (s *PostgresStore) q() executor {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *PostgresStore) CreateJob(ctx context.Context, job types.Job) error {
	return queryCreateJob(ctx, s.q(), job)
}

func (s *PostgresStore) GetJob(ctx context.Context, id string) (types.Job, error) {
	return queryGetJob(ctx, s.q(), id)
}

func (s *PostgresStore) ListJobs(ctx context.Context, filter store.JobFilter) ([]types.Job, error) {
	return queryListJobs(ctx, s.q(), filter)
}

func (s *PostgresStore) UpdateJob(ctx context.Context, job types.Job) error {
	return queryUpdateJob(ctx, s.q(), job)
}

func (s *PostgresStore) TagResource(ctx context.Context, arn string, tags map[string]string) error {
	return queryTagResource(ctx, s.q(), arn, tags)
}

func (s *PostgresStore) UntagResource(ctx context.Context, arn string, keys []string) error {
	return queryUntagResource(ctx, s.q(), arn, keys)
}

func (s *PostgresStore) ListTags(ctx context.Context, arn string) (map[string]string, error) {
	return queryListTags(ctx, s.q(), arn)
}

// RunInTransaction runs fn against a store bound to one transaction and
// commits when fn returns nil. Calls made inside fn join the open
// transaction rather than nesting.
func (s *PostgresStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&PostgresStore{db: s.db, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close releases the pool. It does nothing on a transaction-bound store.
func (s *PostgresStore) Close() error {
	if s.tx != nil {
		return nil
	}
	return s.db.Close()
}
