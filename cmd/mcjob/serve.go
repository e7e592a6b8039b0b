package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/server"
	"github.com/alfredjeanlab/mediaconvert/internal/specsource"
	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
	"github.com/alfredjeanlab/mediaconvert/internal/store/postgres"
	jobsync "github.com/alfredjeanlab/mediaconvert/internal/sync"
)

var (
	serveAddr    string
	serveRegion  string
	serveAccount string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local job ledger that speaks the MediaConvert REST API",
	Long: `Serve CreateJob, GetJob, ListJobs, CancelJob and the tagging operations
over HTTP. Jobs live in Postgres when MCJOB_DATABASE_URL is set and in
memory otherwise. State changes are published on MCJOB_NATS_URL and
streamed at /2017-08-29/events/stream. Requests must carry
MCJOB_SERVER_TOKEN as a bearer token when it is set.`,
	GroupID: "ledger",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openLedgerStore()
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				logger.Error("error closing store", "err", err)
			}
		}()

		publisher, err := newPublisher()
		if err != nil {
			return err
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("error closing publisher", "err", err)
			}
		}()

		region := serveRegion
		if region == "" {
			region = cfg.S3Region
		}
		js := server.NewJobServer(st, publisher, server.Options{
			Region:      region,
			Account:     serveAccount,
			TokenPrefix: cfg.TokenPrefix,
		})

		if sched := newSyncScheduler(cmd.Context(), st); sched != nil {
			sched.Start()
			logger.Info("sync scheduler started", "interval", cfg.SyncInterval)
			defer func() {
				sched.Stop()
				logger.Info("sync scheduler stopped")
			}()
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.ListenAddr
		}
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serveHTTP(ctx, lis, js.NewHTTPHandler(cfg.ServerToken), js.CloseStreams)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default MCJOB_LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&serveRegion, "region", "", "region for job and queue ARNs (default MCJOB_S3_REGION)")
	serveCmd.Flags().StringVar(&serveAccount, "account", "111122223333", "account id for job and queue ARNs")
}

// openLedgerStore connects to Postgres when MCJOB_DATABASE_URL is set and
// falls back to an in-memory ledger.
func openLedgerStore() (store.Store, error) {
	if cfg.DatabaseURL == "" {
		logger.Info("using in-memory ledger (MCJOB_DATABASE_URL not set)")
		return memory.New(), nil
	}
	st, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	logger.Info("using postgres ledger")
	return st, nil
}

// newSyncScheduler returns a scheduler exporting the ledger to every
// configured destination, or nil when exports are disabled.
func newSyncScheduler(ctx context.Context, st store.Store) *jobsync.Scheduler {
	if cfg.SyncInterval <= 0 {
		return nil
	}
	var dests []jobsync.Destination
	if cfg.SyncS3Bucket != "" {
		objects, err := specsource.NewS3Store(ctx, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			logger.Error("failed to create S3 sync destination", "err", err)
		} else {
			dests = append(dests, jobsync.NewS3Destination(objects, cfg.SyncS3Bucket, cfg.SyncS3Key))
			logger.Info("sync S3 destination enabled", "bucket", cfg.SyncS3Bucket, "key", cfg.SyncS3Key)
		}
	}
	if cfg.SyncGitRepo != "" {
		dests = append(dests, jobsync.NewGitDestination(cfg.SyncGitRepo, cfg.SyncGitFile, cfg.SyncGitBranch))
		logger.Info("sync git destination enabled", "repo", cfg.SyncGitRepo, "file", cfg.SyncGitFile)
	}
	if len(dests) == 0 {
		return nil
	}
	return jobsync.NewScheduler(st, dests, cfg.SyncInterval, logger)
}

// serveHTTP serves h on lis until ctx is done, then shuts down gracefully.
// onShutdown hooks run when shutdown starts, so long-lived responses such
// as event streams can end instead of holding it open.
func serveHTTP(ctx context.Context, lis net.Listener, h http.Handler, onShutdown ...func()) error {
	httpServer := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	for _, fn := range onShutdown {
		httpServer.RegisterOnShutdown(fn)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", lis.Addr().String())
		errCh <- httpServer.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "err", err)
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
