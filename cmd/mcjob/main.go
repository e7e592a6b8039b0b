// Command mcjob checks, renders, compares and simulates MediaConvert job
// specs built on package types. It can also run a local job ledger that
// speaks the service's REST API and talk to one.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/config"
	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/specsource"
	"github.com/alfredjeanlab/mediaconvert/internal/ui"
)

var (
	jsonOutput bool
	noDefaults bool

	cfg       *config.Config
	logger    *slog.Logger
	loader    *specsource.Loader
	s3Objects *lazyS3Store
)

var rootCmd = &cobra.Command{
	Use:           "mcjob <command>",
	Short:         "Work with MediaConvert job specs and a local job ledger",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
		s3Objects = &lazyS3Store{region: cfg.S3Region, endpoint: cfg.S3Endpoint}
		loader = &specsource.Loader{Stdin: cmd.InOrStdin(), Store: s3Objects}
		logger.Debug("config loaded", "defaults", cfg.DefaultsPath, "s3_region", cfg.S3Region)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noDefaults, "no-defaults", false, "do not apply the MCJOB_DEFAULTS file")

	rootCmd.AddGroup(
		&cobra.Group{ID: "spec", Title: "Job specs:"},
		&cobra.Group{ID: "model", Title: "Model:"},
		&cobra.Group{ID: "ledger", Title: "Ledger:"},
		&cobra.Group{ID: "events", Title: "Events:"},
	)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(enumsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(eventsCmd)

	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

// lazyS3Store connects to S3 on first use, so commands that never touch an
// s3:// reference need no AWS configuration.
type lazyS3Store struct {
	region, endpoint string

	once  sync.Once
	store *specsource.S3Store
	err   error
}

func (l *lazyS3Store) get(ctx context.Context) (*specsource.S3Store, error) {
	l.once.Do(func() {
		l.store, l.err = specsource.NewS3Store(ctx, l.region, l.endpoint)
	})
	return l.store, l.err
}

func (l *lazyS3Store) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	s, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return s.GetObject(ctx, bucket, key)
}

func (l *lazyS3Store) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	s, err := l.get(ctx)
	if err != nil {
		return err
	}
	return s.PutObject(ctx, bucket, key, data, contentType)
}

// newPublisher returns a NATS publisher when MCJOB_NATS_URL is set and a
// no-op one otherwise.
func newPublisher() (events.Publisher, error) {
	if cfg.NATSURL == "" {
		return events.Discard, nil
	}
	bus, err := events.Dial(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	return bus, nil
}

func main() {
	ui.Configure()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderFail("Error:"), err)
		os.Exit(1)
	}
}
