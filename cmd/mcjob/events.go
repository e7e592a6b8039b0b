package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/events"
	"github.com/alfredjeanlab/mediaconvert/internal/ui"
)

var (
	eventsCount int
	eventsTopic string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print job state changes published on MCJOB_NATS_URL",
	Long: `Subscribe to job state changes and print one line per event until
interrupted. Payloads that do not decode are reported and skipped.`,
	GroupID: "events",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.NATSURL == "" {
			return errors.New("MCJOB_NATS_URL is not set")
		}
		bus, err := events.Dial(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer bus.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tailEvents(ctx, cmd.OutOrStdout(), bus, eventsTopic, eventsCount)
	},
}

func init() {
	eventsCmd.Flags().IntVarP(&eventsCount, "count", "n", 0, "exit after this many events (0 means no limit)")
	eventsCmd.Flags().StringVar(&eventsTopic, "topic", events.TopicAll, "NATS subject to subscribe to")
}

// tailEvents prints changes from w until ctx is done or limit changes have
// been printed.
func tailEvents(ctx context.Context, out io.Writer, w events.Watcher, topic string, limit int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch, err := w.Watch(ctx, topic)
	if err != nil {
		return err
	}

	for seen := 0; limit <= 0 || seen < limit; {
		d, ok := <-ch
		if !ok {
			return nil
		}
		if d.Err != nil {
			logger.Warn("skipping event", "subject", d.Subject, "error", d.Err)
			continue
		}
		if jsonOutput {
			if err := writeJSON(out, d.Change); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(out, formatEvent(d.Change))
		}
		seen++
	}
	return nil
}

func formatEvent(ev events.JobStateChange) string {
	ts := time.UnixMilli(ev.Timestamp).UTC().Format(time.RFC3339)
	line := []string{ui.RenderMuted(ts), ui.RenderStatus(ev.Status), ev.JobID}
	if ev.Queue != "" {
		line = append(line, ev.Queue)
	}
	if ev.ErrorMessage != "" {
		line = append(line, fmt.Sprintf("(%d: %s)", ev.ErrorCode, ev.ErrorMessage))
	}
	return strings.Join(line, "  ")
}
