package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/mediaconvert/internal/specsource"
	"github.com/alfredjeanlab/mediaconvert/internal/ui"
	"github.com/alfredjeanlab/mediaconvert/types"
)

var validateWatch bool

var validateCmd = &cobra.Command{
	Use:     "validate <spec>",
	Short:   "Check a CreateJob spec against the model's constraints",
	GroupID: "spec",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := args[0]
		if !validateWatch {
			return validateOnce(cmd.Context(), cmd.OutOrStdout(), ref)
		}
		if ref == specsource.Stdin {
			return errors.New("--watch needs a file, not stdin")
		}
		if _, _, ok := specsource.ParseS3URL(ref); ok {
			return errors.New("--watch needs a local file, not an s3 URL")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchSpec(ctx, cmd.OutOrStdout(), ref, cfg.WatchDebounce)
	},
}

func init() {
	validateCmd.Flags().BoolVarP(&validateWatch, "watch", "w", false, "re-validate whenever the file changes")
}

// validationErrorOf unwraps a Validate result. It returns nil for a valid record.
func validationErrorOf(err error) *types.ValidationError {
	var ve *types.ValidationError
	if errors.As(err, &ve) && ve.HasErrors() {
		return ve
	}
	return nil
}

func validateOnce(ctx context.Context, w io.Writer, ref string) error {
	req, err := loadRequest(ctx, ref)
	if err != nil {
		return err
	}
	ve := validationErrorOf(req.Validate())
	if jsonOutput {
		return writeValidationJSON(w, ve)
	}
	writeValidationTable(w, ve)
	if ve != nil {
		return fmt.Errorf("%d problem(s)", len(ve.Errors))
	}
	return nil
}

func writeValidationJSON(w io.Writer, ve *types.ValidationError) error {
	problems := []types.FieldError{}
	if ve != nil {
		problems = ve.Errors
	}
	return writeJSON(w, struct {
		Valid    bool               `json:"valid"`
		Problems []types.FieldError `json:"problems"`
	}{Valid: ve == nil, Problems: problems})
}

func writeValidationTable(w io.Writer, ve *types.ValidationError) {
	if ve == nil {
		fmt.Fprintln(w, ui.RenderPass("✓"), "valid")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tPROBLEM")
	for _, fe := range ve.Errors {
		fmt.Fprintf(tw, "%s\t%s\n", fe.Field, fe.Message)
	}
	tw.Flush()
	fmt.Fprintln(w, ui.RenderFail("✗"), fmt.Sprintf("%d problem(s)", len(ve.Errors)))
}

// watchSpec validates ref, then again after each burst of writes to it,
// until ctx is done.
func watchSpec(ctx context.Context, w io.Writer, ref string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(ref)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	check := func() {
		if err := validateOnce(ctx, w, ref); err != nil {
			fmt.Fprintln(w, ui.RenderMuted(err.Error()))
		}
		fmt.Fprintln(w, ui.RenderMuted("watching "+ref+" (Ctrl+C to stop)"))
	}
	check()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("spec changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		case <-timer.C:
			check()
		}
	}
}
