package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
	"github.com/alfredjeanlab/mediaconvert/types"
)

// exportPageSize is how many jobs ExportJSONL reads from the store at a time.
const exportPageSize = 500

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version   string    `json:"version"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	JobCount  int       `json:"job_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string            `json:"type"`
	Data any               `json:"data"`
	Tags map[string]string `json:"tags,omitempty"`
}

// ExportJSONL writes every job in the ledger as JSONL to w. Jobs are sorted
// by ID and carry the tags on their ARN.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	jobs, err := listAllJobs(ctx, s)
	if err != nil {
		return err
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].Id().Or("") < jobs[j].Id().Or("")
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:   "1",
		Type:      "header",
		Timestamp: time.Now().UTC(),
		JobCount:  len(jobs),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, job := range jobs {
		id := job.Id().Or("")
		var tags map[string]string
		if arn, ok := job.Arn().Get(); ok {
			if tags, err = s.ListTags(ctx, arn); err != nil {
				return fmt.Errorf("list tags for %s: %w", id, err)
			}
		}
		if err := enc.Encode(record{Type: "job", Data: job, Tags: tags}); err != nil {
			return fmt.Errorf("encode job %s: %w", id, err)
		}
	}
	return nil
}

// listAllJobs pages through the whole ledger, oldest first.
func listAllJobs(ctx context.Context, s store.Store) ([]types.Job, error) {
	var all []types.Job
	filter := store.JobFilter{Limit: exportPageSize}
	for {
		page, err := s.ListJobs(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
		last := page[len(page)-1]
		filter.After = &store.Cursor{CreatedAt: last.CreatedAt().Or(time.Time{}), ID: last.Id().Or("")}
	}
}
