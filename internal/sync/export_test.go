package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store/memory"
	"github.com/alfredjeanlab/mediaconvert/types"
)

func testJob(id string, created time.Time) types.Job {
	return types.NewJobBuilder().
		WithId(id).
		WithArn("arn:aws:mediaconvert:us-east-1:111122223333:jobs/" + id).
		WithStatus(types.JobStatusSubmitted).
		WithCreatedAt(created).
		WithRole("arn:aws:iam::111122223333:role/MediaConvert").
		Build()
}

func TestExportJSONL_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), memory.New(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (header only), got %d", len(lines))
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.Version != "1" || h.Type != "header" || h.JobCount != 0 {
		t.Fatalf("unexpected header: %+v", h)
	}
}

func TestExportJSONL_WithJobsAndTags(t *testing.T) {
	ctx := context.Background()
	ms := memory.New()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	// Created out of ID order to verify sorting.
	zzz := testJob("1-zzz", now)
	aaa := testJob("2-aaa", now.Add(time.Minute))
	for _, j := range []types.Job{zzz, aaa} {
		if err := ms.CreateJob(ctx, j); err != nil {
			t.Fatal(err)
		}
	}
	if err := ms.TagResource(ctx, zzz.Arn().Or(""), map[string]string{"env": "prod"}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportJSONL(ctx, ms, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.JobCount != 2 {
		t.Fatalf("header job_count = %d", h.JobCount)
	}

	var got []types.Job
	var tags []map[string]string
	for _, line := range lines[1:] {
		var rec struct {
			Type string            `json:"type"`
			Data map[string]any    `json:"data"`
			Tags map[string]string `json:"tags"`
		}
		dec := json.NewDecoder(strings.NewReader(line))
		dec.UseNumber()
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("unmarshal %s: %v", line, err)
		}
		if rec.Type != "job" {
			t.Fatalf("record type = %q", rec.Type)
		}
		job, err := types.DecodeJob(rec.Data)
		if err != nil {
			t.Fatalf("decode job: %v", err)
		}
		got = append(got, job)
		tags = append(tags, rec.Tags)
	}

	if !got[0].Equal(zzz) || !got[1].Equal(aaa) {
		t.Fatalf("jobs not exported in id order: %s, %s", got[0], got[1])
	}
	if !reflect.DeepEqual(tags[0], map[string]string{"env": "prod"}) || tags[1] != nil {
		t.Errorf("tags = %v", tags)
	}
}

func TestExportJSONL_Pages(t *testing.T) {
	ctx := context.Background()
	ms := memory.New()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	n := exportPageSize + 3
	for i := 0; i < n; i++ {
		id := time.Duration(i).String()
		if err := ms.CreateJob(ctx, testJob("job-"+id, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatal(err)
		}
	}

	jobs, err := listAllJobs(ctx, ms)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != n {
		t.Fatalf("listAllJobs returned %d jobs, want %d", len(jobs), n)
	}
	seen := map[string]bool{}
	for _, j := range jobs {
		seen[j.Id().Or("")] = true
	}
	if len(seen) != n {
		t.Errorf("duplicate jobs across pages: %d distinct of %d", len(seen), n)
	}
}

func nonEmptyLines(s string) []string {
	var result []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			result = append(result, line)
		}
	}
	return result
}
