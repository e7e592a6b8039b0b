package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

// execute runs the root command with args and no defaults file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MCJOB_DEFAULTS", filepath.Join(t.TempDir(), "missing.toml"))
	jsonOutput, noDefaults = false, false
	renderOut, validateWatch = "", false
	simulateRegion, serveAddr, serveRegion = "", "", ""
	listStatus, listQueue, listOrder, listNextToken, listMaxResults = "", "", "", "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSpec(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validSpec = `{
  "role": "arn:aws:iam::111122223333:role/MediaConvert",
  "queue": "Default",
  "settings": {"inputs": [{"fileInput": "s3://in/a.mp4"}]}
}`

func TestValidateCommand_Valid(t *testing.T) {
	out, err := execute(t, "validate", writeSpec(t, "job.json", validSpec))
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "valid") {
		t.Errorf("output = %q, want it to report valid", out)
	}
}

func TestValidateCommand_Problems(t *testing.T) {
	out, err := execute(t, "validate", writeSpec(t, "job.json", `{"role": "r", "priority": 99}`))
	if err == nil {
		t.Fatal("expected an error for an invalid spec")
	}
	if err.Error() != "2 problem(s)" {
		t.Errorf("error = %q, want %q", err, "2 problem(s)")
	}
	for _, want := range []string{"FIELD", "PROBLEM", "priority", "must be between -50 and 50, got 99", "settings", "is required"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateCommand_JSON(t *testing.T) {
	out, err := execute(t, "validate", "--json", writeSpec(t, "job.json", validSpec))
	if err != nil {
		t.Fatalf("validate --json: %v", err)
	}
	var got struct {
		Valid    bool `json:"valid"`
		Problems []struct {
			Field string `json:"field"`
		} `json:"problems"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !got.Valid || len(got.Problems) != 0 {
		t.Errorf("got %+v, want valid with no problems", got)
	}
}

func TestValidateCommand_WatchRejectsStdin(t *testing.T) {
	_, err := execute(t, "validate", "--watch", "-")
	if err == nil || !strings.Contains(err.Error(), "stdin") {
		t.Errorf("error = %v, want a stdin error", err)
	}
}

func TestValidateCommand_DecodeError(t *testing.T) {
	_, err := execute(t, "validate", writeSpec(t, "job.json", `{"priority": "high"}`))
	if err == nil || !strings.Contains(err.Error(), "priority") {
		t.Errorf("error = %v, want a decode error naming priority", err)
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", writeSpec(t, "job.yaml", "role: r\nqueue: Default\n"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"CreateJobRequest {", "Queue: Default", "Role: r", "Hash:", "ClientRequestToken:", "Valid:              false"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCommand_OutMustBeS3(t *testing.T) {
	_, err := execute(t, "render", "--out", "/tmp/x", writeSpec(t, "job.json", validSpec))
	if err == nil || !strings.Contains(err.Error(), "s3://") {
		t.Errorf("error = %v, want an s3 URL error", err)
	}
}

func TestDiffCommand(t *testing.T) {
	a := writeSpec(t, "a.json", validSpec)
	b := writeSpec(t, "b.json", strings.Replace(validSpec, `"Default"`, `"Fast"`, 1))

	out, err := execute(t, "diff", a, a)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(out, "equal") {
		t.Errorf("same file: output = %q, want equal", out)
	}

	out, err = execute(t, "diff", a, b)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	for _, want := range []string{"1 field(s) differ", "Queue", "- Default", "+ Fast"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEnumsCommand(t *testing.T) {
	out, err := execute(t, "enums", "SimulateReservedQueue")
	if err != nil {
		t.Fatalf("enums: %v", err)
	}
	if out != "DISABLED\nENABLED\n" {
		t.Errorf("output = %q", out)
	}

	if _, err := execute(t, "enums", "NoSuchEnum"); err == nil {
		t.Error("expected an error for an unknown enumeration")
	}

	out, err = execute(t, "enums", "JobStatus", "DONE")
	if err == nil {
		t.Error("expected an error for a non-member")
	}
	if !strings.Contains(out, `cannot create enum from "DONE"`) {
		t.Errorf("output = %q", out)
	}
}

func TestSimulateCommand(t *testing.T) {
	out, err := execute(t, "simulate", "--json", "--region", "eu-west-1", writeSpec(t, "job.json", validSpec))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var got struct {
		Job struct {
			Arn      string `json:"arn"`
			Status   string `json:"status"`
			Queue    string `json:"queue"`
			Role     string `json:"role"`
			Settings struct {
				Inputs []struct {
					FileInput string `json:"fileInput"`
				} `json:"inputs"`
			} `json:"settings"`
		} `json:"job"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	job := got.Job
	if job.Status != "SUBMITTED" {
		t.Errorf("status = %q, want SUBMITTED", job.Status)
	}
	if job.Queue != "arn:aws:mediaconvert:eu-west-1:111122223333:queues/Default" {
		t.Errorf("queue = %q", job.Queue)
	}
	if !strings.HasPrefix(job.Arn, "arn:aws:mediaconvert:eu-west-1:111122223333:jobs/") {
		t.Errorf("arn = %q", job.Arn)
	}
	if len(job.Settings.Inputs) != 1 || job.Settings.Inputs[0].FileInput != "s3://in/a.mp4" {
		t.Errorf("settings = %+v, want the request's inputs", job.Settings)
	}
}

func TestSimulateCommand_RejectsInvalidSpec(t *testing.T) {
	_, err := execute(t, "simulate", writeSpec(t, "job.json", `{"role": "r"}`))
	if err == nil || !strings.Contains(err.Error(), "settings: is required") {
		t.Errorf("error = %v, want a validation error", err)
	}
}

func TestNoDefaultsFlag(t *testing.T) {
	defaults := writeSpec(t, "mcjob.toml", "[job]\nqueue = \"Fast\"\n")
	spec := writeSpec(t, "job.json", `{"role": "r"}`)

	run := func(args ...string) string {
		t.Helper()
		jsonOutput, noDefaults, renderOut = false, false, ""
		t.Setenv("MCJOB_DEFAULTS", defaults)
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if out := run("render", spec); !strings.Contains(out, "Queue: Fast") {
		t.Errorf("defaults not applied:\n%s", out)
	}
	if out := run("render", "--no-defaults", spec); strings.Contains(out, "Queue:") {
		t.Errorf("--no-defaults still applied a queue:\n%s", out)
	}
}
