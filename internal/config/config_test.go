package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alfredjeanlab/mediaconvert/types"
)

var envVars = []string{
	"MCJOB_DEFAULTS", "MCJOB_S3_REGION", "MCJOB_S3_ENDPOINT",
	"MCJOB_LOG_LEVEL", "MCJOB_TOKEN_PREFIX", "MCJOB_WATCH_DEBOUNCE",
	"MCJOB_NATS_URL", "MCJOB_DATABASE_URL", "MCJOB_LISTEN_ADDR",
	"MCJOB_SERVER_URL", "MCJOB_SERVER_TOKEN", "MCJOB_SYNC_INTERVAL",
	"MCJOB_SYNC_S3_BUCKET", "MCJOB_SYNC_S3_KEY", "MCJOB_SYNC_GIT_REPO",
	"MCJOB_SYNC_GIT_FILE", "MCJOB_SYNC_GIT_BRANCH",
}

// clearAllEnv resets every MCJOB_ variable and points MCJOB_DEFAULTS at a
// file that does not exist.
func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
	t.Setenv("MCJOB_DEFAULTS", filepath.Join(t.TempDir(), "absent.toml"))
}

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "mcjob.toml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name         string
		env          map[string]string
		wantErr      bool
		wantRegion   string
		wantEndpoint string
		wantLevel    slog.Level
		wantDebounce time.Duration
		wantNATS     string
		wantDB       string
		wantListen   string
		wantServer   string
		wantToken    string
	}{
		{
			name:         "Defaults",
			env:          map[string]string{},
			wantRegion:   "us-east-1",
			wantLevel:    slog.LevelWarn,
			wantDebounce: 200 * time.Millisecond,
			wantListen:   ":8080",
			wantServer:   "http://localhost:8080",
		},
		{
			name: "Custom",
			env: map[string]string{
				"MCJOB_S3_REGION":      "eu-west-1",
				"MCJOB_S3_ENDPOINT":    "http://minio:9000",
				"MCJOB_LOG_LEVEL":      "debug",
				"MCJOB_WATCH_DEBOUNCE": "1s",
				"MCJOB_NATS_URL":       "nats://localhost:4222",
				"MCJOB_DATABASE_URL":   "postgres://mc@db/ledger",
				"MCJOB_LISTEN_ADDR":    "127.0.0.1:9000",
				"MCJOB_SERVER_URL":     "http://ledger:9000",
				"MCJOB_SERVER_TOKEN":   "s3cret",
			},
			wantRegion:   "eu-west-1",
			wantEndpoint: "http://minio:9000",
			wantLevel:    slog.LevelDebug,
			wantDebounce: time.Second,
			wantNATS:     "nats://localhost:4222",
			wantDB:       "postgres://mc@db/ledger",
			wantListen:   "127.0.0.1:9000",
			wantServer:   "http://ledger:9000",
			wantToken:    "s3cret",
		},
		{
			name:    "InvalidLogLevel",
			env:     map[string]string{"MCJOB_LOG_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "InvalidSyncInterval",
			env:     map[string]string{"MCJOB_SYNC_INTERVAL": "hourly"},
			wantErr: true,
		},
		{
			name:    "InvalidDebounce",
			env:     map[string]string{"MCJOB_WATCH_DEBOUNCE": "soon"},
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.S3Region != tc.wantRegion {
				t.Errorf("S3Region = %q, want %q", cfg.S3Region, tc.wantRegion)
			}
			if cfg.NATSURL != tc.wantNATS {
				t.Errorf("NATSURL = %q, want %q", cfg.NATSURL, tc.wantNATS)
			}
			if cfg.S3Endpoint != tc.wantEndpoint {
				t.Errorf("S3Endpoint = %q, want %q", cfg.S3Endpoint, tc.wantEndpoint)
			}
			if cfg.LogLevel != tc.wantLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tc.wantLevel)
			}
			if cfg.WatchDebounce != tc.wantDebounce {
				t.Errorf("WatchDebounce = %v, want %v", cfg.WatchDebounce, tc.wantDebounce)
			}
			if cfg.DatabaseURL != tc.wantDB || cfg.ListenAddr != tc.wantListen {
				t.Errorf("DatabaseURL, ListenAddr = %q, %q", cfg.DatabaseURL, cfg.ListenAddr)
			}
			if cfg.ServerURL != tc.wantServer || cfg.ServerToken != tc.wantToken {
				t.Errorf("ServerURL, ServerToken = %q, %q", cfg.ServerURL, cfg.ServerToken)
			}
		})
	}
}

func TestLoadSyncSettings(t *testing.T) {
	clearAllEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SyncInterval != 0 || cfg.SyncS3Key != "mcjob/jobs.jsonl" || cfg.SyncGitFile != "jobs.jsonl" || cfg.SyncGitBranch != "main" {
		t.Errorf("defaults = %v %q %q %q", cfg.SyncInterval, cfg.SyncS3Key, cfg.SyncGitFile, cfg.SyncGitBranch)
	}

	t.Setenv("MCJOB_SYNC_INTERVAL", "3m")
	t.Setenv("MCJOB_SYNC_S3_BUCKET", "ledger")
	t.Setenv("MCJOB_SYNC_GIT_REPO", "/srv/exports")
	cfg, err = Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SyncInterval != 3*time.Minute || cfg.SyncS3Bucket != "ledger" || cfg.SyncGitRepo != "/srv/exports" {
		t.Errorf("custom = %v %q %q", cfg.SyncInterval, cfg.SyncS3Bucket, cfg.SyncGitRepo)
	}
}

func TestLoadReadsDefaultsFile(t *testing.T) {
	clearAllEnv(t)
	t.Setenv("MCJOB_DEFAULTS", writeDefaults(t, `
[job]
role = "arn:aws:iam::111122223333:role/MediaConvert"
priority = 10

[tags]
team = "video"
`))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Job.Role != "arn:aws:iam::111122223333:role/MediaConvert" {
		t.Errorf("Role = %q", cfg.Defaults.Job.Role)
	}
	if cfg.Defaults.Job.Priority == nil || *cfg.Defaults.Job.Priority != 10 {
		t.Errorf("Priority = %v, want 10", cfg.Defaults.Job.Priority)
	}
	if cfg.Defaults.Tags["team"] != "video" {
		t.Errorf("Tags = %v", cfg.Defaults.Tags)
	}
}

func TestLoadDefaultsErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		wantIs  error
	}{
		{"UnknownKey", "[job]\ncolour = \"red\"\n", nil},
		{"BadEnum", "[job]\nstatusUpdateInterval = \"SECONDS_7\"\n", types.ErrUnrecognizedEnumValue},
		{"PriorityOverflow", "[job]\npriority = 9999999999\n", nil},
		{"Malformed", "[job\n", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadDefaults(writeDefaults(t, tc.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Errorf("error %v does not match %v", err, tc.wantIs)
			}
		})
	}
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	d, err := LoadDefaults(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Job.Role != "" || d.Tags != nil {
		t.Errorf("expected empty defaults, got %+v", d)
	}
}

func TestApply(t *testing.T) {
	prio := int32(7)
	d := Defaults{
		Job: JobDefaults{
			Role:                 "default-role",
			Queue:                "default-queue",
			Priority:             &prio,
			StatusUpdateInterval: "SECONDS_30",
		},
		Tags:         map[string]string{"env": "dev", "team": "video"},
		UserMetadata: map[string]string{"source": "mcjob"},
	}

	b := types.NewCreateJobRequestBuilder().WithRole("job-role")
	if err := b.AddTagsEntry("env", "prod"); err != nil {
		t.Fatal(err)
	}
	got, err := d.Apply(b.Build())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if role := got.Role().Or(""); role != "job-role" {
		t.Errorf("Role = %q, want the request's own value", role)
	}
	if q := got.Queue().Or(""); q != "default-queue" {
		t.Errorf("Queue = %q, want default-queue", q)
	}
	if p := got.Priority().Or(0); p != 7 {
		t.Errorf("Priority = %d, want 7", p)
	}
	if s := got.StatusUpdateInterval().Or(""); s != types.StatusUpdateIntervalSeconds30 {
		t.Errorf("StatusUpdateInterval = %q", s)
	}
	if got.BillingTagsSource().IsSet() {
		t.Error("BillingTagsSource should stay absent")
	}
	tags := got.Tags().Or(nil)
	if tags["env"] != "prod" || tags["team"] != "video" || len(tags) != 2 {
		t.Errorf("Tags = %v, want env=prod team=video", tags)
	}
	if md := got.UserMetadata().Or(nil); md["source"] != "mcjob" {
		t.Errorf("UserMetadata = %v", md)
	}
}

func TestApplyEmptyDefaultsIsIdentity(t *testing.T) {
	req := types.NewCreateJobRequestBuilder().WithQueue("q").Build()
	got, err := Defaults{}.Apply(req)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !got.Equal(req) {
		t.Errorf("Apply changed the request: %s", got)
	}
}

func TestEnvOrDefault(t *testing.T) {
	for _, tc := range []struct {
		name     string
		key      string
		envVal   string
		fallback string
		want     string
	}{
		{"EmptyUsesDefault", "TEST_ENVDEFAULT_EMPTY", "", "default-val", "default-val"},
		{"SetUsesEnv", "TEST_ENVDEFAULT_SET", "custom", "default-val", "custom"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envVal)
			got := envOrDefault(tc.key, tc.fallback)
			if got != tc.want {
				t.Errorf("envOrDefault(%q, %q) = %q, want %q", tc.key, tc.fallback, got, tc.want)
			}
		})
	}
}
