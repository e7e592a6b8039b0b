package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/alfredjeanlab/mediaconvert/types"
)

type Config struct {
	DefaultsPath  string        // MCJOB_DEFAULTS (default "mcjob.toml"; a missing file is ignored)
	S3Region      string        // MCJOB_S3_REGION (default "us-east-1")
	S3Endpoint    string        // MCJOB_S3_ENDPOINT (custom endpoint for MinIO)
	LogLevel      slog.Level    // MCJOB_LOG_LEVEL (default "warn")
	TokenPrefix   string        // MCJOB_TOKEN_PREFIX (prefix for simulated job ids)
	WatchDebounce time.Duration // MCJOB_WATCH_DEBOUNCE (default 200ms)
	NATSURL       string        // MCJOB_NATS_URL (job state changes are published here when set)
	DatabaseURL   string        // MCJOB_DATABASE_URL (postgres ledger for serve; in-memory when empty)
	ListenAddr    string        // MCJOB_LISTEN_ADDR (default ":8080")
	ServerURL     string        // MCJOB_SERVER_URL (default "http://localhost:8080")
	ServerToken   string        // MCJOB_SERVER_TOKEN (bearer token required by serve and sent by clients)

	// Ledger export settings, used by serve. S3 exports reuse MCJOB_S3_REGION
	// and MCJOB_S3_ENDPOINT.
	SyncInterval  time.Duration // MCJOB_SYNC_INTERVAL (default 0 = disabled)
	SyncS3Bucket  string        // MCJOB_SYNC_S3_BUCKET (enables S3 when set)
	SyncS3Key     string        // MCJOB_SYNC_S3_KEY (default "mcjob/jobs.jsonl")
	SyncGitRepo   string        // MCJOB_SYNC_GIT_REPO (enables git when set; path to clone)
	SyncGitFile   string        // MCJOB_SYNC_GIT_FILE (default "jobs.jsonl")
	SyncGitBranch string        // MCJOB_SYNC_GIT_BRANCH (default "main")

	Defaults Defaults
}

// Defaults fills fields a job spec leaves absent. It is read from the TOML
// file named by MCJOB_DEFAULTS.
type Defaults struct {
	Job          JobDefaults       `toml:"job"`
	Tags         map[string]string `toml:"tags"`
	UserMetadata map[string]string `toml:"userMetadata"`
}

type JobDefaults struct {
	Role                 string `toml:"role"`
	Queue                string `toml:"queue"`
	Priority             *int32 `toml:"priority"`
	StatusUpdateInterval string `toml:"statusUpdateInterval"`
	BillingTagsSource    string `toml:"billingTagsSource"`
}

func Load() (*Config, error) {
	c := &Config{
		DefaultsPath: envOrDefault("MCJOB_DEFAULTS", "mcjob.toml"),
		S3Region:     envOrDefault("MCJOB_S3_REGION", "us-east-1"),
		S3Endpoint:   os.Getenv("MCJOB_S3_ENDPOINT"),
		TokenPrefix:  os.Getenv("MCJOB_TOKEN_PREFIX"),
		NATSURL:      os.Getenv("MCJOB_NATS_URL"),
		DatabaseURL:  os.Getenv("MCJOB_DATABASE_URL"),
		ListenAddr:   envOrDefault("MCJOB_LISTEN_ADDR", ":8080"),
		ServerURL:    envOrDefault("MCJOB_SERVER_URL", "http://localhost:8080"),
		ServerToken:  os.Getenv("MCJOB_SERVER_TOKEN"),

		SyncS3Bucket:  os.Getenv("MCJOB_SYNC_S3_BUCKET"),
		SyncS3Key:     envOrDefault("MCJOB_SYNC_S3_KEY", "mcjob/jobs.jsonl"),
		SyncGitRepo:   os.Getenv("MCJOB_SYNC_GIT_REPO"),
		SyncGitFile:   envOrDefault("MCJOB_SYNC_GIT_FILE", "jobs.jsonl"),
		SyncGitBranch: envOrDefault("MCJOB_SYNC_GIT_BRANCH", "main"),
	}

	if err := c.LogLevel.UnmarshalText([]byte(envOrDefault("MCJOB_LOG_LEVEL", "warn"))); err != nil {
		return nil, fmt.Errorf("MCJOB_LOG_LEVEL: %w", err)
	}

	d, err := time.ParseDuration(envOrDefault("MCJOB_WATCH_DEBOUNCE", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("MCJOB_WATCH_DEBOUNCE: %w", err)
	}
	c.WatchDebounce = d

	if v := os.Getenv("MCJOB_SYNC_INTERVAL"); v != "" {
		if c.SyncInterval, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("MCJOB_SYNC_INTERVAL: %w", err)
		}
	}

	defaults, err := LoadDefaults(c.DefaultsPath)
	if err != nil {
		return nil, err
	}
	c.Defaults = defaults
	return c, nil
}

// LoadDefaults reads a defaults file. A missing file yields empty defaults.
// Unknown keys and malformed enumeration values are errors.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults
	md, err := toml.DecodeFile(path, &d)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults{}, nil
	}
	if err != nil {
		return Defaults{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Defaults{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if _, err := d.parseEnums(); err != nil {
		return Defaults{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

type parsedEnums struct {
	statusUpdateInterval types.StatusUpdateInterval
	billingTagsSource    types.BillingTagsSource
}

func (d Defaults) parseEnums() (parsedEnums, error) {
	var p parsedEnums
	var err error
	if d.Job.StatusUpdateInterval != "" {
		if p.statusUpdateInterval, err = types.ParseStatusUpdateInterval(d.Job.StatusUpdateInterval); err != nil {
			return p, err
		}
	}
	if d.Job.BillingTagsSource != "" {
		if p.billingTagsSource, err = types.ParseBillingTagsSource(d.Job.BillingTagsSource); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Apply returns req with every absent field that d covers filled in. Fields
// the request sets win, and so do tag and metadata keys it already has.
func (d Defaults) Apply(req types.CreateJobRequest) (types.CreateJobRequest, error) {
	enums, err := d.parseEnums()
	if err != nil {
		return req, err
	}

	b := req.ToBuilder()
	if !req.Role().IsSet() && d.Job.Role != "" {
		b.WithRole(d.Job.Role)
	}
	if !req.Queue().IsSet() && d.Job.Queue != "" {
		b.WithQueue(d.Job.Queue)
	}
	if !req.Priority().IsSet() && d.Job.Priority != nil {
		b.WithPriority(*d.Job.Priority)
	}
	if !req.StatusUpdateInterval().IsSet() && enums.statusUpdateInterval != "" {
		b.WithStatusUpdateInterval(enums.statusUpdateInterval)
	}
	if !req.BillingTagsSource().IsSet() && enums.billingTagsSource != "" {
		b.WithBillingTagsSource(enums.billingTagsSource)
	}
	for _, k := range sortedKeys(d.Tags) {
		if err := b.AddTagsEntry(k, d.Tags[k]); err != nil && !errors.Is(err, types.ErrDuplicateKey) {
			return req, err
		}
	}
	for _, k := range sortedKeys(d.UserMetadata) {
		if err := b.AddUserMetadataEntry(k, d.UserMetadata[k]); err != nil && !errors.Is(err, types.ErrDuplicateKey) {
			return req, err
		}
	}
	return b.Build(), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
