// Package config contains runtime configuration for the executor,
// scheduler, and retention loops. Values come from environment variables
// layered over built-in defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// ExecutorConfig controls summary execution resource limits.
type ExecutorConfig struct {
	// WidgetQueryTimeout is the per-widget query budget. One widget timing
	// out never aborts the rest of the summary.
	WidgetQueryTimeout time.Duration

	// MaxFacetRows caps the facet bulk-load per widget query. Hitting the
	// cap degrades to a partial facet set, it does not fail the widget.
	MaxFacetRows int

	// MaxWidgetLimit is the hard ceiling on a widget's result limit,
	// regardless of what the stored config requests.
	MaxWidgetLimit int

	// MaxSnapshotBytes is the total serialized size ceiling for an
	// execution's cached_data. Oversized snapshots are truncated, never
	// rejected.
	MaxSnapshotBytes int

	// TruncateFloor is the minimum data length a widget is truncated to.
	TruncateFloor int
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		WidgetQueryTimeout: 60 * time.Second,
		MaxFacetRows:       5000,
		MaxWidgetLimit:     1000,
		MaxSnapshotBytes:   10_000_000,
		TruncateFloor:      10,
	}
}

// SchedulerConfig controls the cron scheduler poll loop.
type SchedulerConfig struct {
	// WorkerCount is the number of concurrent summary executions the
	// scheduler may run at once.
	WorkerCount int

	// PollInterval is the base interval for checking due summaries.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// executions during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		WorkerCount:             4,
		PollInterval:            15 * time.Second,
		PollIntervalJitter:      5 * time.Second,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// RetentionConfig controls the execution-history cleanup loop.
type RetentionConfig struct {
	// ExecutionRetentionDays is how long terminal execution records are
	// kept. The latest completed execution per summary is always kept.
	ExecutionRetentionDays int

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ExecutionRetentionDays: 90,
		CleanupInterval:        6 * time.Hour,
	}
}

// Config aggregates all runtime configuration.
type Config struct {
	Executor  *ExecutorConfig
	Scheduler *SchedulerConfig
	Retention *RetentionConfig
}

// Load builds the full configuration from defaults plus env overrides.
func Load() *Config {
	cfg := &Config{
		Executor:  DefaultExecutorConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Retention: DefaultRetentionConfig(),
	}

	applyDuration("EXECUTOR_WIDGET_QUERY_TIMEOUT", &cfg.Executor.WidgetQueryTimeout)
	applyInt("EXECUTOR_MAX_FACET_ROWS", &cfg.Executor.MaxFacetRows)
	applyInt("EXECUTOR_MAX_WIDGET_LIMIT", &cfg.Executor.MaxWidgetLimit)
	applyInt("EXECUTOR_MAX_SNAPSHOT_BYTES", &cfg.Executor.MaxSnapshotBytes)

	applyInt("SCHEDULER_WORKER_COUNT", &cfg.Scheduler.WorkerCount)
	applyDuration("SCHEDULER_POLL_INTERVAL", &cfg.Scheduler.PollInterval)
	applyDuration("SCHEDULER_POLL_INTERVAL_JITTER", &cfg.Scheduler.PollIntervalJitter)
	applyDuration("SCHEDULER_GRACEFUL_SHUTDOWN_TIMEOUT", &cfg.Scheduler.GracefulShutdownTimeout)

	applyInt("RETENTION_EXECUTION_DAYS", &cfg.Retention.ExecutionRetentionDays)
	applyDuration("RETENTION_CLEANUP_INTERVAL", &cfg.Retention.CleanupInterval)

	return cfg
}

func applyInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func applyDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}
