package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/pkg/config"
)

// ErrNoDueSummaries signals an empty poll; workers back off to the next
// poll interval.
var ErrNoDueSummaries = errors.New("no due summaries")

// Runner executes one summary. The summary executor satisfies it; the
// indirection keeps this package free of executor internals.
type Runner interface {
	ExecuteSummary(ctx context.Context, summaryID, triggeredBy string, triggerDetails map[string]any, force bool) (*ent.Execution, error)
}

// Scheduler polls for cron summaries whose next_run_at has passed and
// hands them to the runner. Multiple scheduler instances may run against
// the same database: the next_run_at advance happens under a row lock,
// so each occurrence fires exactly once.
type Scheduler struct {
	client   *ent.Client
	config   *config.SchedulerConfig
	runner   Runner
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewScheduler creates a scheduler with cfg.WorkerCount polling workers.
func NewScheduler(client *ent.Client, cfg *config.SchedulerConfig, runner Runner) *Scheduler {
	return &Scheduler{
		client: client,
		config: cfg,
		runner: runner,
		stopCh: make(chan struct{}),
	}
}

// Start spawns the polling workers. It is safe to call multiple times;
// subsequent calls are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	if s.started {
		slog.Warn("Scheduler already started, ignoring duplicate Start call")
		return
	}
	s.started = true

	slog.Info("Starting scheduler", "worker_count", s.config.WorkerCount)
	for i := 0; i < s.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("scheduler-worker-%d", i)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run(ctx, workerID)
		}()
	}
}

// Stop signals all workers to stop and waits for in-flight executions to
// finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping scheduler gracefully")
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

// run is the main polling loop for one worker.
func (s *Scheduler) run(ctx context.Context, workerID string) {
	log := slog.With("worker_id", workerID)
	log.Info("Scheduler worker started")

	for {
		select {
		case <-s.stopCh:
			log.Info("Scheduler worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, scheduler worker shutting down")
			return
		default:
			if err := s.pollAndRun(ctx, workerID); err != nil {
				if errors.Is(err, ErrNoDueSummaries) {
					s.sleep(s.pollInterval())
					continue
				}
				log.Error("Error running due summary", "error", err)
				s.sleep(time.Second)
			}
		}
	}
}

// pollAndRun claims the next due summary and executes it. The claim
// advances next_run_at before the execution starts, so a crash mid-run
// drops at most one occurrence rather than replaying it forever.
func (s *Scheduler) pollAndRun(ctx context.Context, workerID string) error {
	sum, due, err := s.claimDueSummary(ctx)
	if err != nil {
		return err
	}

	log := slog.With("summary_id", sum.ID, "worker_id", workerID)
	log.Info("Due summary claimed", "due_at", due)

	details := map[string]any{
		"cron_expression": *sum.CronExpression,
		"scheduled_for":   due.Format(time.RFC3339),
	}
	if _, err := s.runner.ExecuteSummary(ctx, sum.ID, "schedule", details, false); err != nil {
		return fmt.Errorf("scheduled execution of summary %s: %w", sum.ID, err)
	}
	return nil
}

// claimDueSummary locks the most overdue cron summary and advances its
// next_run_at to the following occurrence in the same transaction.
func (s *Scheduler) claimDueSummary(ctx context.Context) (*ent.Summary, time.Time, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	sum, err := tx.Summary.Query().
		Where(
			summary.TriggerTypeEQ(summary.TriggerTypeCron),
			summary.NextRunAtLTE(now),
			summary.DeletedAtIsNil(),
		).
		Order(ent.Asc(summary.FieldNextRunAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, time.Time{}, ErrNoDueSummaries
		}
		return nil, time.Time{}, fmt.Errorf("failed to query due summaries: %w", err)
	}

	if sum.CronExpression == nil {
		// Inconsistent row; clear the schedule so it stops matching polls.
		if err := sum.Update().ClearNextRunAt().Exec(ctx); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to clear schedule: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to commit claim: %w", err)
		}
		return nil, time.Time{}, ErrNoDueSummaries
	}

	due := now
	if sum.NextRunAt != nil {
		due = *sum.NextRunAt
	}

	next, err := NextRun(*sum.CronExpression, now)
	if err != nil {
		// Unparseable expression: clear the schedule rather than spin on it.
		slog.Error("Clearing schedule for summary with invalid cron expression",
			"summary_id", sum.ID, "error", err)
		if clearErr := sum.Update().ClearNextRunAt().Exec(ctx); clearErr != nil {
			return nil, time.Time{}, fmt.Errorf("failed to clear schedule: %w", clearErr)
		}
		if commitErr := tx.Commit(); commitErr != nil {
			return nil, time.Time{}, fmt.Errorf("failed to commit claim: %w", commitErr)
		}
		return nil, time.Time{}, ErrNoDueSummaries
	}

	sum, err = sum.Update().SetNextRunAt(next).Save(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to advance schedule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to commit claim: %w", err)
	}

	return sum, due, nil
}

// sleep waits for the given duration or until stop is signalled.
func (s *Scheduler) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (s *Scheduler) pollInterval() time.Duration {
	base := s.config.PollInterval
	jitter := s.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
