package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/pkg/config"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRunner records executions per summary.
type countingRunner struct {
	mu   sync.Mutex
	runs map[string]int
}

func newCountingRunner() *countingRunner {
	return &countingRunner{runs: map[string]int{}}
}

func (r *countingRunner) ExecuteSummary(_ context.Context, summaryID, _ string, _ map[string]any, _ bool) (*ent.Execution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[summaryID]++
	return nil, nil
}

func (r *countingRunner) count(summaryID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[summaryID]
}

func createCronSummary(ctx context.Context, t *testing.T, client *ent.Client, expr string, nextRun time.Time) *ent.Summary {
	t.Helper()
	sum, err := client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("test-user").
		SetName("scheduled summary").
		SetTriggerType(summary.TriggerTypeCron).
		SetCronExpression(expr).
		SetNextRunAt(nextRun).
		Save(ctx)
	require.NoError(t, err)
	return sum
}

func testSchedulerConfig() *config.SchedulerConfig {
	cfg := config.DefaultSchedulerConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	return cfg
}

func TestScheduler_RunsDueSummary(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	runner := newCountingRunner()

	sum := createCronSummary(ctx, t, db.Client, "0 * * * *", time.Now().Add(-time.Minute))

	sched := NewScheduler(db.Client, testSchedulerConfig(), runner)
	sched.Start(ctx)
	defer sched.Stop()

	require.Eventually(t, func() bool {
		return runner.count(sum.ID) >= 1
	}, 5*time.Second, 20*time.Millisecond)

	// Occurred exactly once: the claim advanced next_run_at into the future.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, runner.count(sum.ID))

	reloaded, err := db.Client.Summary.Get(ctx, sum.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.NextRunAt)
	assert.True(t, reloaded.NextRunAt.After(time.Now()))
}

func TestScheduler_IgnoresFutureSummaries(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	runner := newCountingRunner()

	sum := createCronSummary(ctx, t, db.Client, "0 * * * *", time.Now().Add(time.Hour))

	sched := NewScheduler(db.Client, testSchedulerConfig(), runner)
	sched.Start(ctx)
	defer sched.Stop()

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, runner.count(sum.ID))
}

func TestScheduler_IgnoresDeletedSummaries(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	runner := newCountingRunner()

	sum := createCronSummary(ctx, t, db.Client, "0 * * * *", time.Now().Add(-time.Minute))
	_, err := db.Client.Summary.UpdateOneID(sum.ID).SetDeletedAt(time.Now()).Save(ctx)
	require.NoError(t, err)

	sched := NewScheduler(db.Client, testSchedulerConfig(), runner)
	sched.Start(ctx)
	defer sched.Stop()

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, runner.count(sum.ID))
}

func TestScheduler_ClearsScheduleOnInvalidExpression(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	runner := newCountingRunner()

	// A row whose expression was corrupted after scheduling.
	sum := createCronSummary(ctx, t, db.Client, "not a cron expression", time.Now().Add(-time.Minute))

	sched := NewScheduler(db.Client, testSchedulerConfig(), runner)
	sched.Start(ctx)
	defer sched.Stop()

	require.Eventually(t, func() bool {
		reloaded, err := db.Client.Summary.Get(ctx, sum.ID)
		return err == nil && reloaded.NextRunAt == nil
	}, 5*time.Second, 20*time.Millisecond)

	assert.Zero(t, runner.count(sum.ID))
}
