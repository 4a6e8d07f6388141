package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/pkg/models"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSummaryForExecutions(ctx context.Context, t *testing.T, client *ent.Client) *ent.Summary {
	t.Helper()
	sum, err := client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("user-1").
		SetName("test summary").
		Save(ctx)
	require.NoError(t, err)
	return sum
}

func seedExecution(ctx context.Context, t *testing.T, client *ent.Client, summaryID string, status execution.Status, startedAt time.Time) *ent.Execution {
	t.Helper()
	create := client.Execution.Create().
		SetID(uuid.New().String()).
		SetSummaryID(summaryID).
		SetStatus(status).
		SetTriggeredBy("manual").
		SetStartedAt(startedAt)
	if status != execution.StatusRunning {
		create = create.SetCompletedAt(startedAt.Add(time.Second))
	}
	if status == execution.StatusCompleted {
		create = create.
			SetCachedData(map[string]any{"widget_x": map[string]any{"total": 1}}).
			SetDataHash("abc123")
	}
	exec, err := create.Save(ctx)
	require.NoError(t, err)
	return exec
}

func TestListExecutions_NewestFirstWithStatusFilter(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewExecutionService(db.Client)
	sum := seedSummaryForExecutions(ctx, t, db.Client)

	now := time.Now()
	seedExecution(ctx, t, db.Client, sum.ID, execution.StatusCompleted, now.Add(-3*time.Hour))
	seedExecution(ctx, t, db.Client, sum.ID, execution.StatusFailed, now.Add(-2*time.Hour))
	newest := seedExecution(ctx, t, db.Client, sum.ID, execution.StatusCompleted, now.Add(-time.Hour))

	result, err := svc.ListExecutions(ctx, sum.ID, models.ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
	require.NotEmpty(t, result.Executions)
	assert.Equal(t, newest.ID, result.Executions[0].ID)

	completed, err := svc.ListExecutions(ctx, sum.ID, models.ExecutionFilters{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 2, completed.TotalCount)

	_, err = svc.ListExecutions(ctx, sum.ID, models.ExecutionFilters{Status: "exploded"})
	assert.True(t, IsValidationError(err))
}

func TestListExecutions_SummaryProjectionOmitsSnapshot(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewExecutionService(db.Client)
	sum := seedSummaryForExecutions(ctx, t, db.Client)
	seedExecution(ctx, t, db.Client, sum.ID, execution.StatusCompleted, time.Now())

	result, err := svc.ListExecutions(ctx, sum.ID, models.ExecutionFilters{})
	require.NoError(t, err)

	require.Len(t, result.Executions, 1)
	item := result.Executions[0]
	assert.Equal(t, "completed", item.Status)
	assert.Equal(t, "manual", item.TriggeredBy)
	assert.NotNil(t, item.CompletedAt)
}

func TestLatestCompleted(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewExecutionService(db.Client)
	sum := seedSummaryForExecutions(ctx, t, db.Client)

	_, err := svc.LatestCompleted(ctx, sum.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	now := time.Now()
	seedExecution(ctx, t, db.Client, sum.ID, execution.StatusCompleted, now.Add(-2*time.Hour))
	latest := seedExecution(ctx, t, db.Client, sum.ID, execution.StatusCompleted, now.Add(-time.Hour))
	seedExecution(ctx, t, db.Client, sum.ID, execution.StatusFailed, now)

	got, err := svc.LatestCompleted(ctx, sum.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)
	assert.NotEmpty(t, got.CachedData)
}

func TestPruneOldExecutions(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewExecutionService(db.Client)
	sum := seedSummaryForExecutions(ctx, t, db.Client)

	old := time.Now().Add(-100 * 24 * time.Hour)

	// All older than the 90-day window.
	oldCompleted := seedExecution(ctx, t, db.Client, sum.ID, execution.StatusCompleted, old)
	oldFailed := seedExecution(ctx, t, db.Client, sum.ID, execution.StatusFailed, old.Add(time.Hour))
	oldRunning := seedExecution(ctx, t, db.Client, sum.ID, execution.StatusRunning, old.Add(2*time.Hour))
	recent := seedExecution(ctx, t, db.Client, sum.ID, execution.StatusFailed, time.Now().Add(-time.Hour))

	count, err := svc.PruneOldExecutions(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the old failed execution is prunable")

	remaining, err := db.Client.Execution.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{oldCompleted.ID, oldRunning.ID, recent.ID}, remaining)
	_ = oldFailed

	_, err = svc.PruneOldExecutions(ctx, 0)
	assert.Error(t, err)
}

func TestPruneOldExecutions_KeepsLatestCompletedPerSummary(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewExecutionService(db.Client)
	sumA := seedSummaryForExecutions(ctx, t, db.Client)
	sumB := seedSummaryForExecutions(ctx, t, db.Client)

	old := time.Now().Add(-200 * 24 * time.Hour)
	keptA := seedExecution(ctx, t, db.Client, sumA.ID, execution.StatusCompleted, old.Add(time.Hour))
	seedExecution(ctx, t, db.Client, sumA.ID, execution.StatusCompleted, old)
	keptB := seedExecution(ctx, t, db.Client, sumB.ID, execution.StatusCompleted, old)

	count, err := svc.PruneOldExecutions(ctx, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := db.Client.Execution.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{keptA.ID, keptB.ID}, remaining,
		"each summary keeps its newest completed snapshot even past retention")
}
