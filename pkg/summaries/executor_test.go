package summaries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/pkg/config"
	"github.com/muniscope/muniscope/pkg/models"
	"github.com/muniscope/muniscope/pkg/services"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner returns canned widget results and can simulate slow queries.
type stubRunner struct {
	mu      sync.Mutex
	results map[string]*models.WidgetResult
	delay   time.Duration
	calls   int
}

func (r *stubRunner) RunWidgetQuery(_ context.Context, w *ent.Widget) *models.WidgetResult {
	r.mu.Lock()
	r.calls++
	result := r.results[w.ID]
	r.mu.Unlock()

	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if result == nil {
		result = &models.WidgetResult{
			Data:  []map[string]any{{"name": "Stadt"}},
			Total: 1,
		}
	}
	return result
}

func (r *stubRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// stubChecker returns a fixed relevance verdict or error.
type stubChecker struct {
	result models.RelevanceResult
	err    error
	called bool
}

func (c *stubChecker) Check(_ context.Context, _ models.SummaryContext, _, _ map[string]any, _ float64) (models.RelevanceResult, error) {
	c.called = true
	return c.result, c.err
}

type executorFixture struct {
	client   *ent.Client
	executor *Executor
	runner   *stubRunner
	checker  *stubChecker
	summary  *ent.Summary
}

func newExecutorFixture(t *testing.T) *executorFixture {
	ctx := context.Background()
	db := testdb.NewTestClient(t)

	runner := &stubRunner{results: map[string]*models.WidgetResult{}}
	checker := &stubChecker{}

	executor := NewExecutor(db.Client, config.DefaultExecutorConfig(), checker, nil)
	executor.runner = runner

	sum := createTestSummary(ctx, t, db.Client)
	createTestWidget(ctx, t, db.Client, sum.ID, map[string]any{"entity_type": "municipality"})

	return &executorFixture{
		client:   db.Client,
		executor: executor,
		runner:   runner,
		checker:  checker,
		summary:  sum,
	}
}

func (f *executorFixture) reloadSummary(t *testing.T) *ent.Summary {
	sum, err := f.client.Summary.Get(context.Background(), f.summary.ID)
	require.NoError(t, err)
	return sum
}

func TestExecuteSummary_FirstRun(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	exec, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.Equal(t, execution.StatusCompleted, exec.Status)
	assert.False(t, exec.HasChanges, "first run has no baseline to compare against")
	require.NotNil(t, exec.DataHash)
	assert.NotEmpty(t, exec.CachedData)
	require.NotNil(t, exec.DurationMs)
	require.NotNil(t, exec.CompletedAt)

	sum := f.reloadSummary(t)
	assert.Equal(t, 1, sum.ExecutionCount)
	require.NotNil(t, sum.LastDataHash)
	assert.Equal(t, *exec.DataHash, *sum.LastDataHash)
	assert.False(t, sum.LastExecutedAt.IsZero())
}

func TestExecuteSummary_UnchangedRerun(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	first, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	second, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.Equal(t, execution.StatusCompleted, second.Status)
	assert.False(t, second.HasChanges)
	assert.Equal(t, *first.DataHash, *second.DataHash)

	sum := f.reloadSummary(t)
	assert.Equal(t, 2, sum.ExecutionCount)
}

func TestExecuteSummary_DetectsChanges(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	_, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	f.runner.results[widgets[0].ID] = &models.WidgetResult{
		Data:  []map[string]any{{"name": "Neustadt"}},
		Total: 1,
	}

	second, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.True(t, second.HasChanges)
}

func TestExecuteSummary_VolatileFieldsDoNotCountAsChanges(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	w := widgets[0]

	f.runner.results[w.ID] = &models.WidgetResult{
		Data:        []map[string]any{{"name": "Stadt"}},
		Total:       1,
		QueryTimeMs: 12,
	}
	_, err = f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	f.runner.results[w.ID] = &models.WidgetResult{
		Data:        []map[string]any{{"name": "Stadt"}},
		Total:       1,
		QueryTimeMs: 8700,
	}
	second, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.False(t, second.HasChanges)
}

func TestExecuteSummary_SkipsWhenAlreadyRunning(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	// Simulate another pod's in-flight execution.
	_, err := f.client.Execution.Create().
		SetID(uuid.New().String()).
		SetSummaryID(f.summary.ID).
		SetStatus(execution.StatusRunning).
		SetTriggeredBy("schedule").
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	exec, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.Equal(t, execution.StatusSkipped, exec.Status)
	require.NotNil(t, exec.SkipReason)
	assert.Equal(t, SkipReasonAlreadyRunning, *exec.SkipReason)
	assert.Zero(t, f.runner.callCount(), "no widget queries for a skipped execution")

	sum := f.reloadSummary(t)
	assert.Zero(t, sum.ExecutionCount)
}

func TestExecuteSummary_ConcurrentCallsProduceOneCompletion(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)
	f.runner.delay = 300 * time.Millisecond

	const attempts = 4
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	completed, err := f.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	skipped, err := f.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusSkipped)).
		Count(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, completed, "exactly one caller may win the gate")
	assert.Equal(t, attempts-1, skipped)

	sum := f.reloadSummary(t)
	assert.Equal(t, 1, sum.ExecutionCount)
}

func TestExecuteSummary_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	_, err := f.executor.ExecuteSummary(ctx, uuid.New().String(), "manual", nil, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestExecuteSummary_RelevanceSkipDiscardsData(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	_, err := f.client.Summary.UpdateOneID(f.summary.ID).
		SetRelevanceCheckEnabled(true).
		Save(ctx)
	require.NoError(t, err)

	first, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)
	assert.False(t, f.checker.called, "first run has no changes to judge")

	// Change the data and make the checker reject the change.
	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	f.runner.results[widgets[0].ID] = &models.WidgetResult{
		Data:  []map[string]any{{"name": "Neustadt"}},
		Total: 1,
	}
	f.checker.result = models.RelevanceResult{Score: 0.1, Reason: "cosmetic change", ShouldUpdate: false}

	second, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.True(t, f.checker.called)
	assert.Equal(t, execution.StatusSkipped, second.Status)
	require.NotNil(t, second.SkipReason)
	assert.Equal(t, SkipReasonNotRelevant, *second.SkipReason)
	assert.Empty(t, second.CachedData, "rejected data must not be cached")
	require.NotNil(t, second.RelevanceScore)
	assert.InDelta(t, 0.1, *second.RelevanceScore, 1e-9)

	// The baseline hash is untouched, so the next run re-compares against
	// the last published data.
	sum := f.reloadSummary(t)
	assert.Equal(t, *first.DataHash, *sum.LastDataHash)
	assert.Equal(t, 1, sum.ExecutionCount)
}

func TestExecuteSummary_RelevanceCheckerFailureFailsOpen(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	_, err := f.client.Summary.UpdateOneID(f.summary.ID).
		SetRelevanceCheckEnabled(true).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	f.runner.results[widgets[0].ID] = &models.WidgetResult{
		Data:  []map[string]any{{"name": "Neustadt"}},
		Total: 1,
	}
	f.checker.err = errors.New("sidecar unavailable")

	second, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.Equal(t, execution.StatusCompleted, second.Status, "checker failure must not drop changed data")
	assert.True(t, second.HasChanges)
}

func TestExecuteSummary_ForceBypassesRelevance(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	_, err := f.client.Summary.UpdateOneID(f.summary.ID).
		SetRelevanceCheckEnabled(true).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	f.runner.results[widgets[0].ID] = &models.WidgetResult{
		Data:  []map[string]any{{"name": "Neustadt"}},
		Total: 1,
	}
	f.checker.result = models.RelevanceResult{Score: 0, Reason: "would reject", ShouldUpdate: false}

	second, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, true)
	require.NoError(t, err)

	assert.Equal(t, execution.StatusCompleted, second.Status)
	assert.False(t, f.checker.called, "force skips the relevance stage entirely")
}

func TestExecuteSummary_FailureIsRecorded(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	// A result that cannot be serialized forces an orchestration failure.
	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	f.runner.results[widgets[0].ID] = &models.WidgetResult{
		Data: []map[string]any{{"bad": make(chan int)}},
	}

	_, err = f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.Error(t, err)

	failed, err := f.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusFailed)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "execution failed")
	require.NotNil(t, failed.CompletedAt)

	sum := f.reloadSummary(t)
	assert.Zero(t, sum.ExecutionCount, "failed runs do not advance summary statistics")
	assert.Nil(t, sum.LastDataHash)
}

func TestExecuteSummary_WidgetErrorStillCompletes(t *testing.T) {
	ctx := context.Background()
	f := newExecutorFixture(t)

	widgets, err := f.client.Widget.Query().All(ctx)
	require.NoError(t, err)
	f.runner.results[widgets[0].ID] = &models.WidgetResult{
		Data:    []map[string]any{},
		Error:   "query timed out after 1m0s",
		Timeout: true,
	}

	exec, err := f.executor.ExecuteSummary(ctx, f.summary.ID, "manual", nil, false)
	require.NoError(t, err)

	// A failed widget is data, not an execution failure.
	assert.Equal(t, execution.StatusCompleted, exec.Status)
	widgetKey := widgetKeyPrefix + widgets[0].ID
	entry, ok := exec.CachedData[widgetKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, entry["error"], "timed out")
}

func TestExecuteSummary_TruncatesOversizedSnapshot(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)

	cfg := config.DefaultExecutorConfig()
	cfg.MaxSnapshotBytes = 2000

	runner := &stubRunner{results: map[string]*models.WidgetResult{}}
	executor := NewExecutor(db.Client, cfg, nil, nil)
	executor.runner = runner

	sum := createTestSummary(ctx, t, db.Client)
	w := createTestWidget(ctx, t, db.Client, sum.ID, map[string]any{"entity_type": "municipality"})

	rows := make([]map[string]any, 200)
	for i := range rows {
		rows[i] = map[string]any{"name": fmt.Sprintf("municipality-%03d", i)}
	}
	runner.results[w.ID] = &models.WidgetResult{Data: rows, Total: len(rows)}

	exec, err := executor.ExecuteSummary(ctx, sum.ID, "manual", nil, false)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, exec.Status)

	entry, ok := exec.CachedData[widgetKeyPrefix+w.ID].(map[string]any)
	require.True(t, ok)
	data, ok := entry["data"].([]any)
	require.True(t, ok)
	assert.Less(t, len(data), 200)
	assert.Equal(t, true, entry["truncated"])
	assert.EqualValues(t, 200, entry["truncated_from"])
}

func TestExecuteSummary_WidgetTimeoutIsIsolated(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)

	// Real query engine with a timeout no query can meet.
	cfg := config.DefaultExecutorConfig()
	cfg.WidgetQueryTimeout = time.Nanosecond
	executor := NewExecutor(db.Client, cfg, nil, nil)

	sum := createTestSummary(ctx, t, db.Client)
	w := createTestWidget(ctx, t, db.Client, sum.ID, map[string]any{"entity_type": "municipality"})

	exec, err := executor.ExecuteSummary(ctx, sum.ID, "manual", nil, false)
	require.NoError(t, err)

	assert.Equal(t, execution.StatusCompleted, exec.Status)
	entry, ok := exec.CachedData[widgetKeyPrefix+w.ID].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, entry["timeout"])
	assert.Contains(t, entry["error"], "timed out")
}
