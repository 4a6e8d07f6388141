package summaries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
	"github.com/muniscope/muniscope/pkg/config"
	"github.com/muniscope/muniscope/pkg/models"
	"github.com/muniscope/muniscope/pkg/services"
)

// Claim-path sentinels. Neither escapes ExecuteSummary; the caller sees
// a skipped execution instead.
var (
	errSummaryLocked  = errors.New("summary row is locked")
	errAlreadyRunning = errors.New("execution already running")
)

// Executor runs summary executions end to end: concurrency gate, widget
// queries, change detection, size guard, and the atomic completion update.
// It is safe to invoke concurrently for different summary ids and
// self-serializes for the same id.
type Executor struct {
	client    *ent.Client
	cfg       *config.ExecutorConfig
	runner    WidgetRunner
	relevance RelevanceChecker
	expander  ExpansionAnalyzer
}

// NewExecutor creates a summary executor. relevance and expander may be
// nil, which disables the relevance stage and auto-expand respectively.
func NewExecutor(client *ent.Client, cfg *config.ExecutorConfig, checker RelevanceChecker, expander ExpansionAnalyzer) *Executor {
	return &Executor{
		client:    client,
		cfg:       cfg,
		runner:    NewQueryEngine(client, cfg),
		relevance: checker,
		expander:  expander,
	}
}

// ExecuteSummary runs one execution attempt for a summary.
//
// Concurrency conflicts resolve to a skipped execution, never an error.
// A summary that does not exist yields services.ErrNotFound. Any error
// escaping the orchestration is recorded on the execution row before it
// propagates, so a durable audit trail exists even for failures.
func (e *Executor) ExecuteSummary(ctx context.Context, summaryID, triggeredBy string, triggerDetails map[string]any, force bool) (*ent.Execution, error) {
	logger := slog.With("summary_id", summaryID, "triggered_by", triggeredBy)

	// 1. Courtesy skip when an execution is already in flight. The skipped
	// record is traceability, not a queue: the caller gets no pending promise.
	running, err := e.client.Execution.Query().
		Where(
			execution.SummaryIDEQ(summaryID),
			execution.StatusEQ(execution.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for running execution: %w", err)
	}
	if running {
		logger.Info("Skipping execution, another is already running")
		return e.createSkipped(ctx, summaryID, triggeredBy, triggerDetails, SkipReasonAlreadyRunning)
	}

	// 2. Claim the summary row and flush the running execution record.
	sum, exec, err := e.claim(ctx, summaryID, triggeredBy, triggerDetails)
	if errors.Is(err, errSummaryLocked) {
		logger.Info("Skipping execution, summary row is locked")
		return e.createSkipped(ctx, summaryID, triggeredBy, triggerDetails, SkipReasonLocked)
	}
	if errors.Is(err, errAlreadyRunning) {
		logger.Info("Skipping execution, another was committed while claiming")
		return e.createSkipped(ctx, summaryID, triggeredBy, triggerDetails, SkipReasonAlreadyRunning)
	}
	if err != nil {
		return nil, err
	}

	logger = logger.With("execution_id", exec.ID)
	logger.Info("Execution started")

	// 3. Run the widgets and finish the execution. Orchestration errors are
	// recorded on the execution row before propagating to the caller.
	finished, err := e.run(ctx, sum, exec, force, logger)
	if err != nil {
		e.markFailed(exec, err, logger)
		return nil, err
	}
	return finished, nil
}

// claim acquires the summary row with a non-blocking lock and creates the
// running execution record. The lock is only held for this short
// transaction: once the running execution row is committed, it is the gate
// that later callers observe.
func (e *Executor) claim(ctx context.Context, summaryID, triggeredBy string, triggerDetails map[string]any) (*ent.Summary, *ent.Execution, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED: a locked row reads as not-found.
	sum, err := tx.Summary.Query().
		Where(
			summary.IDEQ(summaryID),
			summary.DeletedAtIsNil(),
		).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("failed to lock summary: %w", err)
		}
		// Distinguish "locked by someone else" from "does not exist".
		exists, exErr := e.client.Summary.Query().
			Where(summary.IDEQ(summaryID), summary.DeletedAtIsNil()).
			Exist(ctx)
		if exErr != nil {
			return nil, nil, fmt.Errorf("failed to check summary existence: %w", exErr)
		}
		if !exists {
			return nil, nil, services.ErrNotFound
		}
		return nil, nil, errSummaryLocked
	}

	// Re-check under the lock: a competing caller may have committed its
	// running execution between the fast pre-check and this claim. The row
	// lock serializes claims, so this check is race-free.
	running, err := tx.Execution.Query().
		Where(
			execution.SummaryIDEQ(summaryID),
			execution.StatusEQ(execution.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to re-check running executions: %w", err)
	}
	if running {
		return nil, nil, errAlreadyRunning
	}

	create := tx.Execution.Create().
		SetID(uuid.New().String()).
		SetSummaryID(summaryID).
		SetStatus(execution.StatusRunning).
		SetTriggeredBy(triggeredBy).
		SetStartedAt(time.Now())
	if len(triggerDetails) > 0 {
		create = create.SetTriggerDetails(triggerDetails)
	}
	exec, err := create.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create execution record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return sum, exec, nil
}

// run executes all widgets, applies change detection and the size guard,
// and persists the outcome. Individual widget failures are already folded
// into their result slots by the runner; errors returned here are
// orchestration failures that escalate to a failed execution.
func (e *Executor) run(ctx context.Context, sum *ent.Summary, exec *ent.Execution, force bool, logger *slog.Logger) (*ent.Execution, error) {
	widgets, err := e.client.Widget.Query().
		Where(widget.SummaryIDEQ(sum.ID)).
		Order(ent.Asc(widget.FieldDisplayOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load widgets: %w", err)
	}

	snapshot := make(map[string]map[string]any, len(widgets))
	for _, w := range widgets {
		result := e.runner.RunWidgetQuery(ctx, w)
		row, err := resultToMap(result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode widget result: %w", err)
		}
		snapshot[widgetKeyPrefix+w.ID] = row
	}

	newHash, err := computeDataHash(snapshot)
	if err != nil {
		return nil, err
	}

	// First run: there is nothing to compare against, so "change" is not a
	// meaningful concept yet. The data is still cached.
	hasChanges := sum.LastDataHash != nil && *sum.LastDataHash != newHash

	var relevanceResult *models.RelevanceResult
	if hasChanges && sum.RelevanceCheckEnabled && !force && e.relevance != nil {
		res, err := e.checkRelevance(ctx, sum, snapshot, logger)
		if err != nil {
			// Relevance is advisory; on checker failure the changed data is
			// persisted rather than silently dropped.
			logger.Warn("Relevance check failed, treating change as relevant", "error", err)
		} else {
			relevanceResult = &res
			if !res.ShouldUpdate {
				logger.Info("Change judged not relevant, skipping update",
					"score", res.Score, "reason", res.Reason)
				return e.markSkippedNotRelevant(exec, res)
			}
		}
	}

	snapshot = truncateSnapshot(snapshot, e.cfg.MaxSnapshotBytes, e.cfg.TruncateFloor)

	var suggestions []models.ExpansionSuggestion
	if sum.AutoExpandEnabled && hasChanges && e.expander != nil {
		suggestions, err = e.expander.AnalyzeForExpansion(ctx, sum, snapshot)
		if err != nil {
			logger.Warn("Auto-expand analysis failed", "error", err)
			suggestions = nil
		}
	}

	finished, err := e.complete(ctx, sum, exec, snapshot, newHash, hasChanges, relevanceResult, suggestions)
	if err != nil {
		return nil, err
	}

	logger.Info("Execution completed",
		"widgets", len(widgets),
		"has_changes", hasChanges,
		"duration_ms", durationMs(exec.StartedAt))
	return finished, nil
}

// checkRelevance loads the prior snapshot and delegates to the relevance
// collaborator with the summary's semantic context.
func (e *Executor) checkRelevance(ctx context.Context, sum *ent.Summary, snapshot map[string]map[string]any, logger *slog.Logger) (models.RelevanceResult, error) {
	var oldData map[string]any
	prev, err := e.client.Execution.Query().
		Where(
			execution.SummaryIDEQ(sum.ID),
			execution.StatusEQ(execution.StatusCompleted),
		).
		Order(ent.Desc(execution.FieldStartedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return models.RelevanceResult{}, fmt.Errorf("failed to load prior snapshot: %w", err)
	}
	if prev != nil {
		oldData = prev.CachedData
	}

	summaryCtx := models.SummaryContext{
		SummaryID: sum.ID,
		Name:      sum.Name,
		Prompt:    sum.Prompt,
		Theme:     sum.Theme,
	}

	newData := make(map[string]any, len(snapshot))
	for k, v := range snapshot {
		newData[k] = v
	}

	return e.relevance.Check(ctx, summaryCtx, oldData, newData, sum.RelevanceThreshold)
}

// complete persists the snapshot and updates summary statistics in one
// transaction. The summary update is a single atomic increment-style
// statement, kept race-safe even though the gate prevents same-summary
// races.
func (e *Executor) complete(ctx context.Context, sum *ent.Summary, exec *ent.Execution, snapshot map[string]map[string]any, newHash string, hasChanges bool, rel *models.RelevanceResult, suggestions []models.ExpansionSuggestion) (*ent.Execution, error) {
	now := time.Now()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start completion transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.Execution.UpdateOneID(exec.ID).
		SetStatus(execution.StatusCompleted).
		SetCachedData(snapshotToAny(snapshot)).
		SetDataHash(newHash).
		SetHasChanges(hasChanges).
		SetCompletedAt(now).
		SetDurationMs(durationMs(exec.StartedAt))

	if rel != nil {
		update = update.
			SetRelevanceScore(rel.Score).
			SetRelevanceReason(rel.Reason)
	}
	if len(suggestions) > 0 {
		update = update.SetExpansionSuggestions(suggestionsToAny(suggestions))
	}

	finished, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist execution result: %w", err)
	}

	err = tx.Summary.UpdateOneID(sum.ID).
		AddExecutionCount(1).
		SetLastExecutedAt(now).
		SetLastDataHash(newHash).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update summary statistics: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit execution result: %w", err)
	}

	return finished, nil
}

// markSkippedNotRelevant terminates the execution as skipped after a
// negative relevance verdict. The freshly computed data is discarded and
// last_data_hash is not advanced, so the next run re-compares against the
// same baseline.
func (e *Executor) markSkippedNotRelevant(exec *ent.Execution, rel models.RelevanceResult) (*ent.Execution, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	finished, err := e.client.Execution.UpdateOneID(exec.ID).
		SetStatus(execution.StatusSkipped).
		SetSkipReason(SkipReasonNotRelevant).
		SetRelevanceScore(rel.Score).
		SetRelevanceReason(rel.Reason).
		SetCompletedAt(time.Now()).
		SetDurationMs(durationMs(exec.StartedAt)).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark execution skipped: %w", err)
	}
	return finished, nil
}

// createSkipped persists a courtesy skipped record for a concurrency
// conflict and returns it immediately.
func (e *Executor) createSkipped(ctx context.Context, summaryID, triggeredBy string, triggerDetails map[string]any, reason string) (*ent.Execution, error) {
	now := time.Now()
	create := e.client.Execution.Create().
		SetID(uuid.New().String()).
		SetSummaryID(summaryID).
		SetStatus(execution.StatusSkipped).
		SetTriggeredBy(triggeredBy).
		SetSkipReason(reason).
		SetStartedAt(now).
		SetCompletedAt(now).
		SetDurationMs(0)
	if len(triggerDetails) > 0 {
		create = create.SetTriggerDetails(triggerDetails)
	}
	exec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create skipped execution: %w", err)
	}
	return exec, nil
}

// markFailed records a failure on the execution row using a background
// context: the request context may already be cancelled, and a failure
// must never be silently lost. If even this write fails, it is logged.
func (e *Executor) markFailed(exec *ent.Execution, execErr error, logger *slog.Logger) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := e.client.Execution.UpdateOneID(exec.ID).
		SetStatus(execution.StatusFailed).
		SetErrorMessage(classifyError(execErr)).
		SetCompletedAt(time.Now()).
		SetDurationMs(durationMs(exec.StartedAt)).
		Exec(writeCtx)
	if err != nil {
		logger.Error("Failed to record execution failure",
			"execution_error", execErr, "write_error", err)
		return
	}
	logger.Error("Execution failed", "error", execErr)
}

// classifyError prefixes the stored error message so operators can tell
// bad input from infrastructure failures in logs.
func classifyError(err error) string {
	switch {
	case services.IsValidationError(err):
		return fmt.Sprintf("validation error: %v", err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("execution timed out: %v", err)
	default:
		return fmt.Sprintf("execution failed: %v", err)
	}
}

// resultToMap converts a widget result into its stored JSON object form.
func resultToMap(result *models.WidgetResult) (map[string]any, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func snapshotToAny(snapshot map[string]map[string]any) map[string]any {
	out := make(map[string]any, len(snapshot))
	for k, v := range snapshot {
		out[k] = v
	}
	return out
}

func suggestionsToAny(suggestions []models.ExpansionSuggestion) []map[string]any {
	out := make([]map[string]any, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, map[string]any{
			"title":        s.Title,
			"reason":       s.Reason,
			"query_config": s.QueryConfig,
		})
	}
	return out
}

func durationMs(start time.Time) int {
	return int(time.Since(start).Milliseconds())
}
