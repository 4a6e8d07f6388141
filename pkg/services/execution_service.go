package services

import (
	"context"
	"fmt"
	"time"

	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/pkg/models"
)

// ExecutionService provides read access to the per-summary execution audit
// log, plus retention pruning. It never mutates non-terminal executions;
// those are exclusively owned by the executor.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// GetExecution retrieves a single execution by id.
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// ListExecutions lists a summary's executions, newest first.
func (s *ExecutionService) ListExecutions(ctx context.Context, summaryID string, filters models.ExecutionFilters) (*models.ExecutionListResponse, error) {
	query := s.client.Execution.Query().
		Where(execution.SummaryIDEQ(summaryID))

	if filters.Status != "" {
		status := execution.Status(filters.Status)
		if err := execution.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "must be running, completed, failed, or skipped")
		}
		query = query.Where(execution.StatusEQ(status))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	executions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(execution.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	items := make([]models.ExecutionSummary, len(executions))
	for i, exec := range executions {
		items[i] = toExecutionSummary(exec)
	}

	return &models.ExecutionListResponse{
		Executions: items,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// LatestCompleted returns the most recent completed execution for a summary,
// or ErrNotFound if the summary has never completed.
func (s *ExecutionService) LatestCompleted(ctx context.Context, summaryID string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Query().
		Where(
			execution.SummaryIDEQ(summaryID),
			execution.StatusEQ(execution.StatusCompleted),
		).
		Order(ent.Desc(execution.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query latest completed execution: %w", err)
	}
	return exec, nil
}

// PruneOldExecutions deletes terminal executions older than the retention
// window, keeping the latest completed execution of each summary so a cached
// snapshot always survives.
func (s *ExecutionService) PruneOldExecutions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	pruneCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Latest completed execution per summary is exempt from pruning.
	keep, err := s.client.Execution.Query().
		Where(execution.StatusEQ(execution.StatusCompleted)).
		Order(ent.Desc(execution.FieldStartedAt)).
		All(pruneCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to query latest executions: %w", err)
	}
	latestBySummary := make(map[string]string)
	for _, exec := range keep {
		if _, ok := latestBySummary[exec.SummaryID]; !ok {
			latestBySummary[exec.SummaryID] = exec.ID
		}
	}
	keepIDs := make([]string, 0, len(latestBySummary))
	for _, id := range latestBySummary {
		keepIDs = append(keepIDs, id)
	}

	del := s.client.Execution.Delete().
		Where(
			execution.StatusNEQ(execution.StatusRunning),
			execution.StartedAtLT(cutoff),
		)
	if len(keepIDs) > 0 {
		del = del.Where(execution.IDNotIn(keepIDs...))
	}

	count, err := del.Exec(pruneCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune executions: %w", err)
	}
	return count, nil
}

func toExecutionSummary(exec *ent.Execution) models.ExecutionSummary {
	item := models.ExecutionSummary{
		ID:          exec.ID,
		SummaryID:   exec.SummaryID,
		Status:      string(exec.Status),
		TriggeredBy: exec.TriggeredBy,
		HasChanges:  exec.HasChanges,
		StartedAt:   exec.StartedAt,
		CompletedAt: exec.CompletedAt,
		DurationMs:  exec.DurationMs,
	}
	if exec.SkipReason != nil {
		item.SkipReason = *exec.SkipReason
	}
	return item
}
