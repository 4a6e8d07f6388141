package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/ent/widget"
	"github.com/muniscope/muniscope/pkg/models"
	"github.com/muniscope/muniscope/pkg/schedule"
)

// SummaryService manages summary and widget configuration.
type SummaryService struct {
	client *ent.Client
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(client *ent.Client) *SummaryService {
	return &SummaryService{client: client}
}

// CreateSummary creates a new summary configuration.
func (s *SummaryService) CreateSummary(ctx context.Context, req models.CreateSummaryRequest) (*ent.Summary, error) {
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	triggerType := summary.TriggerTypeManual
	if req.TriggerType != "" {
		triggerType = summary.TriggerType(req.TriggerType)
		if err := summary.TriggerTypeValidator(triggerType); err != nil {
			return nil, NewValidationError("trigger_type", "must be manual, cron, or crawl")
		}
	}

	var nextRunAt *time.Time
	if triggerType == summary.TriggerTypeCron {
		if req.CronExpression == "" {
			return nil, NewValidationError("cron_expression", "required when trigger_type=cron")
		}
		next, err := schedule.NextRun(req.CronExpression, time.Now())
		if err != nil {
			return nil, NewValidationError("cron_expression", err.Error())
		}
		nextRunAt = &next
	}

	builder := s.client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID(req.OwnerID).
		SetName(req.Name).
		SetTriggerType(triggerType).
		SetRelevanceCheckEnabled(req.RelevanceCheckEnabled).
		SetAutoExpandEnabled(req.AutoExpandEnabled)

	if req.Prompt != "" {
		builder.SetPrompt(req.Prompt)
	}
	if req.Theme != "" {
		builder.SetTheme(req.Theme)
	}
	if req.CronExpression != "" {
		builder.SetCronExpression(req.CronExpression)
	}
	if nextRunAt != nil {
		builder.SetNextRunAt(*nextRunAt)
	}
	if req.RelevanceThreshold != nil {
		if *req.RelevanceThreshold < 0 || *req.RelevanceThreshold > 1 {
			return nil, NewValidationError("relevance_threshold", "must be between 0 and 1")
		}
		builder.SetRelevanceThreshold(*req.RelevanceThreshold)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary: %w", err)
	}
	return created, nil
}

// GetSummary retrieves a summary by id, optionally with its widgets.
func (s *SummaryService) GetSummary(ctx context.Context, summaryID string, withWidgets bool) (*ent.Summary, error) {
	query := s.client.Summary.Query().
		Where(summary.IDEQ(summaryID), summary.DeletedAtIsNil())

	if withWidgets {
		query = query.WithWidgets(func(q *ent.WidgetQuery) {
			q.Order(ent.Asc(widget.FieldDisplayOrder))
		})
	}

	sum, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return sum, nil
}

// ListSummaries lists summaries for an owner with pagination.
func (s *SummaryService) ListSummaries(ctx context.Context, ownerID string, limit, offset int) ([]*ent.Summary, int, error) {
	query := s.client.Summary.Query().Where(summary.DeletedAtIsNil())
	if ownerID != "" {
		query = query.Where(summary.OwnerIDEQ(ownerID))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count summaries: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	summaries, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(summary.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list summaries: %w", err)
	}

	return summaries, total, nil
}

// UpdateSummary applies a partial update. Changing the trigger to cron
// recomputes next_run_at from the (possibly new) cron expression.
func (s *SummaryService) UpdateSummary(ctx context.Context, summaryID string, req models.UpdateSummaryRequest) (*ent.Summary, error) {
	existing, err := s.GetSummary(ctx, summaryID, false)
	if err != nil {
		return nil, err
	}

	update := existing.Update()

	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Theme != nil {
		update.SetTheme(*req.Theme)
	}
	if req.RelevanceCheckEnabled != nil {
		update.SetRelevanceCheckEnabled(*req.RelevanceCheckEnabled)
	}
	if req.RelevanceThreshold != nil {
		if *req.RelevanceThreshold < 0 || *req.RelevanceThreshold > 1 {
			return nil, NewValidationError("relevance_threshold", "must be between 0 and 1")
		}
		update.SetRelevanceThreshold(*req.RelevanceThreshold)
	}
	if req.AutoExpandEnabled != nil {
		update.SetAutoExpandEnabled(*req.AutoExpandEnabled)
	}

	triggerType := existing.TriggerType
	if req.TriggerType != nil {
		triggerType = summary.TriggerType(*req.TriggerType)
		if err := summary.TriggerTypeValidator(triggerType); err != nil {
			return nil, NewValidationError("trigger_type", "must be manual, cron, or crawl")
		}
		update.SetTriggerType(triggerType)
	}

	cronExpr := ""
	if existing.CronExpression != nil {
		cronExpr = *existing.CronExpression
	}
	if req.CronExpression != nil {
		cronExpr = *req.CronExpression
	}

	if triggerType == summary.TriggerTypeCron {
		if cronExpr == "" {
			return nil, NewValidationError("cron_expression", "required when trigger_type=cron")
		}
		next, err := schedule.NextRun(cronExpr, time.Now())
		if err != nil {
			return nil, NewValidationError("cron_expression", err.Error())
		}
		update.SetCronExpression(cronExpr).SetNextRunAt(next)
	} else {
		update.ClearNextRunAt()
		if req.CronExpression != nil {
			update.SetCronExpression(cronExpr)
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}
	return updated, nil
}

// DeleteSummary soft-deletes a summary. Its executions remain as audit history.
func (s *SummaryService) DeleteSummary(ctx context.Context, summaryID string) error {
	count, err := s.client.Summary.Update().
		Where(summary.IDEQ(summaryID), summary.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		ClearNextRunAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// AddWidget appends a widget to a summary after validating its query config.
func (s *SummaryService) AddWidget(ctx context.Context, summaryID string, req models.CreateWidgetRequest) (*ent.Widget, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if err := ValidateQueryConfig(req.QueryConfig); err != nil {
		return nil, err
	}

	if _, err := s.GetSummary(ctx, summaryID, false); err != nil {
		return nil, err
	}

	builder := s.client.Widget.Create().
		SetID(uuid.New().String()).
		SetSummaryID(summaryID).
		SetTitle(req.Title).
		SetDisplayOrder(req.DisplayOrder).
		SetQueryConfig(req.QueryConfig)

	if req.VisualizationConfig != nil {
		builder.SetVisualizationConfig(req.VisualizationConfig)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}
	return created, nil
}

// UpdateWidget replaces a widget's configuration.
func (s *SummaryService) UpdateWidget(ctx context.Context, widgetID string, req models.CreateWidgetRequest) (*ent.Widget, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if err := ValidateQueryConfig(req.QueryConfig); err != nil {
		return nil, err
	}

	update := s.client.Widget.UpdateOneID(widgetID).
		SetTitle(req.Title).
		SetDisplayOrder(req.DisplayOrder).
		SetQueryConfig(req.QueryConfig)
	if req.VisualizationConfig != nil {
		update.SetVisualizationConfig(req.VisualizationConfig)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update widget: %w", err)
	}
	return updated, nil
}

// DeleteWidget removes a widget from its summary.
func (s *SummaryService) DeleteWidget(ctx context.Context, widgetID string) error {
	err := s.client.Widget.DeleteOneID(widgetID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete widget: %w", err)
	}
	return nil
}

// ListWidgets returns a summary's widgets in display order.
func (s *SummaryService) ListWidgets(ctx context.Context, summaryID string) ([]*ent.Widget, error) {
	widgets, err := s.client.Widget.Query().
		Where(widget.SummaryIDEQ(summaryID)).
		Order(ent.Asc(widget.FieldDisplayOrder), ent.Asc(widget.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	return widgets, nil
}

// ListCrawlTriggered returns the active crawl-triggered summaries,
// optionally restricted to the given ids.
func (s *SummaryService) ListCrawlTriggered(ctx context.Context, summaryIDs []string) ([]*ent.Summary, error) {
	q := s.client.Summary.Query().
		Where(
			summary.TriggerTypeEQ(summary.TriggerTypeCrawl),
			summary.DeletedAtIsNil(),
		)
	if len(summaryIDs) > 0 {
		q = q.Where(summary.IDIn(summaryIDs...))
	}

	summaries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crawl-triggered summaries: %w", err)
	}
	return summaries, nil
}
