package services

import (
	"context"
	"testing"
	"time"

	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/summary"
	"github.com/muniscope/muniscope/pkg/models"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryService(t *testing.T) (*SummaryService, *ent.Client) {
	db := testdb.NewTestClient(t)
	return NewSummaryService(db.Client), db.Client
}

func validCreateRequest() models.CreateSummaryRequest {
	return models.CreateSummaryRequest{
		OwnerID: "user-1",
		Name:    "Bavarian municipalities",
		Prompt:  "Track digitization projects in Bavaria",
		Theme:   "digitization",
	}
}

func TestCreateSummary_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, summary.TriggerTypeManual, sum.TriggerType)
	assert.InDelta(t, 0.5, sum.RelevanceThreshold, 1e-9)
	assert.False(t, sum.RelevanceCheckEnabled)
	assert.Nil(t, sum.NextRunAt)
	assert.Zero(t, sum.ExecutionCount)
}

func TestCreateSummary_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	_, err := svc.CreateSummary(ctx, models.CreateSummaryRequest{Name: "x"})
	assert.True(t, IsValidationError(err), "missing owner_id")

	_, err = svc.CreateSummary(ctx, models.CreateSummaryRequest{OwnerID: "u"})
	assert.True(t, IsValidationError(err), "missing name")

	req := validCreateRequest()
	req.TriggerType = "webhook"
	_, err = svc.CreateSummary(ctx, req)
	assert.True(t, IsValidationError(err), "unknown trigger type")

	req = validCreateRequest()
	bad := 1.5
	req.RelevanceThreshold = &bad
	_, err = svc.CreateSummary(ctx, req)
	assert.True(t, IsValidationError(err), "threshold out of range")
}

func TestCreateSummary_CronComputesNextRun(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	req := validCreateRequest()
	req.TriggerType = "cron"
	req.CronExpression = "0 6 * * *"

	sum, err := svc.CreateSummary(ctx, req)
	require.NoError(t, err)

	require.NotNil(t, sum.NextRunAt)
	assert.True(t, sum.NextRunAt.After(time.Now()))

	// Cron without an expression is rejected.
	req.CronExpression = ""
	_, err = svc.CreateSummary(ctx, req)
	assert.True(t, IsValidationError(err))

	req.CronExpression = "bad cron"
	_, err = svc.CreateSummary(ctx, req)
	assert.True(t, IsValidationError(err))
}

func TestUpdateSummary_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	name := "Renamed"
	enabled := true
	updated, err := svc.UpdateSummary(ctx, sum.ID, models.UpdateSummaryRequest{
		Name:                  &name,
		RelevanceCheckEnabled: &enabled,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.RelevanceCheckEnabled)
	assert.Equal(t, sum.Theme, updated.Theme, "unset fields stay untouched")
}

func TestUpdateSummary_SwitchToCronSchedules(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	trigger := "cron"
	expr := "*/15 * * * *"
	updated, err := svc.UpdateSummary(ctx, sum.ID, models.UpdateSummaryRequest{
		TriggerType:    &trigger,
		CronExpression: &expr,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.NextRunAt)
	assert.True(t, updated.NextRunAt.After(time.Now()))
}

func TestUpdateSummary_SwitchAwayFromCronClearsSchedule(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	req := validCreateRequest()
	req.TriggerType = "cron"
	req.CronExpression = "0 6 * * *"
	sum, err := svc.CreateSummary(ctx, req)
	require.NoError(t, err)

	trigger := "manual"
	updated, err := svc.UpdateSummary(ctx, sum.ID, models.UpdateSummaryRequest{TriggerType: &trigger})
	require.NoError(t, err)

	assert.Nil(t, updated.NextRunAt, "non-cron summaries must not be polled")
}

func TestDeleteSummary_SoftDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSummary(ctx, sum.ID))

	_, err = svc.GetSummary(ctx, sum.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	// Idempotence: a second delete reports not found.
	assert.ErrorIs(t, svc.DeleteSummary(ctx, sum.ID), ErrNotFound)
}

func TestListSummaries_FiltersByOwnerAndPaginates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSummary(ctx, validCreateRequest())
		require.NoError(t, err)
	}
	other := validCreateRequest()
	other.OwnerID = "user-2"
	_, err := svc.CreateSummary(ctx, other)
	require.NoError(t, err)

	summaries, total, err := svc.ListSummaries(ctx, "user-1", 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	assert.Len(t, summaries, 2)
}

func TestAddWidget_ValidatesQueryConfig(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	w, err := svc.AddWidget(ctx, sum.ID, models.CreateWidgetRequest{
		Title:       "Municipalities by population",
		QueryConfig: map[string]any{"entity_type": "municipality", "limit": float64(10)},
	})
	require.NoError(t, err)
	assert.Equal(t, sum.ID, w.SummaryID)

	// Missing entity_type is rejected at write time.
	_, err = svc.AddWidget(ctx, sum.ID, models.CreateWidgetRequest{
		Title:       "broken",
		QueryConfig: map[string]any{"limit": float64(10)},
	})
	assert.True(t, IsValidationError(err))

	// Bad enum values are rejected too.
	_, err = svc.AddWidget(ctx, sum.ID, models.CreateWidgetRequest{
		Title:       "broken",
		QueryConfig: map[string]any{"entity_type": "municipality", "sort_order": "sideways"},
	})
	assert.True(t, IsValidationError(err))
}

func TestListWidgets_OrderedByDisplayOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	for _, order := range []int{2, 0, 1} {
		_, err := svc.AddWidget(ctx, sum.ID, models.CreateWidgetRequest{
			Title:        "w",
			DisplayOrder: order,
			QueryConfig:  map[string]any{"entity_type": "municipality"},
		})
		require.NoError(t, err)
	}

	widgets, err := svc.ListWidgets(ctx, sum.ID)
	require.NoError(t, err)

	require.Len(t, widgets, 3)
	assert.Equal(t, 0, widgets[0].DisplayOrder)
	assert.Equal(t, 2, widgets[2].DisplayOrder)
}

func TestListWidgets_DuplicateDisplayOrderKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	sum, err := svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	// Clients may omit display_order entirely; duplicates are allowed.
	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		w, err := svc.AddWidget(ctx, sum.ID, models.CreateWidgetRequest{
			Title:       title,
			QueryConfig: map[string]any{"entity_type": "municipality"},
		})
		require.NoError(t, err)
		ids = append(ids, w.ID)
	}

	widgets, err := svc.ListWidgets(ctx, sum.ID)
	require.NoError(t, err)

	require.Len(t, widgets, 3)
	for i, w := range widgets {
		assert.Equal(t, ids[i], w.ID)
	}
}

func TestListCrawlTriggered(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSummaryService(t)

	crawlReq := validCreateRequest()
	crawlReq.TriggerType = "crawl"
	crawlSum, err := svc.CreateSummary(ctx, crawlReq)
	require.NoError(t, err)

	_, err = svc.CreateSummary(ctx, validCreateRequest())
	require.NoError(t, err)

	all, err := svc.ListCrawlTriggered(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, crawlSum.ID, all[0].ID)

	none, err := svc.ListCrawlTriggered(ctx, []string{"other-id"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
