package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/pkg/services"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExecutor records execution requests and returns a canned record.
type stubExecutor struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (s *stubExecutor) ExecuteSummary(_ context.Context, summaryID, triggeredBy string, _ map[string]any, _ bool) (*ent.Execution, error) {
	s.mu.Lock()
	s.calls = append(s.calls, triggeredBy+":"+summaryID)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &ent.Execution{
		ID:        uuid.New().String(),
		SummaryID: summaryID,
		Status:    execution.StatusCompleted,
	}, nil
}

func (s *stubExecutor) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type apiFixture struct {
	router   *gin.Engine
	client   *ent.Client
	executor *stubExecutor
}

func newAPIFixture(t *testing.T) *apiFixture {
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	executor := &stubExecutor{}

	server := NewServer(
		db,
		services.NewSummaryService(db.Client),
		services.NewExecutionService(db.Client),
		services.NewEntityService(db.Client),
		executor,
	)

	router := gin.New()
	server.RegisterRoutes(router)

	return &apiFixture{router: router, client: db.Client, executor: executor}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestSummaryCRUD(t *testing.T) {
	f := newAPIFixture(t)

	// Create.
	rec := f.do(t, http.MethodPost, "/api/v1/summaries", map[string]any{
		"owner_id": "user-1",
		"name":     "Bavarian municipalities",
		"prompt":   "Track digitization projects",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	// Get.
	rec = f.do(t, http.MethodGet, "/api/v1/summaries/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update.
	rec = f.do(t, http.MethodPatch, "/api/v1/summaries/"+id, map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed", decodeBody(t, rec)["name"])

	// List.
	rec = f.do(t, http.MethodGet, "/api/v1/summaries?owner_id=user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["total_count"])

	// Delete.
	rec = f.do(t, http.MethodDelete, "/api/v1/summaries/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/summaries/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSummary_ValidationErrors(t *testing.T) {
	f := newAPIFixture(t)

	// Binding failure: required field missing.
	rec := f.do(t, http.MethodPost, "/api/v1/summaries", map[string]any{"owner_id": "u"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Service-level validation failure.
	rec = f.do(t, http.MethodPost, "/api/v1/summaries", map[string]any{
		"owner_id":     "u",
		"name":         "x",
		"trigger_type": "webhook",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "trigger_type")
}

func TestWidgetEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/summaries", map[string]any{
		"owner_id": "user-1", "name": "s",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	summaryID := decodeBody(t, rec)["id"].(string)

	// Invalid query config is rejected.
	rec = f.do(t, http.MethodPost, "/api/v1/summaries/"+summaryID+"/widgets", map[string]any{
		"title":        "broken",
		"query_config": map[string]any{"sort_order": "sideways"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Valid widget.
	rec = f.do(t, http.MethodPost, "/api/v1/summaries/"+summaryID+"/widgets", map[string]any{
		"title":        "Municipalities",
		"query_config": map[string]any{"entity_type": "municipality"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	widgetID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodGet, "/api/v1/summaries/"+summaryID+"/widgets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/v1/widgets/"+widgetID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestExecuteEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/summaries", map[string]any{
		"owner_id": "user-1", "name": "s",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	summaryID := decodeBody(t, rec)["id"].(string)

	rec = f.do(t, http.MethodPost, "/api/v1/summaries/"+summaryID+"/execute", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.executor.callCount())

	rec = f.do(t, http.MethodPost, "/api/v1/summaries/"+summaryID+"/execute", map[string]any{"force": true})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExecuteEndpoint_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	f.executor.err = services.ErrNotFound

	rec := f.do(t, http.MethodPost, "/api/v1/summaries/"+uuid.New().String()+"/execute", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLatestDataEndpoint(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)

	sum, err := f.client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("user-1").
		SetName("s").
		Save(ctx)
	require.NoError(t, err)

	// No completed execution yet.
	rec := f.do(t, http.MethodGet, "/api/v1/summaries/"+sum.ID+"/data", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, err = f.client.Execution.Create().
		SetID(uuid.New().String()).
		SetSummaryID(sum.ID).
		SetStatus(execution.StatusCompleted).
		SetTriggeredBy("manual").
		SetStartedAt(time.Now()).
		SetCompletedAt(time.Now()).
		SetCachedData(map[string]any{"widget_x": map[string]any{"total": float64(3)}}).
		SetDataHash("deadbeef").
		Save(ctx)
	require.NoError(t, err)

	rec = f.do(t, http.MethodGet, "/api/v1/summaries/"+sum.ID+"/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "deadbeef", body["data_hash"])
	assert.Contains(t, body["data"], "widget_x")
}

func TestCrawlWebhook(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)

	// One crawl-triggered summary, one manual.
	crawlSum, err := f.client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("user-1").
		SetName("crawl summary").
		SetTriggerType("crawl").
		Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("user-1").
		SetName("manual summary").
		Save(ctx)
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/events/crawl-completed", map[string]any{
		"crawl_id":    "crawl-42",
		"entity_type": "municipality",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["triggered"])

	require.Eventually(t, func() bool {
		return f.executor.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	f.executor.mu.Lock()
	call := f.executor.calls[0]
	f.executor.mu.Unlock()
	assert.Equal(t, fmt.Sprintf("crawl:%s", crawlSum.ID), call)
}

func TestCrawlWebhook_RejectsInvalidPayload(t *testing.T) {
	f := newAPIFixture(t)

	// Missing crawl_id.
	rec := f.do(t, http.MethodPost, "/api/v1/events/crawl-completed", map[string]any{
		"entity_type": "municipality",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong type.
	rec = f.do(t, http.MethodPost, "/api/v1/events/crawl-completed", map[string]any{
		"crawl_id": 42,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Zero(t, f.executor.callCount())
}

func TestEntityEndpoints(t *testing.T) {
	ctx := context.Background()
	f := newAPIFixture(t)

	et, err := f.client.EntityType.Create().
		SetID(uuid.New().String()).
		SetSlug("municipality").
		SetName("Municipality").
		Save(ctx)
	require.NoError(t, err)

	e, err := f.client.Entity.Create().
		SetID(uuid.New().String()).
		SetEntityTypeID(et.ID).
		SetName("Erlangen").
		SetRegionCode("DE-BY").
		SetCountry("DE").
		Save(ctx)
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/entities?entity_type=municipality", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["total_count"])

	rec = f.do(t, http.MethodGet, "/api/v1/entities/"+e.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Erlangen", decodeBody(t, rec)["name"])

	rec = f.do(t, http.MethodGet, "/api/v1/entities/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
