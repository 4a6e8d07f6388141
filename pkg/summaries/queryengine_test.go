package summaries

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/pkg/config"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		field    string
		wantName string
		wantKind sortKind
	}{
		{"", "", sortNone},
		{"name", "name", sortEntity},
		{"created_at", "created_at", sortEntity},
		{"region_code", "region_code", sortEntity},
		{"facets.population.value", "population", sortFacet},
		{"facets.budget_2026.value", "budget_2026", sortFacet},
		{"facets.pop ulation.value", "", sortNone},
		{"attributes->>'x'", "", sortNone},
		{"name; DROP TABLE entities", "", sortNone},
	}
	for _, tt := range tests {
		name, kind := validateSortField(tt.field)
		assert.Equal(t, tt.wantKind, kind, "field %q", tt.field)
		assert.Equal(t, tt.wantName, name, "field %q", tt.field)
	}
}

func TestBuildEntityFilters_DropsUnknownKeys(t *testing.T) {
	preds, dropped := buildEntityFilters(map[string]any{
		"region_code": "DE-BY",
		"name":        "spring",
		"owner_id":    "sneaky",
		"raw_sql":     "1=1",
	})

	assert.Len(t, preds, 2)
	assert.Equal(t, []string{"owner_id", "raw_sql"}, dropped)
}

func TestBuildEntityFilters_IgnoresWrongTypes(t *testing.T) {
	preds, dropped := buildEntityFilters(map[string]any{
		"region_code": 42,
		"country":     "",
	})

	assert.Empty(t, preds)
	assert.Empty(t, dropped)
}

func TestSortRowsByFacet(t *testing.T) {
	rows := []map[string]any{
		{"name": "a", "facets": map[string]map[string]any{"population": {"value": float64(100)}}},
		{"name": "b"},
		{"name": "c", "facets": map[string]map[string]any{"population": {"value": float64(900)}}},
		{"name": "d", "facets": map[string]map[string]any{"population": {"value": float64(400)}}},
	}

	sortRowsByFacet(rows, "population", true)

	assert.Equal(t, "c", rows[0]["name"])
	assert.Equal(t, "d", rows[1]["name"])
	assert.Equal(t, "a", rows[2]["name"])
	assert.Equal(t, "b", rows[3]["name"], "rows missing the facet sort last")

	sortRowsByFacet(rows, "population", false)
	assert.Equal(t, "a", rows[0]["name"])
	assert.Equal(t, "b", rows[3]["name"])
}

func TestCompareValues(t *testing.T) {
	assert.Negative(t, compareValues(float64(2), float64(10)), "numeric compare, not lexicographic")
	assert.Positive(t, compareValues("zebra", "apple"))
	assert.Zero(t, compareValues(float64(5), 5))
}

// --- integration ---

type queryFixture struct {
	client  *ent.Client
	engine  *QueryEngine
	summary *ent.Summary
}

func newQueryFixture(t *testing.T) *queryFixture {
	db := testdb.NewTestClient(t)
	cfg := config.DefaultExecutorConfig()
	return &queryFixture{
		client:  db.Client,
		engine:  NewQueryEngine(db.Client, cfg),
		summary: createTestSummary(context.Background(), t, db.Client),
	}
}

func createTestSummary(ctx context.Context, t *testing.T, client *ent.Client) *ent.Summary {
	t.Helper()
	sum, err := client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("test-user").
		SetName("Bavarian municipalities").
		SetPrompt("Track municipal digitization news in Bavaria").
		Save(ctx)
	require.NoError(t, err)
	return sum
}

func createTestWidget(ctx context.Context, t *testing.T, client *ent.Client, summaryID string, queryConfig map[string]any) *ent.Widget {
	t.Helper()
	w, err := client.Widget.Create().
		SetID(uuid.New().String()).
		SetSummaryID(summaryID).
		SetTitle("test widget").
		SetQueryConfig(queryConfig).
		Save(ctx)
	require.NoError(t, err)
	return w
}

// seedMunicipalities creates one entity type with n municipalities and a
// population facet on each: entity i gets population (i+1)*1000.
func seedMunicipalities(ctx context.Context, t *testing.T, client *ent.Client, n int) {
	t.Helper()

	et, err := client.EntityType.Create().
		SetID(uuid.New().String()).
		SetSlug("municipality").
		SetName("Municipality").
		Save(ctx)
	require.NoError(t, err)

	ft, err := client.FacetType.Create().
		SetID(uuid.New().String()).
		SetSlug("population").
		SetName("Population").
		SetValueKind("structured").
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		e, err := client.Entity.Create().
			SetID(uuid.New().String()).
			SetEntityTypeID(et.ID).
			SetName(fmt.Sprintf("Stadt %02d", i)).
			SetRegionCode("DE-BY").
			SetCountry("DE").
			SetTags([]string{"bavaria"}).
			Save(ctx)
		require.NoError(t, err)

		_, err = client.FacetValue.Create().
			SetID(uuid.New().String()).
			SetEntityID(e.ID).
			SetFacetTypeID(ft.ID).
			SetValue(map[string]any{"amount": (i + 1) * 1000}).
			SetConfidence(0.9).
			SetExtractedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestQueryEngine_BasicQuery(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 5)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
		"facet_types": []any{"population"},
		"sort_field":  "name",
		"sort_order":  "asc",
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	assert.Equal(t, 5, result.Total)
	require.Len(t, result.Data, 5)
	assert.Equal(t, "Stadt 00", result.Data[0]["name"])

	facets, ok := result.Data[0]["facets"].(map[string]map[string]any)
	require.True(t, ok, "facet values must be attached to rows")
	assert.Contains(t, facets, "population")
}

func TestQueryEngine_UnknownEntityType(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "spacecraft",
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	assert.Contains(t, result.Error, "unknown entity type")
	assert.Empty(t, result.Data)
	assert.Zero(t, result.Total)
}

func TestQueryEngine_CountAggregate(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 7)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
		"aggregate":   "count",
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	require.Len(t, result.Data, 1)
	assert.Equal(t, 7, result.Data[0]["value"])
}

func TestQueryEngine_FiltersAndLimit(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 6)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
		"filters": map[string]any{
			"region_code": "DE-BY",
			"bogus_key":   "ignored",
		},
		"limit": 2,
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	assert.Equal(t, 6, result.Total, "total reflects the full match, not the page")
	assert.Len(t, result.Data, 2)
}

func TestQueryEngine_FacetSort(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 4)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
		"facet_types": []any{"population"},
		"sort_field":  "facets.population.value",
		"sort_order":  "desc",
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	require.Len(t, result.Data, 4)
	// Single-field structured values sort by the inner number.
	for i, row := range result.Data {
		assert.Equal(t, (4-i)*1000, rowPopulation(t, row))
	}
}

// rowPopulation digs the population amount out of an assembled row.
func rowPopulation(t *testing.T, row map[string]any) int {
	t.Helper()
	facets, ok := row["facets"].(map[string]map[string]any)
	require.True(t, ok)
	value, ok := facets["population"]["value"].(map[string]any)
	require.True(t, ok)
	amount, ok := value["amount"].(float64)
	require.True(t, ok)
	return int(amount)
}

func TestQueryEngine_FacetSortAppliesBeforeLimit(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 25)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
		"facet_types": []any{"population"},
		"sort_field":  "facets.population.value",
		"sort_order":  "desc",
		"limit":       10,
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	assert.Equal(t, 25, result.Total)
	require.Len(t, result.Data, 10)

	// The page holds the 10 largest populations, largest first, not an
	// arbitrary 10-row slice sorted among themselves.
	for i, row := range result.Data {
		assert.Equal(t, (25-i)*1000, rowPopulation(t, row))
	}
}

func TestQueryEngine_InactiveEntitiesExcluded(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 3)

	// Deactivate one entity directly.
	inactive, err := f.client.Entity.Query().First(ctx)
	require.NoError(t, err)
	_, err = inactive.Update().SetActive(false).Save(ctx)
	require.NoError(t, err)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	assert.Equal(t, 2, result.Total)
}

func TestQueryEngine_CoordinateInheritance(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	et, err := f.client.EntityType.Create().
		SetID(uuid.New().String()).
		SetSlug("person").
		SetName("Person").
		Save(ctx)
	require.NoError(t, err)

	parent, err := f.client.Entity.Create().
		SetID(uuid.New().String()).
		SetEntityTypeID(et.ID).
		SetName("Rathaus").
		SetLatitude(48.13).
		SetLongitude(11.57).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.client.Entity.Create().
		SetID(uuid.New().String()).
		SetEntityTypeID(et.ID).
		SetName("Bürgermeister").
		SetParentID(parent.ID).
		Save(ctx)
	require.NoError(t, err)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "person",
		"filters":     map[string]any{"name": "bürgermeister"},
	})

	result := f.engine.RunWidgetQuery(ctx, w)

	require.Empty(t, result.Error)
	require.Len(t, result.Data, 1)
	row := result.Data[0]
	assert.Equal(t, 48.13, row["latitude"])
	assert.Equal(t, true, row["location_inherited"])
}

func TestQueryEngine_TimeoutProducesTimeoutResult(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)
	seedMunicipalities(ctx, t, f.client, 3)

	cfg := config.DefaultExecutorConfig()
	cfg.WidgetQueryTimeout = time.Nanosecond
	engine := NewQueryEngine(f.client, cfg)

	w := createTestWidget(ctx, t, f.client, f.summary.ID, map[string]any{
		"entity_type": "municipality",
	})

	result := engine.RunWidgetQuery(ctx, w)

	assert.True(t, result.Timeout)
	assert.Contains(t, result.Error, "timed out")
	assert.Empty(t, result.Data)
	assert.Zero(t, result.Total)
}
