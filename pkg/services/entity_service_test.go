package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/pkg/models"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEntities(ctx context.Context, t *testing.T, client *ent.Client) (municipalityType *ent.EntityType) {
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
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		country := "DE"
		if i == 3 {
			country = "AT"
		}
		e, err := client.Entity.Create().
			SetID(uuid.New().String()).
			SetEntityTypeID(et.ID).
			SetName(fmt.Sprintf("Gemeinde %d", i)).
			SetRegionCode("DE-BY").
			SetCountry(country).
			Save(ctx)
		require.NoError(t, err)

		_, err = client.FacetValue.Create().
			SetID(uuid.New().String()).
			SetEntityID(e.ID).
			SetFacetTypeID(ft.ID).
			SetValue(map[string]any{"amount": i * 1000}).
			SetConfidence(0.8).
			SetExtractedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}
	return et
}

func TestResolveEntityType(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewEntityService(db.Client)
	seedEntities(ctx, t, db.Client)

	et, err := svc.ResolveEntityType(ctx, "municipality")
	require.NoError(t, err)
	assert.Equal(t, "Municipality", et.Name)

	_, err = svc.ResolveEntityType(ctx, "starship")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveFacetTypes_DropsUnknownSlugs(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewEntityService(db.Client)
	seedEntities(ctx, t, db.Client)

	types, err := svc.ResolveFacetTypes(ctx, []string{"population", "mood"})
	require.NoError(t, err)

	require.Len(t, types, 1)
	assert.Equal(t, "population", types[0].Slug)
}

func TestListEntities_Filters(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewEntityService(db.Client)
	seedEntities(ctx, t, db.Client)

	entities, total, err := svc.ListEntities(ctx, models.EntityFilters{
		EntityType: "municipality",
		Country:    "DE",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, entities, 3)

	searched, total, err := svc.ListEntities(ctx, models.EntityFilters{Search: "gemeinde 2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, searched, 1)
	assert.Equal(t, "Gemeinde 2", searched[0].Name)
}

func TestGetEntity_IncludesFacetValues(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)
	svc := NewEntityService(db.Client)
	seedEntities(ctx, t, db.Client)

	all, _, err := svc.ListEntities(ctx, models.EntityFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	entity, err := svc.GetEntity(ctx, all[0].ID)
	require.NoError(t, err)

	require.NotEmpty(t, entity.Edges.FacetValues)
	assert.NotNil(t, entity.Edges.FacetValues[0].Edges.FacetType)

	_, err = svc.GetEntity(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}
