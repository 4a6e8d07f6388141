package services

import (
	"context"
	"fmt"

	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/entitytype"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/pkg/models"
)

// EntityService is the read-only surface over the entity/facet store. The
// crawler and extraction pipeline own writes; summaries and the API only
// read through here.
type EntityService struct {
	client *ent.Client
}

// NewEntityService creates a new EntityService.
func NewEntityService(client *ent.Client) *EntityService {
	return &EntityService{client: client}
}

// ResolveEntityType resolves an entity-type slug, or ErrNotFound.
func (s *EntityService) ResolveEntityType(ctx context.Context, slug string) (*ent.EntityType, error) {
	et, err := s.client.EntityType.Query().
		Where(entitytype.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve entity type %q: %w", slug, err)
	}
	return et, nil
}

// ResolveFacetTypes resolves facet-type slugs to rows, silently dropping
// unknown slugs. Widget configs may reference facet types that no longer
// exist; those degrade to an empty facet set rather than an error.
func (s *EntityService) ResolveFacetTypes(ctx context.Context, slugs []string) ([]*ent.FacetType, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	types, err := s.client.FacetType.Query().
		Where(facettype.SlugIn(slugs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve facet types: %w", err)
	}
	return types, nil
}

// GetEntity retrieves an entity with its facet values and parent.
func (s *EntityService) GetEntity(ctx context.Context, entityID string) (*ent.Entity, error) {
	e, err := s.client.Entity.Query().
		Where(entity.IDEQ(entityID)).
		WithEntityType().
		WithParent().
		WithFacetValues(func(q *ent.FacetValueQuery) {
			q.WithFacetType()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return e, nil
}

// ListEntities lists active entities with filtering and pagination.
func (s *EntityService) ListEntities(ctx context.Context, filters models.EntityFilters) ([]*ent.Entity, int, error) {
	query := s.client.Entity.Query().Where(entity.Active(true))

	if filters.EntityType != "" {
		et, err := s.ResolveEntityType(ctx, filters.EntityType)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where(entity.EntityTypeIDEQ(et.ID))
	}
	if filters.RegionCode != "" {
		query = query.Where(entity.RegionCodeEQ(filters.RegionCode))
	}
	if filters.Country != "" {
		query = query.Where(entity.CountryEQ(filters.Country))
	}
	if filters.Search != "" {
		query = query.Where(entity.NameContainsFold(filters.Search))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count entities: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	entities, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(entity.FieldName)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entities: %w", err)
	}

	return entities, total, nil
}

// CountFacetValues returns the number of stored facet values for an entity.
func (s *EntityService) CountFacetValues(ctx context.Context, entityID string) (int, error) {
	count, err := s.client.FacetValue.Query().
		Where(facetvalue.EntityIDEQ(entityID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count facet values: %w", err)
	}
	return count, nil
}
