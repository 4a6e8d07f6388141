package summaries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/muniscope/muniscope/ent"
	"github.com/muniscope/muniscope/ent/entity"
	"github.com/muniscope/muniscope/ent/entitytype"
	"github.com/muniscope/muniscope/ent/facettype"
	"github.com/muniscope/muniscope/ent/facetvalue"
	"github.com/muniscope/muniscope/ent/predicate"
	"github.com/muniscope/muniscope/pkg/config"
	"github.com/muniscope/muniscope/pkg/models"
)

// entitySortFields are the core entity fields widget configs may sort by.
// Anything else either matches the facets.<slug>.value form or is ignored.
var entitySortFields = map[string]string{
	"name":        entity.FieldName,
	"created_at":  entity.FieldCreatedAt,
	"updated_at":  entity.FieldUpdatedAt,
	"region_code": entity.FieldRegionCode,
	"country":     entity.FieldCountry,
}

// facetSortPattern matches "facets.<slug>.value" for alphanumeric slugs.
// Slugs are restricted to keep stored configs from smuggling arbitrary
// expressions into the sort path.
var facetSortPattern = regexp.MustCompile(`^facets\.([a-zA-Z0-9_]+)\.value$`)

// QueryEngine turns a widget's declarative query configuration into a
// bounded, filtered, sorted result set against the entity/facet store.
// Configurations are semi-trusted data, not code: the engine never raises
// for a malformed config, it degrades to a best-effort result with an
// error field.
type QueryEngine struct {
	client *ent.Client
	cfg    *config.ExecutorConfig
}

// NewQueryEngine creates a query engine over the entity/facet store.
func NewQueryEngine(client *ent.Client, cfg *config.ExecutorConfig) *QueryEngine {
	return &QueryEngine{client: client, cfg: cfg}
}

// RunWidgetQuery executes one widget's query under the per-widget timeout.
// All outcomes are returned as a result shape; no path returns an error.
func (qe *QueryEngine) RunWidgetQuery(ctx context.Context, w *ent.Widget) *models.WidgetResult {
	start := time.Now()

	queryCtx, cancel := context.WithTimeout(ctx, qe.cfg.WidgetQueryTimeout)
	defer cancel()

	result := qe.runQuery(queryCtx, w)
	result.QueryTimeMs = time.Since(start).Milliseconds()
	return result
}

func (qe *QueryEngine) runQuery(ctx context.Context, w *ent.Widget) *models.WidgetResult {
	logger := slog.With("widget_id", w.ID, "summary_id", w.SummaryID)

	cfg, err := models.ParseQueryConfig(w.QueryConfig)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid query config: %v", err))
	}
	if cfg.EntityType == "" {
		return errorResult("query config is missing entity_type")
	}

	// 1. Resolve entity type slug.
	et, err := qe.client.EntityType.Query().
		Where(entitytype.SlugEQ(cfg.EntityType)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errorResult(fmt.Sprintf("unknown entity type %q", cfg.EntityType))
		}
		return qe.queryFailure(ctx, logger, "resolving entity type", err)
	}

	preds, dropped := buildEntityFilters(cfg.Filters)
	if len(dropped) > 0 {
		logger.Warn("Dropped non-whitelisted filter keys from widget query", "keys", dropped)
	}

	base := qe.client.Entity.Query().
		Where(entity.EntityTypeIDEQ(et.ID), entity.Active(true)).
		Where(preds...)

	// 2. Count-only short circuit.
	if cfg.Aggregate == "count" && len(cfg.FacetTypes) == 0 {
		count, err := base.Count(ctx)
		if err != nil {
			return qe.queryFailure(ctx, logger, "counting entities", err)
		}
		return &models.WidgetResult{
			Data:  []map[string]any{{"value": count}},
			Total: 1,
		}
	}

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return qe.queryFailure(ctx, logger, "counting entities", err)
	}

	// 3. Sort and limit. Non-whitelisted sort fields degrade to input order.
	sortField, sortKind := validateSortField(cfg.SortField)
	if cfg.SortField != "" && sortKind == sortNone {
		logger.Warn("Ignoring non-whitelisted sort field", "sort_field", cfg.SortField)
	}
	descending := strings.EqualFold(cfg.SortOrder, "desc")

	limit := cfg.Limit
	if limit <= 0 || limit > qe.cfg.MaxWidgetLimit {
		limit = qe.cfg.MaxWidgetLimit
	}

	// Facet sorts need the whole candidate set before the limit applies,
	// bounded by MaxFacetRows to cap memory. The fixed fetch order keeps
	// snapshots stable when the candidate set exceeds the bound.
	fetchLimit := limit
	if sortKind == sortFacet && qe.cfg.MaxFacetRows > fetchLimit {
		fetchLimit = qe.cfg.MaxFacetRows
	}

	entityQuery := base.Clone().WithParent().Limit(fetchLimit)
	switch sortKind {
	case sortEntity:
		if descending {
			entityQuery = entityQuery.Order(ent.Desc(sortField))
		} else {
			entityQuery = entityQuery.Order(ent.Asc(sortField))
		}
	case sortFacet:
		entityQuery = entityQuery.Order(ent.Asc(entity.FieldID))
	}

	entities, err := entityQuery.All(ctx)
	if err != nil {
		return qe.queryFailure(ctx, logger, "loading entities", err)
	}

	// 4. Bulk-load facet values, capped to bound memory.
	facets, err := qe.loadFacets(ctx, logger, entities, cfg.FacetTypes)
	if err != nil {
		return qe.queryFailure(ctx, logger, "loading facet values", err)
	}

	rows := make([]map[string]any, len(entities))
	for i, e := range entities {
		rows[i] = assembleRow(e, facets[e.ID])
	}

	// 5. Facet-value sorts happen in memory over the assembled candidate
	// set; the widget limit applies after the sort.
	if sortKind == sortFacet {
		sortRowsByFacet(rows, sortField, descending)
		if len(rows) > limit {
			rows = rows[:limit]
		}
	}

	return &models.WidgetResult{
		Data:  rows,
		Total: total,
	}
}

// loadFacets bulk-loads facet values for the matched entities, restricted
// to the requested facet-type slugs and capped at MaxFacetRows. Hitting
// the cap returns a partial facet set, not an error. The highest-confidence
// value wins per (entity, slug).
func (qe *QueryEngine) loadFacets(ctx context.Context, logger *slog.Logger, entities []*ent.Entity, slugs []string) (map[string]map[string]map[string]any, error) {
	if len(entities) == 0 || len(slugs) == 0 {
		return nil, nil
	}

	types, err := qe.client.FacetType.Query().
		Where(facettype.SlugIn(slugs...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, nil
	}

	slugByTypeID := make(map[string]string, len(types))
	typeIDs := make([]string, len(types))
	for i, ft := range types {
		typeIDs[i] = ft.ID
		slugByTypeID[ft.ID] = ft.Slug
	}

	entityIDs := make([]string, len(entities))
	for i, e := range entities {
		entityIDs[i] = e.ID
	}

	values, err := qe.client.FacetValue.Query().
		Where(
			facetvalue.EntityIDIn(entityIDs...),
			facetvalue.FacetTypeIDIn(typeIDs...),
		).
		Limit(qe.cfg.MaxFacetRows).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) == qe.cfg.MaxFacetRows {
		logger.Warn("Facet bulk-load hit row cap, returning partial facet set",
			"cap", qe.cfg.MaxFacetRows)
	}

	facets := make(map[string]map[string]map[string]any)
	for _, fv := range values {
		slug := slugByTypeID[fv.FacetTypeID]
		bySlug, ok := facets[fv.EntityID]
		if !ok {
			bySlug = make(map[string]map[string]any)
			facets[fv.EntityID] = bySlug
		}
		if existing, ok := bySlug[slug]; ok {
			if conf, _ := existing["confidence"].(float64); conf >= fv.Confidence {
				continue
			}
		}
		bySlug[slug] = map[string]any{
			"value":      fv.Value,
			"confidence": fv.Confidence,
		}
	}
	return facets, nil
}

// assembleRow flattens an entity plus its facet map into a result row.
// Entities without their own coordinates inherit the parent's, flagged so
// consumers know the location is not authoritative.
func assembleRow(e *ent.Entity, facets map[string]map[string]any) map[string]any {
	row := map[string]any{
		"id":          e.ID,
		"name":        e.Name,
		"region_code": e.RegionCode,
		"country":     e.Country,
		"tags":        e.Tags,
		"attributes":  e.Attributes,
		"created_at":  e.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":  e.UpdatedAt.UTC().Format(time.RFC3339),
	}

	switch {
	case e.Latitude != nil && e.Longitude != nil:
		row["latitude"] = *e.Latitude
		row["longitude"] = *e.Longitude
	case e.Edges.Parent != nil && e.Edges.Parent.Latitude != nil && e.Edges.Parent.Longitude != nil:
		row["latitude"] = *e.Edges.Parent.Latitude
		row["longitude"] = *e.Edges.Parent.Longitude
		row["location_inherited"] = true
	}

	if len(facets) > 0 {
		row["facets"] = facets
	}
	return row
}

// buildEntityFilters maps a stored filter config onto predicates, honoring
// only whitelisted keys. Any other key is reported back and dropped: widget
// configs may originate from AI-generated content, so unknown keys are a
// query-injection surface, not a feature.
func buildEntityFilters(filters map[string]any) ([]predicate.Entity, []string) {
	var preds []predicate.Entity
	var dropped []string

	for key, raw := range filters {
		switch key {
		case "region_code":
			if v, ok := raw.(string); ok && v != "" {
				preds = append(preds, entity.RegionCodeEQ(v))
			}
		case "country":
			if v, ok := raw.(string); ok && v != "" {
				preds = append(preds, entity.CountryEQ(v))
			}
		case "name":
			if v, ok := raw.(string); ok && v != "" {
				// ContainsFold escapes LIKE wildcards in the input.
				preds = append(preds, entity.NameContainsFold(v))
			}
		case "tags":
			if tags := stringSlice(raw); len(tags) > 0 {
				overlap := make([]predicate.Entity, len(tags))
				for i, tag := range tags {
					overlap[i] = predicate.Entity(func(s *sql.Selector) {
						s.Where(sqljson.ValueContains(entity.FieldTags, tag))
					})
				}
				preds = append(preds, entity.Or(overlap...))
			}
		default:
			dropped = append(dropped, key)
		}
	}

	sort.Strings(dropped)
	return preds, dropped
}

type sortKind int

const (
	sortNone sortKind = iota
	sortEntity
	sortFacet
)

// validateSortField resolves a requested sort field against the whitelist.
// Entity fields sort in SQL; facets.<slug>.value sorts in memory; anything
// else yields sortNone (input-order output).
func validateSortField(field string) (string, sortKind) {
	if field == "" {
		return "", sortNone
	}
	if col, ok := entitySortFields[field]; ok {
		return col, sortEntity
	}
	if m := facetSortPattern.FindStringSubmatch(field); m != nil {
		return m[1], sortFacet
	}
	return "", sortNone
}

// sortRowsByFacet orders assembled rows by a facet value. Rows missing the
// facet sort last regardless of direction.
func sortRowsByFacet(rows []map[string]any, slug string, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		vi, oki := facetSortValue(rows[i], slug)
		vj, okj := facetSortValue(rows[j], slug)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		c := compareValues(vi, vj)
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func facetSortValue(row map[string]any, slug string) (any, bool) {
	facets, ok := row["facets"].(map[string]map[string]any)
	if !ok {
		return nil, false
	}
	entry, ok := facets[slug]
	if !ok {
		return nil, false
	}
	v, ok := entry["value"]
	if !ok {
		return nil, false
	}
	// Structured values with a single field sort by that field, so
	// {"amount": 124000} orders numerically.
	for {
		m, isMap := v.(map[string]any)
		if !isMap || len(m) != 1 {
			break
		}
		for _, inner := range m {
			v = inner
		}
	}
	return v, true
}

// compareValues orders heterogeneous facet values: numbers numerically,
// everything else by string form.
func compareValues(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func stringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// queryFailure folds a query error into the widget result shape,
// distinguishing per-widget timeouts.
func (qe *QueryEngine) queryFailure(ctx context.Context, logger *slog.Logger, stage string, err error) *models.WidgetResult {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logger.Warn("Widget query timed out", "stage", stage, "timeout", qe.cfg.WidgetQueryTimeout)
		return &models.WidgetResult{
			Data:    []map[string]any{},
			Total:   0,
			Error:   fmt.Sprintf("query timed out after %s", qe.cfg.WidgetQueryTimeout),
			Timeout: true,
		}
	}
	logger.Error("Widget query failed", "stage", stage, "error", err)
	return errorResult(fmt.Sprintf("%s: %v", stage, err))
}

func errorResult(msg string) *models.WidgetResult {
	return &models.WidgetResult{
		Data:  []map[string]any{},
		Total: 0,
		Error: msg,
	}
}
