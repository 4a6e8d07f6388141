// Code generated by ent, DO NOT EDIT.

package facetvalue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muniscope/muniscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContainsFold(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldEntityID, v))
}

// FacetTypeID applies equality check predicate on the "facet_type_id" field. It's identical to FacetTypeIDEQ.
func FacetTypeID(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldFacetTypeID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldConfidence, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldSourceURL, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldExtractedAt, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContainsFold(FieldEntityID, v))
}

// FacetTypeIDEQ applies the EQ predicate on the "facet_type_id" field.
func FacetTypeIDEQ(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldFacetTypeID, v))
}

// FacetTypeIDNEQ applies the NEQ predicate on the "facet_type_id" field.
func FacetTypeIDNEQ(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNEQ(FieldFacetTypeID, v))
}

// FacetTypeIDIn applies the In predicate on the "facet_type_id" field.
func FacetTypeIDIn(vs ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIn(FieldFacetTypeID, vs...))
}

// FacetTypeIDNotIn applies the NotIn predicate on the "facet_type_id" field.
func FacetTypeIDNotIn(vs ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotIn(FieldFacetTypeID, vs...))
}

// FacetTypeIDGT applies the GT predicate on the "facet_type_id" field.
func FacetTypeIDGT(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGT(FieldFacetTypeID, v))
}

// FacetTypeIDGTE applies the GTE predicate on the "facet_type_id" field.
func FacetTypeIDGTE(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGTE(FieldFacetTypeID, v))
}

// FacetTypeIDLT applies the LT predicate on the "facet_type_id" field.
func FacetTypeIDLT(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLT(FieldFacetTypeID, v))
}

// FacetTypeIDLTE applies the LTE predicate on the "facet_type_id" field.
func FacetTypeIDLTE(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLTE(FieldFacetTypeID, v))
}

// FacetTypeIDContains applies the Contains predicate on the "facet_type_id" field.
func FacetTypeIDContains(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContains(FieldFacetTypeID, v))
}

// FacetTypeIDHasPrefix applies the HasPrefix predicate on the "facet_type_id" field.
func FacetTypeIDHasPrefix(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldHasPrefix(FieldFacetTypeID, v))
}

// FacetTypeIDHasSuffix applies the HasSuffix predicate on the "facet_type_id" field.
func FacetTypeIDHasSuffix(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldHasSuffix(FieldFacetTypeID, v))
}

// FacetTypeIDEqualFold applies the EqualFold predicate on the "facet_type_id" field.
func FacetTypeIDEqualFold(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEqualFold(FieldFacetTypeID, v))
}

// FacetTypeIDContainsFold applies the ContainsFold predicate on the "facet_type_id" field.
func FacetTypeIDContainsFold(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContainsFold(FieldFacetTypeID, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLTE(FieldConfidence, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldContainsFold(FieldSourceURL, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.FacetValue {
	return predicate.FacetValue(sql.FieldLTE(FieldExtractedAt, v))
}

// HasEntity applies the HasEdge predicate on the "entity" edge.
func HasEntity() predicate.FacetValue {
	return predicate.FacetValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntityTable, EntityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntityWith applies the HasEdge predicate on the "entity" edge with a given conditions (other predicates).
func HasEntityWith(preds ...predicate.Entity) predicate.FacetValue {
	return predicate.FacetValue(func(s *sql.Selector) {
		step := newEntityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFacetType applies the HasEdge predicate on the "facet_type" edge.
func HasFacetType() predicate.FacetValue {
	return predicate.FacetValue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FacetTypeTable, FacetTypeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacetTypeWith applies the HasEdge predicate on the "facet_type" edge with a given conditions (other predicates).
func HasFacetTypeWith(preds ...predicate.FacetType) predicate.FacetValue {
	return predicate.FacetValue(func(s *sql.Selector) {
		step := newFacetTypeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FacetValue) predicate.FacetValue {
	return predicate.FacetValue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FacetValue) predicate.FacetValue {
	return predicate.FacetValue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FacetValue) predicate.FacetValue {
	return predicate.FacetValue(sql.NotPredicates(p))
}
