// Code generated by ent, DO NOT EDIT.

package widget

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muniscope/muniscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Widget {
	return predicate.Widget(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Widget {
	return predicate.Widget(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Widget {
	return predicate.Widget(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Widget {
	return predicate.Widget(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Widget {
	return predicate.Widget(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Widget {
	return predicate.Widget(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Widget {
	return predicate.Widget(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Widget {
	return predicate.Widget(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Widget {
	return predicate.Widget(sql.FieldContainsFold(FieldID, id))
}

// SummaryID applies equality check predicate on the "summary_id" field. It's identical to SummaryIDEQ.
func SummaryID(v string) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldSummaryID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldTitle, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldDisplayOrder, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldUpdatedAt, v))
}

// SummaryIDEQ applies the EQ predicate on the "summary_id" field.
func SummaryIDEQ(v string) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldSummaryID, v))
}

// SummaryIDNEQ applies the NEQ predicate on the "summary_id" field.
func SummaryIDNEQ(v string) predicate.Widget {
	return predicate.Widget(sql.FieldNEQ(FieldSummaryID, v))
}

// SummaryIDIn applies the In predicate on the "summary_id" field.
func SummaryIDIn(vs ...string) predicate.Widget {
	return predicate.Widget(sql.FieldIn(FieldSummaryID, vs...))
}

// SummaryIDNotIn applies the NotIn predicate on the "summary_id" field.
func SummaryIDNotIn(vs ...string) predicate.Widget {
	return predicate.Widget(sql.FieldNotIn(FieldSummaryID, vs...))
}

// SummaryIDGT applies the GT predicate on the "summary_id" field.
func SummaryIDGT(v string) predicate.Widget {
	return predicate.Widget(sql.FieldGT(FieldSummaryID, v))
}

// SummaryIDGTE applies the GTE predicate on the "summary_id" field.
func SummaryIDGTE(v string) predicate.Widget {
	return predicate.Widget(sql.FieldGTE(FieldSummaryID, v))
}

// SummaryIDLT applies the LT predicate on the "summary_id" field.
func SummaryIDLT(v string) predicate.Widget {
	return predicate.Widget(sql.FieldLT(FieldSummaryID, v))
}

// SummaryIDLTE applies the LTE predicate on the "summary_id" field.
func SummaryIDLTE(v string) predicate.Widget {
	return predicate.Widget(sql.FieldLTE(FieldSummaryID, v))
}

// SummaryIDContains applies the Contains predicate on the "summary_id" field.
func SummaryIDContains(v string) predicate.Widget {
	return predicate.Widget(sql.FieldContains(FieldSummaryID, v))
}

// SummaryIDHasPrefix applies the HasPrefix predicate on the "summary_id" field.
func SummaryIDHasPrefix(v string) predicate.Widget {
	return predicate.Widget(sql.FieldHasPrefix(FieldSummaryID, v))
}

// SummaryIDHasSuffix applies the HasSuffix predicate on the "summary_id" field.
func SummaryIDHasSuffix(v string) predicate.Widget {
	return predicate.Widget(sql.FieldHasSuffix(FieldSummaryID, v))
}

// SummaryIDEqualFold applies the EqualFold predicate on the "summary_id" field.
func SummaryIDEqualFold(v string) predicate.Widget {
	return predicate.Widget(sql.FieldEqualFold(FieldSummaryID, v))
}

// SummaryIDContainsFold applies the ContainsFold predicate on the "summary_id" field.
func SummaryIDContainsFold(v string) predicate.Widget {
	return predicate.Widget(sql.FieldContainsFold(FieldSummaryID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Widget {
	return predicate.Widget(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Widget {
	return predicate.Widget(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Widget {
	return predicate.Widget(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Widget {
	return predicate.Widget(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Widget {
	return predicate.Widget(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Widget {
	return predicate.Widget(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Widget {
	return predicate.Widget(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Widget {
	return predicate.Widget(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Widget {
	return predicate.Widget(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Widget {
	return predicate.Widget(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Widget {
	return predicate.Widget(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Widget {
	return predicate.Widget(sql.FieldContainsFold(FieldTitle, v))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.Widget {
	return predicate.Widget(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.Widget {
	return predicate.Widget(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.Widget {
	return predicate.Widget(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.Widget {
	return predicate.Widget(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.Widget {
	return predicate.Widget(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.Widget {
	return predicate.Widget(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.Widget {
	return predicate.Widget(sql.FieldLTE(FieldDisplayOrder, v))
}

// VisualizationConfigIsNil applies the IsNil predicate on the "visualization_config" field.
func VisualizationConfigIsNil() predicate.Widget {
	return predicate.Widget(sql.FieldIsNull(FieldVisualizationConfig))
}

// VisualizationConfigNotNil applies the NotNil predicate on the "visualization_config" field.
func VisualizationConfigNotNil() predicate.Widget {
	return predicate.Widget(sql.FieldNotNull(FieldVisualizationConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Widget {
	return predicate.Widget(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSummary applies the HasEdge predicate on the "summary" edge.
func HasSummary() predicate.Widget {
	return predicate.Widget(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SummaryTable, SummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummaryWith applies the HasEdge predicate on the "summary" edge with a given conditions (other predicates).
func HasSummaryWith(preds ...predicate.Summary) predicate.Widget {
	return predicate.Widget(func(s *sql.Selector) {
		step := newSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Widget) predicate.Widget {
	return predicate.Widget(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Widget) predicate.Widget {
	return predicate.Widget(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Widget) predicate.Widget {
	return predicate.Widget(sql.NotPredicates(p))
}
