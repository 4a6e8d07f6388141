// Code generated by ent, DO NOT EDIT.

package execution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muniscope/muniscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldID, id))
}

// SummaryID applies equality check predicate on the "summary_id" field. It's identical to SummaryIDEQ.
func SummaryID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldSummaryID, v))
}

// TriggeredBy applies equality check predicate on the "triggered_by" field. It's identical to TriggeredByEQ.
func TriggeredBy(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTriggeredBy, v))
}

// DataHash applies equality check predicate on the "data_hash" field. It's identical to DataHashEQ.
func DataHash(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldDataHash, v))
}

// HasChanges applies equality check predicate on the "has_changes" field. It's identical to HasChangesEQ.
func HasChanges(v bool) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldHasChanges, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceReason applies equality check predicate on the "relevance_reason" field. It's identical to RelevanceReasonEQ.
func RelevanceReason(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRelevanceReason, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldSkipReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldDurationMs, v))
}

// SummaryIDEQ applies the EQ predicate on the "summary_id" field.
func SummaryIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldSummaryID, v))
}

// SummaryIDNEQ applies the NEQ predicate on the "summary_id" field.
func SummaryIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldSummaryID, v))
}

// SummaryIDIn applies the In predicate on the "summary_id" field.
func SummaryIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldSummaryID, vs...))
}

// SummaryIDNotIn applies the NotIn predicate on the "summary_id" field.
func SummaryIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldSummaryID, vs...))
}

// SummaryIDGT applies the GT predicate on the "summary_id" field.
func SummaryIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldSummaryID, v))
}

// SummaryIDGTE applies the GTE predicate on the "summary_id" field.
func SummaryIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldSummaryID, v))
}

// SummaryIDLT applies the LT predicate on the "summary_id" field.
func SummaryIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldSummaryID, v))
}

// SummaryIDLTE applies the LTE predicate on the "summary_id" field.
func SummaryIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldSummaryID, v))
}

// SummaryIDContains applies the Contains predicate on the "summary_id" field.
func SummaryIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldSummaryID, v))
}

// SummaryIDHasPrefix applies the HasPrefix predicate on the "summary_id" field.
func SummaryIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldSummaryID, v))
}

// SummaryIDHasSuffix applies the HasSuffix predicate on the "summary_id" field.
func SummaryIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldSummaryID, v))
}

// SummaryIDEqualFold applies the EqualFold predicate on the "summary_id" field.
func SummaryIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldSummaryID, v))
}

// SummaryIDContainsFold applies the ContainsFold predicate on the "summary_id" field.
func SummaryIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldSummaryID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// TriggeredByGT applies the GT predicate on the "triggered_by" field.
func TriggeredByGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldTriggeredBy, v))
}

// TriggeredByGTE applies the GTE predicate on the "triggered_by" field.
func TriggeredByGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldTriggeredBy, v))
}

// TriggeredByLT applies the LT predicate on the "triggered_by" field.
func TriggeredByLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldTriggeredBy, v))
}

// TriggeredByLTE applies the LTE predicate on the "triggered_by" field.
func TriggeredByLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldTriggeredBy, v))
}

// TriggeredByContains applies the Contains predicate on the "triggered_by" field.
func TriggeredByContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldTriggeredBy, v))
}

// TriggeredByHasPrefix applies the HasPrefix predicate on the "triggered_by" field.
func TriggeredByHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldTriggeredBy, v))
}

// TriggeredByHasSuffix applies the HasSuffix predicate on the "triggered_by" field.
func TriggeredByHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldTriggeredBy, v))
}

// TriggeredByEqualFold applies the EqualFold predicate on the "triggered_by" field.
func TriggeredByEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldTriggeredBy, v))
}

// TriggeredByContainsFold applies the ContainsFold predicate on the "triggered_by" field.
func TriggeredByContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldTriggeredBy, v))
}

// TriggerDetailsIsNil applies the IsNil predicate on the "trigger_details" field.
func TriggerDetailsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldTriggerDetails))
}

// TriggerDetailsNotNil applies the NotNil predicate on the "trigger_details" field.
func TriggerDetailsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldTriggerDetails))
}

// CachedDataIsNil applies the IsNil predicate on the "cached_data" field.
func CachedDataIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCachedData))
}

// CachedDataNotNil applies the NotNil predicate on the "cached_data" field.
func CachedDataNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCachedData))
}

// DataHashEQ applies the EQ predicate on the "data_hash" field.
func DataHashEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldDataHash, v))
}

// DataHashNEQ applies the NEQ predicate on the "data_hash" field.
func DataHashNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldDataHash, v))
}

// DataHashIn applies the In predicate on the "data_hash" field.
func DataHashIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldDataHash, vs...))
}

// DataHashNotIn applies the NotIn predicate on the "data_hash" field.
func DataHashNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldDataHash, vs...))
}

// DataHashGT applies the GT predicate on the "data_hash" field.
func DataHashGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldDataHash, v))
}

// DataHashGTE applies the GTE predicate on the "data_hash" field.
func DataHashGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldDataHash, v))
}

// DataHashLT applies the LT predicate on the "data_hash" field.
func DataHashLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldDataHash, v))
}

// DataHashLTE applies the LTE predicate on the "data_hash" field.
func DataHashLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldDataHash, v))
}

// DataHashContains applies the Contains predicate on the "data_hash" field.
func DataHashContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldDataHash, v))
}

// DataHashHasPrefix applies the HasPrefix predicate on the "data_hash" field.
func DataHashHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldDataHash, v))
}

// DataHashHasSuffix applies the HasSuffix predicate on the "data_hash" field.
func DataHashHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldDataHash, v))
}

// DataHashIsNil applies the IsNil predicate on the "data_hash" field.
func DataHashIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldDataHash))
}

// DataHashNotNil applies the NotNil predicate on the "data_hash" field.
func DataHashNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldDataHash))
}

// DataHashEqualFold applies the EqualFold predicate on the "data_hash" field.
func DataHashEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldDataHash, v))
}

// DataHashContainsFold applies the ContainsFold predicate on the "data_hash" field.
func DataHashContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldDataHash, v))
}

// HasChangesEQ applies the EQ predicate on the "has_changes" field.
func HasChangesEQ(v bool) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldHasChanges, v))
}

// HasChangesNEQ applies the NEQ predicate on the "has_changes" field.
func HasChangesNEQ(v bool) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldHasChanges, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRelevanceScore, v))
}

// RelevanceScoreIsNil applies the IsNil predicate on the "relevance_score" field.
func RelevanceScoreIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldRelevanceScore))
}

// RelevanceScoreNotNil applies the NotNil predicate on the "relevance_score" field.
func RelevanceScoreNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldRelevanceScore))
}

// RelevanceReasonEQ applies the EQ predicate on the "relevance_reason" field.
func RelevanceReasonEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRelevanceReason, v))
}

// RelevanceReasonNEQ applies the NEQ predicate on the "relevance_reason" field.
func RelevanceReasonNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRelevanceReason, v))
}

// RelevanceReasonIn applies the In predicate on the "relevance_reason" field.
func RelevanceReasonIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRelevanceReason, vs...))
}

// RelevanceReasonNotIn applies the NotIn predicate on the "relevance_reason" field.
func RelevanceReasonNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRelevanceReason, vs...))
}

// RelevanceReasonGT applies the GT predicate on the "relevance_reason" field.
func RelevanceReasonGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRelevanceReason, v))
}

// RelevanceReasonGTE applies the GTE predicate on the "relevance_reason" field.
func RelevanceReasonGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRelevanceReason, v))
}

// RelevanceReasonLT applies the LT predicate on the "relevance_reason" field.
func RelevanceReasonLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRelevanceReason, v))
}

// RelevanceReasonLTE applies the LTE predicate on the "relevance_reason" field.
func RelevanceReasonLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRelevanceReason, v))
}

// RelevanceReasonContains applies the Contains predicate on the "relevance_reason" field.
func RelevanceReasonContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldRelevanceReason, v))
}

// RelevanceReasonHasPrefix applies the HasPrefix predicate on the "relevance_reason" field.
func RelevanceReasonHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldRelevanceReason, v))
}

// RelevanceReasonHasSuffix applies the HasSuffix predicate on the "relevance_reason" field.
func RelevanceReasonHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldRelevanceReason, v))
}

// RelevanceReasonIsNil applies the IsNil predicate on the "relevance_reason" field.
func RelevanceReasonIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldRelevanceReason))
}

// RelevanceReasonNotNil applies the NotNil predicate on the "relevance_reason" field.
func RelevanceReasonNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldRelevanceReason))
}

// RelevanceReasonEqualFold applies the EqualFold predicate on the "relevance_reason" field.
func RelevanceReasonEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldRelevanceReason, v))
}

// RelevanceReasonContainsFold applies the ContainsFold predicate on the "relevance_reason" field.
func RelevanceReasonContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldRelevanceReason, v))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldSkipReason, v))
}

// ExpansionSuggestionsIsNil applies the IsNil predicate on the "expansion_suggestions" field.
func ExpansionSuggestionsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldExpansionSuggestions))
}

// ExpansionSuggestionsNotNil applies the NotNil predicate on the "expansion_suggestions" field.
func ExpansionSuggestionsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldExpansionSuggestions))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldDurationMs))
}

// HasSummary applies the HasEdge predicate on the "summary" edge.
func HasSummary() predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SummaryTable, SummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummaryWith applies the HasEdge predicate on the "summary" edge with a given conditions (other predicates).
func HasSummaryWith(preds ...predicate.Summary) predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := newSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.NotPredicates(p))
}
