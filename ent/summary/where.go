// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muniscope/muniscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldName, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPrompt, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTheme, v))
}

// CronExpression applies equality check predicate on the "cron_expression" field. It's identical to CronExpressionEQ.
func CronExpression(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCronExpression, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldNextRunAt, v))
}

// RelevanceCheckEnabled applies equality check predicate on the "relevance_check_enabled" field. It's identical to RelevanceCheckEnabledEQ.
func RelevanceCheckEnabled(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRelevanceCheckEnabled, v))
}

// RelevanceThreshold applies equality check predicate on the "relevance_threshold" field. It's identical to RelevanceThresholdEQ.
func RelevanceThreshold(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRelevanceThreshold, v))
}

// AutoExpandEnabled applies equality check predicate on the "auto_expand_enabled" field. It's identical to AutoExpandEnabledEQ.
func AutoExpandEnabled(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldAutoExpandEnabled, v))
}

// LastDataHash applies equality check predicate on the "last_data_hash" field. It's identical to LastDataHashEQ.
func LastDataHash(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldLastDataHash, v))
}

// LastExecutedAt applies equality check predicate on the "last_executed_at" field. It's identical to LastExecutedAtEQ.
func LastExecutedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldLastExecutedAt, v))
}

// ExecutionCount applies equality check predicate on the "execution_count" field. It's identical to ExecutionCountEQ.
func ExecutionCount(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldExecutionCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldDeletedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldName, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldPrompt, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeIsNil applies the IsNil predicate on the "theme" field.
func ThemeIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldTheme))
}

// ThemeNotNil applies the NotNil predicate on the "theme" field.
func ThemeNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldTheme))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldTheme, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldTriggerType, vs...))
}

// CronExpressionEQ applies the EQ predicate on the "cron_expression" field.
func CronExpressionEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCronExpression, v))
}

// CronExpressionNEQ applies the NEQ predicate on the "cron_expression" field.
func CronExpressionNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCronExpression, v))
}

// CronExpressionIn applies the In predicate on the "cron_expression" field.
func CronExpressionIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCronExpression, vs...))
}

// CronExpressionNotIn applies the NotIn predicate on the "cron_expression" field.
func CronExpressionNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCronExpression, vs...))
}

// CronExpressionGT applies the GT predicate on the "cron_expression" field.
func CronExpressionGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCronExpression, v))
}

// CronExpressionGTE applies the GTE predicate on the "cron_expression" field.
func CronExpressionGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCronExpression, v))
}

// CronExpressionLT applies the LT predicate on the "cron_expression" field.
func CronExpressionLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCronExpression, v))
}

// CronExpressionLTE applies the LTE predicate on the "cron_expression" field.
func CronExpressionLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCronExpression, v))
}

// CronExpressionContains applies the Contains predicate on the "cron_expression" field.
func CronExpressionContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldCronExpression, v))
}

// CronExpressionHasPrefix applies the HasPrefix predicate on the "cron_expression" field.
func CronExpressionHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldCronExpression, v))
}

// CronExpressionHasSuffix applies the HasSuffix predicate on the "cron_expression" field.
func CronExpressionHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldCronExpression, v))
}

// CronExpressionIsNil applies the IsNil predicate on the "cron_expression" field.
func CronExpressionIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldCronExpression))
}

// CronExpressionNotNil applies the NotNil predicate on the "cron_expression" field.
func CronExpressionNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldCronExpression))
}

// CronExpressionEqualFold applies the EqualFold predicate on the "cron_expression" field.
func CronExpressionEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldCronExpression, v))
}

// CronExpressionContainsFold applies the ContainsFold predicate on the "cron_expression" field.
func CronExpressionContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldCronExpression, v))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldNextRunAt))
}

// RelevanceCheckEnabledEQ applies the EQ predicate on the "relevance_check_enabled" field.
func RelevanceCheckEnabledEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRelevanceCheckEnabled, v))
}

// RelevanceCheckEnabledNEQ applies the NEQ predicate on the "relevance_check_enabled" field.
func RelevanceCheckEnabledNEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldRelevanceCheckEnabled, v))
}

// RelevanceThresholdEQ applies the EQ predicate on the "relevance_threshold" field.
func RelevanceThresholdEQ(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRelevanceThreshold, v))
}

// RelevanceThresholdNEQ applies the NEQ predicate on the "relevance_threshold" field.
func RelevanceThresholdNEQ(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldRelevanceThreshold, v))
}

// RelevanceThresholdIn applies the In predicate on the "relevance_threshold" field.
func RelevanceThresholdIn(vs ...float64) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldRelevanceThreshold, vs...))
}

// RelevanceThresholdNotIn applies the NotIn predicate on the "relevance_threshold" field.
func RelevanceThresholdNotIn(vs ...float64) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldRelevanceThreshold, vs...))
}

// RelevanceThresholdGT applies the GT predicate on the "relevance_threshold" field.
func RelevanceThresholdGT(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldRelevanceThreshold, v))
}

// RelevanceThresholdGTE applies the GTE predicate on the "relevance_threshold" field.
func RelevanceThresholdGTE(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldRelevanceThreshold, v))
}

// RelevanceThresholdLT applies the LT predicate on the "relevance_threshold" field.
func RelevanceThresholdLT(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldRelevanceThreshold, v))
}

// RelevanceThresholdLTE applies the LTE predicate on the "relevance_threshold" field.
func RelevanceThresholdLTE(v float64) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldRelevanceThreshold, v))
}

// AutoExpandEnabledEQ applies the EQ predicate on the "auto_expand_enabled" field.
func AutoExpandEnabledEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldAutoExpandEnabled, v))
}

// AutoExpandEnabledNEQ applies the NEQ predicate on the "auto_expand_enabled" field.
func AutoExpandEnabledNEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldAutoExpandEnabled, v))
}

// LastDataHashEQ applies the EQ predicate on the "last_data_hash" field.
func LastDataHashEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldLastDataHash, v))
}

// LastDataHashNEQ applies the NEQ predicate on the "last_data_hash" field.
func LastDataHashNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldLastDataHash, v))
}

// LastDataHashIn applies the In predicate on the "last_data_hash" field.
func LastDataHashIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldLastDataHash, vs...))
}

// LastDataHashNotIn applies the NotIn predicate on the "last_data_hash" field.
func LastDataHashNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldLastDataHash, vs...))
}

// LastDataHashGT applies the GT predicate on the "last_data_hash" field.
func LastDataHashGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldLastDataHash, v))
}

// LastDataHashGTE applies the GTE predicate on the "last_data_hash" field.
func LastDataHashGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldLastDataHash, v))
}

// LastDataHashLT applies the LT predicate on the "last_data_hash" field.
func LastDataHashLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldLastDataHash, v))
}

// LastDataHashLTE applies the LTE predicate on the "last_data_hash" field.
func LastDataHashLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldLastDataHash, v))
}

// LastDataHashContains applies the Contains predicate on the "last_data_hash" field.
func LastDataHashContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldLastDataHash, v))
}

// LastDataHashHasPrefix applies the HasPrefix predicate on the "last_data_hash" field.
func LastDataHashHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldLastDataHash, v))
}

// LastDataHashHasSuffix applies the HasSuffix predicate on the "last_data_hash" field.
func LastDataHashHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldLastDataHash, v))
}

// LastDataHashIsNil applies the IsNil predicate on the "last_data_hash" field.
func LastDataHashIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldLastDataHash))
}

// LastDataHashNotNil applies the NotNil predicate on the "last_data_hash" field.
func LastDataHashNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldLastDataHash))
}

// LastDataHashEqualFold applies the EqualFold predicate on the "last_data_hash" field.
func LastDataHashEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldLastDataHash, v))
}

// LastDataHashContainsFold applies the ContainsFold predicate on the "last_data_hash" field.
func LastDataHashContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldLastDataHash, v))
}

// LastExecutedAtEQ applies the EQ predicate on the "last_executed_at" field.
func LastExecutedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldLastExecutedAt, v))
}

// LastExecutedAtNEQ applies the NEQ predicate on the "last_executed_at" field.
func LastExecutedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldLastExecutedAt, v))
}

// LastExecutedAtIn applies the In predicate on the "last_executed_at" field.
func LastExecutedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldLastExecutedAt, vs...))
}

// LastExecutedAtNotIn applies the NotIn predicate on the "last_executed_at" field.
func LastExecutedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldLastExecutedAt, vs...))
}

// LastExecutedAtGT applies the GT predicate on the "last_executed_at" field.
func LastExecutedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldLastExecutedAt, v))
}

// LastExecutedAtGTE applies the GTE predicate on the "last_executed_at" field.
func LastExecutedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldLastExecutedAt, v))
}

// LastExecutedAtLT applies the LT predicate on the "last_executed_at" field.
func LastExecutedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldLastExecutedAt, v))
}

// LastExecutedAtLTE applies the LTE predicate on the "last_executed_at" field.
func LastExecutedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldLastExecutedAt, v))
}

// LastExecutedAtIsNil applies the IsNil predicate on the "last_executed_at" field.
func LastExecutedAtIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldLastExecutedAt))
}

// LastExecutedAtNotNil applies the NotNil predicate on the "last_executed_at" field.
func LastExecutedAtNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldLastExecutedAt))
}

// ExecutionCountEQ applies the EQ predicate on the "execution_count" field.
func ExecutionCountEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldExecutionCount, v))
}

// ExecutionCountNEQ applies the NEQ predicate on the "execution_count" field.
func ExecutionCountNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldExecutionCount, v))
}

// ExecutionCountIn applies the In predicate on the "execution_count" field.
func ExecutionCountIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldExecutionCount, vs...))
}

// ExecutionCountNotIn applies the NotIn predicate on the "execution_count" field.
func ExecutionCountNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldExecutionCount, vs...))
}

// ExecutionCountGT applies the GT predicate on the "execution_count" field.
func ExecutionCountGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldExecutionCount, v))
}

// ExecutionCountGTE applies the GTE predicate on the "execution_count" field.
func ExecutionCountGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldExecutionCount, v))
}

// ExecutionCountLT applies the LT predicate on the "execution_count" field.
func ExecutionCountLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldExecutionCount, v))
}

// ExecutionCountLTE applies the LTE predicate on the "execution_count" field.
func ExecutionCountLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldExecutionCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldDeletedAt))
}

// HasWidgets applies the HasEdge predicate on the "widgets" edge.
func HasWidgets() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WidgetsTable, WidgetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWidgetsWith applies the HasEdge predicate on the "widgets" edge with a given conditions (other predicates).
func HasWidgetsWith(preds ...predicate.Widget) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newWidgetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.Execution) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
