// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "region_code", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "entity_type_id", Type: field.TypeString},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entities_entities_children",
				Columns:    []*schema.Column{EntitiesColumns[11]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "entities_entity_types_entities",
				Columns:    []*schema.Column{EntitiesColumns[12]},
				RefColumns: []*schema.Column{EntityTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_entity_type_id_active",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[12], EntitiesColumns[8]},
			},
			{
				Name:    "entity_region_code",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[2]},
			},
		},
	}
	// EntityTypesColumns holds the columns for the "entity_types" table.
	EntityTypesColumns = []*schema.Column{
		{Name: "entity_type_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
	}
	// EntityTypesTable holds the schema information for the "entity_types" table.
	EntityTypesTable = &schema.Table{
		Name:       "entity_types",
		Columns:    EntityTypesColumns,
		PrimaryKey: []*schema.Column{EntityTypesColumns[0]},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "skipped"}, Default: "running"},
		{Name: "triggered_by", Type: field.TypeString},
		{Name: "trigger_details", Type: field.TypeJSON, Nullable: true},
		{Name: "cached_data", Type: field.TypeJSON, Nullable: true},
		{Name: "data_hash", Type: field.TypeString, Nullable: true},
		{Name: "has_changes", Type: field.TypeBool, Default: false},
		{Name: "relevance_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "relevance_reason", Type: field.TypeString, Nullable: true},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "expansion_suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "summary_id", Type: field.TypeString},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executions_summaries_executions",
				Columns:    []*schema.Column{ExecutionsColumns[15]},
				RefColumns: []*schema.Column{SummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "execution_summary_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[15], ExecutionsColumns[12]},
			},
			{
				Name:    "execution_summary_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[15], ExecutionsColumns[1]},
			},
		},
	}
	// FacetTypesColumns holds the columns for the "facet_types" table.
	FacetTypesColumns = []*schema.Column{
		{Name: "facet_type_id", Type: field.TypeString, Unique: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value_kind", Type: field.TypeEnum, Enums: []string{"text", "list", "structured"}, Default: "text"},
	}
	// FacetTypesTable holds the schema information for the "facet_types" table.
	FacetTypesTable = &schema.Table{
		Name:       "facet_types",
		Columns:    FacetTypesColumns,
		PrimaryKey: []*schema.Column{FacetTypesColumns[0]},
	}
	// FacetValuesColumns holds the columns for the "facet_values" table.
	FacetValuesColumns = []*schema.Column{
		{Name: "facet_value_id", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "facet_type_id", Type: field.TypeString},
	}
	// FacetValuesTable holds the schema information for the "facet_values" table.
	FacetValuesTable = &schema.Table{
		Name:       "facet_values",
		Columns:    FacetValuesColumns,
		PrimaryKey: []*schema.Column{FacetValuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "facet_values_entities_facet_values",
				Columns:    []*schema.Column{FacetValuesColumns[5]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "facet_values_facet_types_values",
				Columns:    []*schema.Column{FacetValuesColumns[6]},
				RefColumns: []*schema.Column{FacetTypesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "facetvalue_entity_id_facet_type_id",
				Unique:  false,
				Columns: []*schema.Column{FacetValuesColumns[5], FacetValuesColumns[6]},
			},
			{
				Name:    "facetvalue_facet_type_id",
				Unique:  false,
				Columns: []*schema.Column{FacetValuesColumns[6]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "theme", Type: field.TypeString, Nullable: true},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"manual", "cron", "crawl"}, Default: "manual"},
		{Name: "cron_expression", Type: field.TypeString, Nullable: true},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "relevance_check_enabled", Type: field.TypeBool, Default: false},
		{Name: "relevance_threshold", Type: field.TypeFloat64, Default: 0.5},
		{Name: "auto_expand_enabled", Type: field.TypeBool, Default: false},
		{Name: "last_data_hash", Type: field.TypeString, Nullable: true},
		{Name: "last_executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summary_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[1]},
			},
			{
				Name:    "summary_trigger_type_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[5], SummariesColumns[7]},
			},
		},
	}
	// WidgetsColumns holds the columns for the "widgets" table.
	WidgetsColumns = []*schema.Column{
		{Name: "widget_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "query_config", Type: field.TypeJSON},
		{Name: "visualization_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "summary_id", Type: field.TypeString},
	}
	// WidgetsTable holds the schema information for the "widgets" table.
	WidgetsTable = &schema.Table{
		Name:       "widgets",
		Columns:    WidgetsColumns,
		PrimaryKey: []*schema.Column{WidgetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "widgets_summaries_widgets",
				Columns:    []*schema.Column{WidgetsColumns[7]},
				RefColumns: []*schema.Column{SummariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "widget_summary_id_display_order",
				Unique:  false,
				Columns: []*schema.Column{WidgetsColumns[7], WidgetsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EntitiesTable,
		EntityTypesTable,
		ExecutionsTable,
		FacetTypesTable,
		FacetValuesTable,
		SummariesTable,
		WidgetsTable,
	}
)

func init() {
	EntitiesTable.ForeignKeys[0].RefTable = EntitiesTable
	EntitiesTable.ForeignKeys[1].RefTable = EntityTypesTable
	ExecutionsTable.ForeignKeys[0].RefTable = SummariesTable
	FacetValuesTable.ForeignKeys[0].RefTable = EntitiesTable
	FacetValuesTable.ForeignKeys[1].RefTable = FacetTypesTable
	WidgetsTable.ForeignKeys[0].RefTable = SummariesTable
}
