package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates jsonb GIN indexes that Ent schema annotations
// cannot express. Widget queries filter entities by tag overlap and the
// extraction pipeline searches facet payloads, both of which need these.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_entities_tags_gin
		ON entities USING gin(tags jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create entities tags GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_facet_values_value_gin
		ON facet_values USING gin(value jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create facet_values value GIN index: %w", err)
	}

	return nil
}
