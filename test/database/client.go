// Package database provides test database clients backed by the shared
// test schema setup in test/util.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/muniscope/muniscope/pkg/database"
	"github.com/muniscope/muniscope/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// GIN indexes are created outside ent migrations, mirror that here
	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
