package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muniscope/muniscope/ent/execution"
	"github.com/muniscope/muniscope/pkg/config"
	"github.com/muniscope/muniscope/pkg/services"
	testdb "github.com/muniscope/muniscope/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_PrunesOnStart(t *testing.T) {
	ctx := context.Background()
	db := testdb.NewTestClient(t)

	sum, err := db.Client.Summary.Create().
		SetID(uuid.New().String()).
		SetOwnerID("user-1").
		SetName("s").
		Save(ctx)
	require.NoError(t, err)

	old := time.Now().Add(-120 * 24 * time.Hour)
	_, err = db.Client.Execution.Create().
		SetID(uuid.New().String()).
		SetSummaryID(sum.ID).
		SetStatus(execution.StatusFailed).
		SetTriggeredBy("manual").
		SetStartedAt(old).
		SetCompletedAt(old.Add(time.Second)).
		Save(ctx)
	require.NoError(t, err)

	cfg := config.DefaultRetentionConfig()
	cfg.CleanupInterval = time.Hour // only the startup pass matters here

	svc := NewService(cfg, services.NewExecutionService(db.Client))
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		count, err := db.Client.Execution.Query().Count(ctx)
		return err == nil && count == 0
	}, 5*time.Second, 50*time.Millisecond)
}

func TestCleanupService_StopIsIdempotentBeforeStart(t *testing.T) {
	db := testdb.NewTestClient(t)
	svc := NewService(config.DefaultRetentionConfig(), services.NewExecutionService(db.Client))

	// Stop without Start must not panic or block.
	svc.Stop()
	assert.Nil(t, svc.cancel)
}
