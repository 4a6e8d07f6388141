package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRun_Hourly(t *testing.T) {
	from := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	next, err := NextRun("0 * * * *", from)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), next)
}

func TestNextRun_DailyAtSix(t *testing.T) {
	from := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	next, err := NextRun("0 6 * * *", from)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC), next)
}

func TestNextRun_StrictlyAfterFrom(t *testing.T) {
	from := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	next, err := NextRun("0 6 * * *", from)
	require.NoError(t, err)

	assert.True(t, next.After(from))
}

func TestNextRun_InvalidExpression(t *testing.T) {
	_, err := NextRun("every tuesday", time.Now())
	assert.Error(t, err)

	_, err = NextRun("", time.Now())
	assert.Error(t, err)

	// 6-field (seconds) expressions are not standard cron.
	_, err = NextRun("0 0 6 * * *", time.Now())
	assert.Error(t, err)
}
