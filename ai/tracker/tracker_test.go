package tracker

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackUsage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tr := NewUsageTracker(db, 1)

	now := time.Now()
	tokens := 100
	usage := &ModelUsage{
		RunID:            "run-abc",
		OperationType:    "function-doc",
		EntityType:       "file",
		EntityID:         "crud.py",
		ModelName:        "llama3",
		ModelProvider:    "local",
		RequestTimestamp: now,
		TokensUsed:       &tokens,
		Success:          true,
	}

	mock.ExpectExec(`INSERT INTO ai_model_usage`).
		WithArgs(
			usage.RunID,
			usage.OperationType,
			usage.EntityType,
			usage.EntityID,
			usage.ModelName,
			usage.ModelProvider,
			usage.RequestTimestamp,
			sqlmock.AnyArg(), // response_timestamp
			usage.TokensUsed,
			usage.Success,
			sqlmock.AnyArg(), // error_message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, tr.TrackUsage(usage))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUsageStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tr := NewUsageTracker(db, 0)
	since := time.Now().Add(-24 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"total_requests", "successful_requests", "total_tokens", "unique_models",
	}).AddRow(10, 8, 4200, 2)

	mock.ExpectQuery(`SELECT\s+COUNT\(\*\) as total_requests`).
		WithArgs(since).
		WillReturnRows(rows)

	stats, err := tr.GetUsageStats(since)
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalRequests)
	assert.Equal(t, 8, stats.SuccessfulRequests)
	assert.Equal(t, 4200, stats.TotalTokens)
	assert.Equal(t, 2, stats.UniqueModels)
	assert.InDelta(t, 0.8, stats.SuccessRate, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetModelBreakdown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tr := NewUsageTracker(db, 0)
	since := time.Now().Add(-7 * 24 * time.Hour)

	rows := sqlmock.NewRows([]string{"model_name", "model_provider", "request_count", "total_tokens"}).
		AddRow("llama3", "local", 30, 9000).
		AddRow("openai/gpt-4o-mini", "openrouter", 4, 1200)

	mock.ExpectQuery(`SELECT\s+model_name`).
		WithArgs(since).
		WillReturnRows(rows)

	breakdown, err := tr.GetModelBreakdown(since)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "llama3", breakdown[0].ModelName)
	assert.Equal(t, 30, breakdown[0].RequestCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
