// Package tracker records text-generation usage (model, tokens, latency,
// success) per pipeline run in a local SQLite database.
package tracker

import (
	"database/sql"
	"time"

	"github.com/autodoc-ai/autodoc/errors"
)

// ModelUsage represents a record of AI model usage
type ModelUsage struct {
	ID                int        `json:"id" db:"id"`
	RunID             string     `json:"run_id" db:"run_id"`
	OperationType     string     `json:"operation_type" db:"operation_type"`
	EntityType        string     `json:"entity_type" db:"entity_type"`
	EntityID          string     `json:"entity_id" db:"entity_id"`
	ModelName         string     `json:"model_name" db:"model_name"`
	ModelProvider     string     `json:"model_provider" db:"model_provider"`
	RequestTimestamp  time.Time  `json:"request_timestamp" db:"request_timestamp"`
	ResponseTimestamp *time.Time `json:"response_timestamp,omitempty" db:"response_timestamp"`
	TokensUsed        *int       `json:"tokens_used,omitempty" db:"tokens_used"`
	Success           bool       `json:"success" db:"success"`
	ErrorMessage      *string    `json:"error_message,omitempty" db:"error_message"`
}

// UsageStats aggregates usage over a time window
type UsageStats struct {
	TotalRequests      int     `json:"total_requests"`
	SuccessfulRequests int     `json:"successful_requests"`
	TotalTokens        int     `json:"total_tokens"`
	UniqueModels       int     `json:"unique_models"`
	SuccessRate        float64 `json:"success_rate"`
}

// ModelBreakdown aggregates usage per model
type ModelBreakdown struct {
	ModelName     string `json:"model_name"`
	ModelProvider string `json:"model_provider"`
	RequestCount  int    `json:"request_count"`
	TotalTokens   int    `json:"total_tokens"`
}

// UsageTracker provides functionality to track AI model usage
type UsageTracker struct {
	db        *sql.DB
	verbosity int
}

// NewUsageTracker creates a new AI usage tracker
func NewUsageTracker(db *sql.DB, verbosity int) *UsageTracker {
	return &UsageTracker{
		db:        db,
		verbosity: verbosity,
	}
}

// TrackUsage records AI model usage in the database
func (t *UsageTracker) TrackUsage(usage *ModelUsage) error {
	query := `
		INSERT INTO ai_model_usage (
			run_id, operation_type, entity_type, entity_id, model_name,
			model_provider, request_timestamp, response_timestamp,
			tokens_used, success, error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := t.db.Exec(query,
		usage.RunID, usage.OperationType, usage.EntityType, usage.EntityID,
		usage.ModelName, usage.ModelProvider,
		usage.RequestTimestamp, usage.ResponseTimestamp,
		usage.TokensUsed, usage.Success, usage.ErrorMessage,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert usage record")
	}
	return nil
}

// GetUsageStats returns usage statistics for a given time period
func (t *UsageTracker) GetUsageStats(since time.Time) (*UsageStats, error) {
	query := `
		SELECT
			COUNT(*) as total_requests,
			COUNT(CASE WHEN success = 1 THEN 1 END) as successful_requests,
			COALESCE(SUM(COALESCE(tokens_used, 0)), 0) as total_tokens,
			COUNT(DISTINCT model_name) as unique_models
		FROM ai_model_usage
		WHERE request_timestamp >= ?`

	var stats UsageStats
	err := t.db.QueryRow(query, since).Scan(
		&stats.TotalRequests, &stats.SuccessfulRequests,
		&stats.TotalTokens, &stats.UniqueModels,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query usage stats")
	}

	if stats.TotalRequests > 0 {
		stats.SuccessRate = float64(stats.SuccessfulRequests) / float64(stats.TotalRequests)
	}

	return &stats, nil
}

// GetModelBreakdown returns usage broken down by model
func (t *UsageTracker) GetModelBreakdown(since time.Time) ([]ModelBreakdown, error) {
	query := `
		SELECT
			model_name,
			model_provider,
			COUNT(*) as request_count,
			SUM(COALESCE(tokens_used, 0)) as total_tokens
		FROM ai_model_usage
		WHERE request_timestamp >= ?
		GROUP BY model_name, model_provider
		ORDER BY request_count DESC`

	rows, err := t.db.Query(query, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query model breakdown")
	}
	defer rows.Close()

	var breakdown []ModelBreakdown
	for rows.Next() {
		var b ModelBreakdown
		if err := rows.Scan(&b.ModelName, &b.ModelProvider, &b.RequestCount, &b.TotalTokens); err != nil {
			return nil, errors.Wrap(err, "failed to scan breakdown row")
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}
