package provider

import (
	"context"
	"time"

	"github.com/autodoc-ai/autodoc/ai"
	"github.com/autodoc-ai/autodoc/ai/tracker"
	"github.com/autodoc-ai/autodoc/logger"
)

// WithTracking wraps a client so every Chat call is recorded in the usage
// tracker. Tracking failures are logged and never fail the generation call.
func WithTracking(client ai.Client, t *tracker.UsageTracker, runID, operationType, entityType, entityID string) ai.Client {
	if t == nil {
		return client
	}
	return &trackedClient{
		inner:         client,
		tracker:       t,
		runID:         runID,
		operationType: operationType,
		entityType:    entityType,
		entityID:      entityID,
	}
}

type trackedClient struct {
	inner         ai.Client
	tracker       *tracker.UsageTracker
	runID         string
	operationType string
	entityType    string
	entityID      string
}

func (tc *trackedClient) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	requestTime := time.Now()
	resp, err := tc.inner.Chat(ctx, req)
	responseTime := time.Now()

	usage := &tracker.ModelUsage{
		RunID:             tc.runID,
		OperationType:     tc.operationType,
		EntityType:        tc.entityType,
		EntityID:          tc.entityID,
		ModelName:         tc.inner.ModelName(),
		ModelProvider:     tc.inner.Name(),
		RequestTimestamp:  requestTime,
		ResponseTimestamp: &responseTime,
		Success:           err == nil,
	}
	if err != nil {
		msg := err.Error()
		usage.ErrorMessage = &msg
	} else if resp.Usage.TotalTokens > 0 {
		tokens := resp.Usage.TotalTokens
		usage.TokensUsed = &tokens
	}

	if trackErr := tc.tracker.TrackUsage(usage); trackErr != nil {
		logger.Warnw("failed to record AI usage",
			logger.FieldError, trackErr,
			logger.FieldRunID, tc.runID,
		)
	}

	return resp, err
}

func (tc *trackedClient) ModelName() string { return tc.inner.ModelName() }
func (tc *trackedClient) Name() string      { return tc.inner.Name() }
