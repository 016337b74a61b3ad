// Package summarize turns source snippets into documentation text through a
// chat model, throttled to the configured request rate.
package summarize

import (
	"context"
	"strings"

	"golang.org/x/time/rate"

	"github.com/autodoc-ai/autodoc/ai"
	"github.com/autodoc-ai/autodoc/comment"
	"github.com/autodoc-ai/autodoc/errors"
	"github.com/autodoc-ai/autodoc/logger"
	"github.com/autodoc-ai/autodoc/syntax"
)

// Generator answers documentation prompts through an ai.Client. All callers
// in a run share one Generator so the rate limit covers every request.
type Generator struct {
	client  ai.Client
	limiter *rate.Limiter
}

// New builds a Generator. requestsPerMinute of zero disables throttling.
func New(client ai.Client, requestsPerMinute int) *Generator {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	}
	return &Generator{client: client, limiter: limiter}
}

// Complete sends one prompt pair and returns the raw reply text. Failures
// and empty replies wrap ErrGenerationFailure so callers can degrade.
func (g *Generator) Complete(ctx context.Context, system, user string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "waiting for request slot")
	}

	resp, err := g.client.Chat(ctx, ai.ChatRequest{
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return "", errors.Wrapf(errors.ErrGenerationFailure, "chat request: %v", err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", errors.Wrap(errors.ErrGenerationFailure, "model returned empty reply")
	}

	logger.Debugw("completion received",
		logger.FieldModel, g.client.ModelName(),
		logger.FieldProvider, g.client.Name(),
		logger.FieldTokens, resp.Usage.TotalTokens,
	)
	return resp.Content, nil
}

// FunctionDoc writes a docstring for one function or property.
func (g *Generator) FunctionDoc(ctx context.Context, lang syntax.Language, code string) (string, error) {
	reply, err := g.Complete(ctx, functionDocSystem(lang), functionDocUser(code))
	if err != nil {
		return "", err
	}
	return extractPayload(reply), nil
}

// CombinedSummary condenses member docstrings into one class-level comment.
func (g *Generator) CombinedSummary(ctx context.Context, lang syntax.Language, docs []string) (string, error) {
	reply, err := g.Complete(ctx, combinedSummarySystem, combinedSummaryUser(docs))
	if err != nil {
		return "", err
	}
	return extractPayload(reply), nil
}

// Summarize is the degraded path: a plain summary of raw code with no
// structured sections.
func (g *Generator) Summarize(ctx context.Context, lang syntax.Language, code string) (string, error) {
	reply, err := g.Complete(ctx, summarizeSystem, summarizeUser(code))
	if err != nil {
		return "", err
	}
	return extractPayload(reply), nil
}

// ImportStatement asks for the import line a generated test file needs to
// reach the code under test.
func (g *Generator) ImportStatement(ctx context.Context, codePath, testPath string) (string, error) {
	reply, err := g.Complete(ctx, "", importStatementUser(codePath, testPath))
	if err != nil {
		return "", err
	}
	code := comment.ExtractFenced(reply)
	if code == "" {
		code = reply
	}
	return strings.TrimSpace(code), nil
}

// extractPayload pulls the usable documentation text out of a model reply.
// Fenced code blocks win, then docstring-delimited blocks, then the raw
// reply.
func extractPayload(reply string) string {
	if strings.Contains(reply, "```") {
		if fenced := comment.ExtractFenced(reply); strings.TrimSpace(fenced) != "" {
			return strings.TrimRight(fenced, "\n")
		}
	}
	if strings.Contains(reply, "'''") {
		if doc := comment.ExtractDocstring(reply); strings.TrimSpace(doc) != "" {
			return strings.TrimRight(doc, "\n")
		}
	}
	return strings.TrimSpace(reply)
}
