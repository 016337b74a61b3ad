package summarize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodoc-ai/autodoc/ai"
	"github.com/autodoc-ai/autodoc/errors"
	"github.com/autodoc-ai/autodoc/syntax"
)

type scriptedClient struct {
	replies []string
	err     error

	requests []ai.ChatRequest
}

func (c *scriptedClient) Chat(_ context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	reply := c.replies[0]
	if len(c.replies) > 1 {
		c.replies = c.replies[1:]
	}
	return &ai.ChatResponse{Content: reply, Usage: ai.Usage{TotalTokens: 42}}, nil
}

func (c *scriptedClient) ModelName() string { return "test-model" }
func (c *scriptedClient) Name() string      { return "scripted" }

func TestFunctionDoc(t *testing.T) {
	t.Run("plain reply passes through", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"Converts temperatures."}}
		g := New(client, 0)

		doc, err := g.FunctionDoc(context.Background(), syntax.LanguagePython, "def f(): pass")
		require.NoError(t, err)
		assert.Equal(t, "Converts temperatures.", doc)

		require.Len(t, client.requests, 1)
		assert.Contains(t, client.requests[0].SystemPrompt, "Google docstring style")
		assert.Contains(t, client.requests[0].UserPrompt, "def f(): pass")
	})

	t.Run("fenced reply is unwrapped", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"Here you go:\n```\nDoes things.\n```\nEnjoy!"}}
		g := New(client, 0)

		doc, err := g.FunctionDoc(context.Background(), syntax.LanguagePython, "def f(): pass")
		require.NoError(t, err)
		assert.Equal(t, "Does things.", doc)
	})

	t.Run("docstring-delimited reply is unwrapped", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"'''\nDoes things.\n'''"}}
		g := New(client, 0)

		doc, err := g.FunctionDoc(context.Background(), syntax.LanguagePython, "def f(): pass")
		require.NoError(t, err)
		assert.Equal(t, "Does things.", doc)
	})

	t.Run("swift gets the swift instruction", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"/// Doc."}}
		g := New(client, 0)

		_, err := g.FunctionDoc(context.Background(), syntax.LanguageSwift, "func f() {}")
		require.NoError(t, err)
		assert.Contains(t, client.requests[0].SystemPrompt, "Apple and Swift guidelines")
	})

	t.Run("transport error wraps generation failure", func(t *testing.T) {
		client := &scriptedClient{err: errors.New("boom")}
		g := New(client, 0)

		_, err := g.FunctionDoc(context.Background(), syntax.LanguagePython, "def f(): pass")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrGenerationFailure))
	})

	t.Run("empty reply is a generation failure", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"   \n"}}
		g := New(client, 0)

		_, err := g.FunctionDoc(context.Background(), syntax.LanguagePython, "def f(): pass")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrGenerationFailure))
	})
}

func TestCombinedSummary(t *testing.T) {
	client := &scriptedClient{replies: []string{"Greets and parts."}}
	g := New(client, 0)

	doc, err := g.CombinedSummary(context.Background(), syntax.LanguagePython, []string{"Greets.", "Parts."})
	require.NoError(t, err)
	assert.Equal(t, "Greets and parts.", doc)

	assert.Contains(t, client.requests[0].UserPrompt, "Greets.")
	assert.Contains(t, client.requests[0].UserPrompt, "Parts.")
}

func TestImportStatement(t *testing.T) {
	t.Run("fenced import wins", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"Sure:\n```\nfrom calc import Calc\n```"}}
		g := New(client, 0)

		stmt, err := g.ImportStatement(context.Background(), "calc.py", "test/test_calc.py")
		require.NoError(t, err)
		assert.Equal(t, "from calc import Calc", stmt)
		assert.Contains(t, client.requests[0].UserPrompt, "calc.py")
		assert.Contains(t, client.requests[0].UserPrompt, "test/test_calc.py")
	})

	t.Run("bare reply used as-is", func(t *testing.T) {
		client := &scriptedClient{replies: []string{"from calc import Calc\n"}}
		g := New(client, 0)

		stmt, err := g.ImportStatement(context.Background(), "calc.py", "test/test_calc.py")
		require.NoError(t, err)
		assert.Equal(t, "from calc import Calc", stmt)
	})
}

func TestRateLimiterHonorsContext(t *testing.T) {
	client := &scriptedClient{replies: []string{"ok"}}
	g := New(client, 1) // one request a minute

	_, err := g.Complete(context.Background(), "", "first")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Complete(ctx, "", "second")
	require.Error(t, err)
}
