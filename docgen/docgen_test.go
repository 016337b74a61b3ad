package docgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodoc-ai/autodoc/errors"
)

type fakeCompleter struct {
	reply string
	err   error

	system string
	user   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerate(t *testing.T) {
	t.Run("returns trimmed markdown with trailing newline", func(t *testing.T) {
		c := &fakeCompleter{reply: "\n## calc\n\nAdds numbers.\n\n"}
		md, err := Generate(context.Background(), c, "def add(a, b):\n    return a + b\n")
		require.NoError(t, err)
		assert.Equal(t, "## calc\n\nAdds numbers.\n", md)
		assert.Contains(t, c.system, "technical documentation")
		assert.Contains(t, c.user, "def add(a, b):")
	})

	t.Run("propagates generation failure", func(t *testing.T) {
		c := &fakeCompleter{err: errors.NewGenerationFailure("no model")}
		_, err := Generate(context.Background(), c, "code")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrGenerationFailure))
	})
}
