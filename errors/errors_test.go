package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelWrapping(t *testing.T) {
	t.Run("wrapped sentinel stays detectable", func(t *testing.T) {
		err := Wrap(ErrGenerationFailure, "function doc for parse_source")
		assert.True(t, Is(err, ErrGenerationFailure))
		assert.True(t, IsGenerationFailure(err))
		assert.False(t, IsUnsupportedLanguage(err))
	})

	t.Run("NewGenerationFailure formats and preserves type", func(t *testing.T) {
		err := NewGenerationFailure("node at byte %d", 42)
		require.Error(t, err)
		assert.True(t, IsGenerationFailure(err))
		assert.Contains(t, err.Error(), "node at byte 42")
	})

	t.Run("nil is never a sentinel", func(t *testing.T) {
		assert.False(t, IsGenerationFailure(nil))
		assert.False(t, IsUnsupportedLanguage(nil))
	})
}
