package testgen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodoc-ai/autodoc/errors"
)

type fakeCompleter struct {
	importStmt string
	importErr  error

	replies map[string]string // method name -> reply
	fail    map[string]bool

	order []string
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, user string) (string, error) {
	for method := range f.replies {
		if strings.Contains(user, `"`+method+`"`) {
			f.order = append(f.order, method)
			if f.fail[method] {
				return "", errors.NewGenerationFailure("model error")
			}
			return f.replies[method], nil
		}
	}
	return "", errors.New("unexpected prompt")
}

func (f *fakeCompleter) ImportStatement(_ context.Context, _, _ string) (string, error) {
	if f.importErr != nil {
		return "", f.importErr
	}
	return f.importStmt, nil
}

func TestGenerate(t *testing.T) {
	t.Run("import header then one block per method in order", func(t *testing.T) {
		c := &fakeCompleter{
			importStmt: "from calc import Calc",
			replies: map[string]string{
				"add": "```\ndef test_add():\n    assert Calc().add(1, 2) == 3\n```",
				"sub": "```\ndef test_sub():\n    assert Calc().sub(3, 2) == 1\n```",
			},
		}
		res, err := Generate(context.Background(), c, "class Calc: ...", []string{"add", "sub"}, "calc.py", "test/test_calc.py")
		require.NoError(t, err)

		want := "from calc import Calc\n\n" +
			"def test_add():\n    assert Calc().add(1, 2) == 3\n\n\n" +
			"def test_sub():\n    assert Calc().sub(3, 2) == 1\n\n\n"
		assert.Equal(t, want, res.Source)
		assert.Equal(t, []string{"add", "sub"}, c.order)
		assert.Equal(t, 2, res.Written)
		assert.Zero(t, res.Skipped)
	})

	t.Run("unfenced reply kept verbatim", func(t *testing.T) {
		c := &fakeCompleter{
			importStmt: "import calc",
			replies:    map[string]string{"add": "# No test to write"},
		}
		res, err := Generate(context.Background(), c, "class Calc: ...", []string{"add"}, "calc.py", "test/test_calc.py")
		require.NoError(t, err)
		assert.Contains(t, res.Source, "# No test to write")
	})

	t.Run("failed method is skipped, rest still produced", func(t *testing.T) {
		c := &fakeCompleter{
			importStmt: "import calc",
			replies: map[string]string{
				"add": "```\ndef test_add(): ...\n```",
				"sub": "",
			},
			fail: map[string]bool{"sub": true},
		}
		res, err := Generate(context.Background(), c, "class Calc: ...", []string{"add", "sub"}, "calc.py", "test/test_calc.py")
		require.NoError(t, err)
		assert.Contains(t, res.Source, "def test_add")
		assert.Equal(t, 1, res.Written)
		assert.Equal(t, 1, res.Skipped)
	})

	t.Run("import failure aborts the file", func(t *testing.T) {
		c := &fakeCompleter{importErr: errors.NewGenerationFailure("no model")}
		_, err := Generate(context.Background(), c, "src", []string{"add"}, "calc.py", "test/test_calc.py")
		require.Error(t, err)
	})
}
