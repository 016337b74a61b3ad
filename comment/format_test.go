package comment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var swiftStyle = Style{Kind: LinePrefixed, Marker: "///"}

func TestRender_EmptyInput(t *testing.T) {
	// Empty or whitespace-only input must render to nothing, in both styles.
	for _, raw := range []string{"", "   ", "\n\n", " \t \n"} {
		assert.Empty(t, Render(raw, swiftStyle, 0, DefaultMaxWidth))
		assert.Empty(t, Render(raw, Style{Kind: IndentedBlock}, 4, DefaultMaxWidth))
	}
}

func TestRender_LinePrefixed(t *testing.T) {
	t.Run("marker and indent on every line", func(t *testing.T) {
		out := Render("Does a thing.\nCarefully.", swiftStyle, 4, DefaultMaxWidth)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "    /// Does a thing.", lines[0])
		assert.Equal(t, "    /// Carefully.", lines[1])
	})

	t.Run("existing markers are not stacked", func(t *testing.T) {
		out := Render("/// Already marked.", swiftStyle, 0, DefaultMaxWidth)
		assert.Equal(t, "/// Already marked.", out)
	})

	t.Run("long lines wrap between words", func(t *testing.T) {
		word := "word"
		input := strings.TrimSpace(strings.Repeat(word+" ", 50))
		out := Render(input, swiftStyle, 2, 40)

		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, len(line), 40, "line %q", line)
			assert.True(t, strings.HasPrefix(line, "  /// "))
		}
		// No word may be split
		assert.Equal(t, 50, strings.Count(out, word))
	})

	t.Run("oversized single word is emitted unsplit", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		out := Render(long, swiftStyle, 0, 40)
		assert.Equal(t, "/// "+long, out)
	})

	t.Run("blank interior lines keep bare marker", func(t *testing.T) {
		out := Render("a\n\nb", swiftStyle, 0, DefaultMaxWidth)
		assert.Equal(t, "/// a\n///\n/// b", out)
	})
}

func TestRender_IndentedBlock(t *testing.T) {
	t.Run("delimiters on their own lines, content at indent+4", func(t *testing.T) {
		out := Render("Returns one.", Style{Kind: IndentedBlock}, 0, DefaultMaxWidth)
		assert.Equal(t, "    \"\"\"\n    Returns one.\n    \"\"\"", out)
	})

	t.Run("nested declaration indent", func(t *testing.T) {
		out := Render("Saves the record.", Style{Kind: IndentedBlock}, 4, DefaultMaxWidth)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "        \"\"\"", lines[0])
		assert.Equal(t, "        Saves the record.", lines[1])
		assert.Equal(t, "        \"\"\"", lines[2])
	})

	t.Run("strips leading markers from generated text", func(t *testing.T) {
		out := Render("# Converts units.\n# Rounds result.", Style{Kind: IndentedBlock}, 0, DefaultMaxWidth)
		assert.NotContains(t, out, "#")
		assert.Contains(t, out, "    Converts units.")
		assert.Contains(t, out, "    Rounds result.")
	})

	t.Run("wrapping law holds", func(t *testing.T) {
		input := strings.TrimSpace(strings.Repeat("term ", 60))
		out := Render(input, Style{Kind: IndentedBlock}, 0, 40)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, len(line), 40)
		}
	})
}

func TestStripMarkers(t *testing.T) {
	cases := map[string]string{
		"/// doc":     "doc",
		"// doc":      "doc",
		"# doc":       "doc",
		"  ///  doc ": "doc",
		"doc":         "doc",
		"///":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripMarkers(in), "input %q", in)
	}
}

func TestExtractFenced(t *testing.T) {
	t.Run("single fence", func(t *testing.T) {
		msg := "Here is the code:\n```python\ndef f():\n    pass\n```\nEnjoy!"
		assert.Equal(t, "def f():\n    pass\n", ExtractFenced(msg))
	})

	t.Run("multiple fences concatenate", func(t *testing.T) {
		msg := "```\na\n```\ntext\n```\nb\n```"
		assert.Equal(t, "a\nb\n", ExtractFenced(msg))
	})

	t.Run("no fence yields empty", func(t *testing.T) {
		assert.Empty(t, ExtractFenced("just prose"))
	})
}

func TestExtractDocstring(t *testing.T) {
	code := "def f():\n    '''\n    Returns one.\n    '''\n    return 1"
	assert.Equal(t, "    Returns one.\n", ExtractDocstring(code))
	assert.Empty(t, ExtractDocstring("no docstring here"))
}
