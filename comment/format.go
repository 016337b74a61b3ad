// Package comment renders generated documentation text into a target comment
// convention: a line-prefixed form (///-style markers) or an indented block
// form (docstring between triple-quote delimiters).
package comment

import "strings"

// DefaultMaxWidth is the maximum rendered line width.
const DefaultMaxWidth = 120

// BlockDelimiter opens and closes an indented-block comment.
const BlockDelimiter = `"""`

// Kind selects the rendering convention.
type Kind int

const (
	// LinePrefixed prefixes every line with a fixed marker and the
	// enclosing indent; the block precedes the declaration.
	LinePrefixed Kind = iota
	// IndentedBlock re-indents content to indent+4 between delimiters on
	// their own lines; the block sits inside the declaration body.
	IndentedBlock
)

// Style describes one language's comment convention.
type Style struct {
	Kind   Kind
	Marker string // line marker for LinePrefixed ("///", "//"); unused for IndentedBlock
}

// Render renders raw generated text per style at the given indent column,
// wrapped to maxWidth. Empty or whitespace-only input renders to the empty
// string; callers must then insert nothing.
func Render(raw string, style Style, indent, maxWidth int) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	switch style.Kind {
	case IndentedBlock:
		return renderIndentedBlock(raw, indent, maxWidth)
	default:
		return renderLinePrefixed(raw, style.Marker, indent, maxWidth)
	}
}

// renderLinePrefixed word-wraps every input line independently and prefixes
// each output line with the indent and marker. Continuation lines repeat
// both.
func renderLinePrefixed(raw, marker string, indent, maxWidth int) string {
	prefix := strings.Repeat(" ", indent) + marker + " "
	bare := strings.Repeat(" ", indent) + marker

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		content := StripMarkers(line)
		if content == "" {
			out = append(out, bare)
			continue
		}
		out = append(out, wrapWords(content, prefix, maxWidth)...)
	}
	return strings.Join(out, "\n")
}

// renderIndentedBlock strips any existing markers, re-indents each line to
// indent+4, and surrounds the result with block delimiters on their own
// lines.
func renderIndentedBlock(raw string, indent, maxWidth int) string {
	prefix := strings.Repeat(" ", indent+4)

	out := []string{prefix + BlockDelimiter}
	for _, line := range strings.Split(raw, "\n") {
		content := StripMarkers(line)
		if content == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapWords(content, prefix, maxWidth)...)
	}
	out = append(out, prefix+BlockDelimiter)
	return strings.Join(out, "\n")
}

// wrapWords breaks content between whole words so that prefix+content stays
// within maxWidth. A single word that alone exceeds the width is emitted
// unsplit.
func wrapWords(content, prefix string, maxWidth int) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := prefix + words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > maxWidth {
			lines = append(lines, current)
			current = prefix + word
		} else {
			current += " " + word
		}
	}
	return append(lines, current)
}

// StripMarkers removes a leading comment marker (///, //, #) and surrounding
// whitespace from one line of generated text, so text can be re-rendered in
// a different convention without stacking markers.
func StripMarkers(line string) string {
	s := strings.TrimSpace(line)
	for _, marker := range []string{"///", "//", "#"} {
		if strings.HasPrefix(s, marker) {
			s = strings.TrimSpace(strings.TrimPrefix(s, marker))
			break
		}
	}
	return s
}
