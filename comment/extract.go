package comment

import "strings"

// ExtractFenced returns the content of ``` code fences in a model reply,
// concatenated. Models often wrap code in markdown fences with commentary
// around them; only the fenced content is usable.
func ExtractFenced(message string) string {
	var code strings.Builder
	inCode := false
	for _, line := range strings.Split(message, "\n") {
		if strings.Contains(line, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			code.WriteString(line)
			code.WriteString("\n")
		}
	}
	return code.String()
}

// ExtractDocstring returns the content between ''' docstring delimiters in a
// model reply. Returns the empty string when no delimited block exists.
func ExtractDocstring(reply string) string {
	var doc strings.Builder
	inDoc := false
	for _, line := range strings.Split(reply, "\n") {
		if strings.Contains(line, "'''") {
			inDoc = !inDoc
			continue
		}
		if inDoc {
			doc.WriteString(line)
			doc.WriteString("\n")
		}
	}
	return doc.String()
}
