// Package rewrite inserts generated documentation comments into source text
// without reparsing. All anchors are resolved against a single parse; edits
// are applied in one batched pass from the end of the file backwards so
// earlier offsets stay valid.
package rewrite

import (
	"context"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/autodoc-ai/autodoc/comment"
	"github.com/autodoc-ai/autodoc/logger"
	"github.com/autodoc-ai/autodoc/syntax"
)

// Summarizer produces documentation text for source snippets.
type Summarizer interface {
	// FunctionDoc writes a docstring for a single function or property.
	FunctionDoc(ctx context.Context, lang syntax.Language, code string) (string, error)
	// CombinedSummary condenses member docstrings into one class summary.
	CombinedSummary(ctx context.Context, lang syntax.Language, docs []string) (string, error)
	// Summarize is the degraded fallback: a plain summary of raw code.
	Summarize(ctx context.Context, lang syntax.Language, code string) (string, error)
}

// SummaryEntry pairs generated text with the declaration node it documents.
// Entries are transient: they are only valid against the parse their anchors
// came from.
type SummaryEntry struct {
	Anchor *sitter.Node
	Text   string
}

// Result reports what an annotation pass produced.
type Result struct {
	Annotated []byte
	Inserted  int
	Skipped   int
}

// Annotator drives one documentation pass over a parsed file.
type Annotator struct {
	Summarizer Summarizer
	MaxWidth   int
}

// Annotate generates docs for every discovered declaration and splices them
// into the tree's source. Per-node generation failures degrade to a plain
// summary and then to skipping the node; the pass never aborts the file.
func (a *Annotator) Annotate(ctx context.Context, tree *syntax.Tree, disc *syntax.Discovery) (*Result, error) {
	lang := tree.Grammar.Language
	res := &Result{}

	var entries []SummaryEntry
	memberDocs := make(map[uint32][]string)

	for _, decl := range disc.Declarations {
		if decl.Kind == syntax.KindClass {
			continue
		}
		text, ok := a.generate(ctx, lang, tree.Content(decl.Node), decl)
		if !ok {
			res.Skipped++
			continue
		}
		entries = append(entries, SummaryEntry{Anchor: decl.Node, Text: text})
		if decl.HasClass {
			memberDocs[decl.ClassID] = append(memberDocs[decl.ClassID], text)
		}
	}

	for _, id := range disc.ClassIDs {
		group := disc.Classes[id]
		text, ok := a.classSummary(ctx, lang, tree, group, memberDocs[id])
		if !ok {
			res.Skipped++
			continue
		}
		entries = append(entries, SummaryEntry{Anchor: group.Class.Node, Text: text})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Anchor.StartByte() < entries[j].Anchor.StartByte()
	})

	insertions := make([]insertion, 0, len(entries))
	for _, e := range entries {
		ins, ok := a.render(tree, e)
		if !ok {
			continue
		}
		insertions = append(insertions, ins)
		res.Inserted++
	}

	res.Annotated = apply(tree.Source, insertions)
	return res, nil
}

// generate runs the fallback chain for one declaration: docstring, then
// degraded summary, then skip.
func (a *Annotator) generate(ctx context.Context, lang syntax.Language, code string, decl syntax.Declaration) (string, bool) {
	text, err := a.Summarizer.FunctionDoc(ctx, lang, code)
	if err == nil {
		return text, true
	}
	logger.Warnw("docstring generation failed, trying plain summary",
		logger.FieldNodeType, string(decl.Kind),
		logger.FieldStartByte, decl.Node.StartByte(),
		logger.FieldError, err,
	)
	text, err = a.Summarizer.Summarize(ctx, lang, code)
	if err != nil {
		logger.Warnw("summary generation failed, skipping declaration",
			logger.FieldNodeType, string(decl.Kind),
			logger.FieldStartByte, decl.Node.StartByte(),
			logger.FieldError, err,
		)
		return "", false
	}
	return text, true
}

// classSummary documents a class from its member docs, or from its whole
// source text when it has no members.
func (a *Annotator) classSummary(ctx context.Context, lang syntax.Language, tree *syntax.Tree, group *syntax.ClassGroup, docs []string) (string, bool) {
	var (
		text string
		err  error
	)
	if len(docs) > 0 {
		text, err = a.Summarizer.CombinedSummary(ctx, lang, docs)
	} else {
		text, err = a.Summarizer.Summarize(ctx, lang, tree.Content(group.Class.Node))
	}
	if err != nil {
		logger.Warnw("class summary generation failed, skipping class",
			logger.FieldStartByte, group.Class.Node.StartByte(),
			logger.FieldError, err,
		)
		return "", false
	}
	return text, true
}

type insertion struct {
	offset int
	text   string
}

// render formats one entry and resolves its byte-accurate insertion point.
// Empty generated text renders to nothing and produces no insertion.
func (a *Annotator) render(tree *syntax.Tree, e SummaryEntry) (insertion, bool) {
	style := tree.Grammar.CommentStyle
	indent := int(e.Anchor.StartPoint().Column)

	rendered := comment.Render(e.Text, style, indent, a.MaxWidth)
	if rendered == "" {
		return insertion{}, false
	}

	offset, inside := insertionPoint(tree, e.Anchor)
	if style.Kind == comment.IndentedBlock && inside {
		return insertion{offset: offset, text: rendered + "\n\n"}, true
	}
	return insertion{offset: offset, text: rendered + "\n"}, true
}

// insertionPoint finds where a comment for node belongs. Indented-block
// comments go inside the declaration, right after the newline that follows
// the signature terminator; line-prefixed comments (and any declaration
// whose terminator cannot be found) go before the header line. The second
// return reports whether the inside position was used.
func insertionPoint(tree *syntax.Tree, node *sitter.Node) (int, bool) {
	src := tree.Source
	start := int(node.StartByte())
	end := int(node.EndByte())

	if tree.Grammar.CommentStyle.Kind == comment.IndentedBlock {
		term := tree.Grammar.SignatureTerminator
		for i := start; i < end && i < len(src); i++ {
			if src[i] != term {
				continue
			}
			for j := i + 1; j < len(src); j++ {
				if src[j] == '\n' {
					return j + 1, true
				}
			}
			break
		}
	}

	return lineStart(src, start), false
}

// lineStart walks back from offset to the byte after the previous newline.
func lineStart(src []byte, offset int) int {
	for offset > 0 && src[offset-1] != '\n' {
		offset--
	}
	return offset
}

// apply splices insertions into source. Insertions are applied in
// descending offset order so every remaining offset still indexes the
// original bytes; callers may pass them in any order.
func apply(source []byte, insertions []insertion) []byte {
	sorted := make([]insertion, len(insertions))
	copy(sorted, insertions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].offset > sorted[j].offset
	})

	total := len(source)
	for _, ins := range sorted {
		total += len(ins.text)
	}

	out := make([]byte, 0, total)
	out = append(out, source...)
	for _, ins := range sorted {
		tail := string(out[ins.offset:])
		out = append(out[:ins.offset], ins.text...)
		out = append(out, tail...)
	}
	return out
}
