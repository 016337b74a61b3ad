package syntax

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/autodoc-ai/autodoc/errors"
)

// Tree is a parsed source file together with the bytes it was parsed from
// and the grammar it was parsed with. Node offsets index into Source.
type Tree struct {
	Source  []byte
	Grammar *Grammar

	tree *sitter.Tree
}

// Parse runs the tree-sitter parser for lang over source. The returned tree
// retains source; callers must not mutate the slice while the tree is live.
func Parse(ctx context.Context, source []byte, lang Language) (*Tree, error) {
	g, err := GrammarFor(lang)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(g.sitterLanguage)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s source", lang)
	}
	if tree == nil {
		return nil, errors.Wrapf(errors.ErrMalformedTree, "%s parser produced no tree", lang)
	}
	return &Tree{Source: source, Grammar: g, tree: tree}, nil
}

// Root returns the root node of the parse tree.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Content returns the source text spanned by node.
func (t *Tree) Content(node *sitter.Node) string {
	return node.Content(t.Source)
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}
