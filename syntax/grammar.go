// Package syntax wraps tree-sitter parsing and declaration discovery for the
// languages the pipeline understands.
package syntax

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/swift"
	tstypescript "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/autodoc-ai/autodoc/comment"
	"github.com/autodoc-ai/autodoc/errors"
)

// Language identifies a supported grammar.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageSwift      Language = "swift"
)

// Grammar describes how declarations look in one language's tree-sitter
// grammar: which node type tags are class/function/property-like, where a
// class keeps its body, and how generated comments are rendered and placed.
type Grammar struct {
	Language Language

	ClassTypes    []string
	FunctionTypes []string
	PropertyTypes []string
	BodyTypes     []string // designated body child of a class-like node
	ImportTypes   []string

	// NameField is the tree-sitter field holding a declaration's identifier.
	NameField string

	// SignatureTerminator is the structural delimiter that ends a
	// declaration's signature (':' for python, '{' for brace languages).
	// Only these two declaration shapes are defined; a new grammar must
	// define its own terminator explicitly.
	SignatureTerminator byte

	CommentStyle comment.Style

	sitterLanguage *sitter.Language
}

// Grammars are process-wide and read-only after first use; the underlying
// tree-sitter language objects are immutable C globals, safe to reuse across
// runs without reinitialization.
var grammars = map[Language]*Grammar{
	LanguagePython: {
		Language:            LanguagePython,
		ClassTypes:          []string{"class_definition"},
		FunctionTypes:       []string{"function_definition", "async_function_definition"},
		PropertyTypes:       nil,
		BodyTypes:           []string{"block"},
		ImportTypes:         []string{"import_statement", "import_from_statement"},
		NameField:           "name",
		SignatureTerminator: ':',
		CommentStyle:        comment.Style{Kind: comment.IndentedBlock},
		sitterLanguage:      python.GetLanguage(),
	},
	LanguageJavaScript: {
		Language:            LanguageJavaScript,
		ClassTypes:          []string{"class_declaration"},
		FunctionTypes:       []string{"function_declaration", "method_definition"},
		PropertyTypes:       []string{"field_definition"},
		BodyTypes:           []string{"class_body"},
		ImportTypes:         []string{"import_statement"},
		NameField:           "name",
		SignatureTerminator: '{',
		CommentStyle:        comment.Style{Kind: comment.LinePrefixed, Marker: "//"},
		sitterLanguage:      javascript.GetLanguage(),
	},
	LanguageTypeScript: {
		Language:            LanguageTypeScript,
		ClassTypes:          []string{"class_declaration"},
		FunctionTypes:       []string{"function_declaration", "method_definition"},
		PropertyTypes:       []string{"public_field_definition"},
		BodyTypes:           []string{"class_body"},
		ImportTypes:         []string{"import_statement"},
		NameField:           "name",
		SignatureTerminator: '{',
		CommentStyle:        comment.Style{Kind: comment.LinePrefixed, Marker: "//"},
		sitterLanguage:      tstypescript.GetLanguage(),
	},
	LanguageSwift: {
		Language:            LanguageSwift,
		ClassTypes:          []string{"class_declaration"},
		FunctionTypes:       []string{"function_declaration"},
		PropertyTypes:       []string{"property_declaration"},
		BodyTypes:           []string{"class_body"},
		ImportTypes:         []string{"import_declaration"},
		NameField:           "name",
		SignatureTerminator: '{',
		CommentStyle:        comment.Style{Kind: comment.LinePrefixed, Marker: "///"},
		sitterLanguage:      swift.GetLanguage(),
	},
}

// extToLanguage is the fixed extension-to-grammar mapping. Unknown
// extensions are a hard error.
var extToLanguage = map[string]Language{
	"py":    LanguagePython,
	"js":    LanguageJavaScript,
	"ts":    LanguageTypeScript,
	"swift": LanguageSwift,
}

// LanguageForPath resolves the grammar for a file from its extension.
func LanguageForPath(path string) (Language, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	lang, ok := extToLanguage[strings.ToLower(ext)]
	if !ok {
		return "", errors.Wrapf(errors.ErrUnsupportedLanguage, "extension %q of %s", ext, filepath.Base(path))
	}
	return lang, nil
}

// GrammarFor returns the grammar profile for a language.
func GrammarFor(lang Language) (*Grammar, error) {
	g, ok := grammars[lang]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnsupportedLanguage, "no grammar for %q", lang)
	}
	return g, nil
}

func (g *Grammar) isClass(nodeType string) bool    { return contains(g.ClassTypes, nodeType) }
func (g *Grammar) isFunction(nodeType string) bool { return contains(g.FunctionTypes, nodeType) }
func (g *Grammar) isProperty(nodeType string) bool { return contains(g.PropertyTypes, nodeType) }
func (g *Grammar) isBody(nodeType string) bool     { return contains(g.BodyTypes, nodeType) }
func (g *Grammar) isImport(nodeType string) bool   { return contains(g.ImportTypes, nodeType) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
