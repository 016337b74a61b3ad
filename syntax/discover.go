package syntax

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/autodoc-ai/autodoc/logger"
)

// Kind classifies a discovered declaration.
type Kind string

const (
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindProperty Kind = "property"
)

// Declaration is one class, function, or property found in a parse tree.
// ClassID is the StartByte of the enclosing class node for class members,
// and zero-valued absent (HasClass false) for top-level declarations.
type Declaration struct {
	Node     *sitter.Node
	Kind     Kind
	Name     string
	ClassID  uint32
	HasClass bool
}

// ClassGroup collects a class declaration together with its direct members.
// Members holds only the functions and properties that are immediate
// children of the class body; nested classes and their members belong to
// their own group.
type ClassGroup struct {
	Class   Declaration
	Members []Declaration
}

// Discovery is the full declaration inventory of one parse tree, in
// document order.
type Discovery struct {
	// Declarations lists every class, function, and property found,
	// sorted ascending by start byte.
	Declarations []Declaration

	// Classes maps class start byte to its group, with ClassIDs listing
	// the keys in document order.
	Classes  map[uint32]*ClassGroup
	ClassIDs []uint32

	// TopLevel lists functions and properties that are not class members,
	// in document order.
	TopLevel []Declaration

	// Imports holds the exact source text of every import statement.
	Imports []string
}

// Discover walks the tree and inventories its declarations. Classes are
// found at any depth; membership is one level deep, restricted to direct
// children of the class's designated body node. A class with a missing body
// or a declaration with a missing name field is recorded as far as possible
// and never aborts the walk.
func Discover(t *Tree) *Discovery {
	g := t.Grammar
	d := &Discovery{Classes: make(map[uint32]*ClassGroup)}

	// nested marks traversal inside a function or property body: classes and
	// imports are still collected there, local functions are not.
	var walk func(node *sitter.Node, classID uint32, hasClass bool, nested bool)
	walk = func(node *sitter.Node, classID uint32, hasClass bool, nested bool) {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			nodeType := child.Type()

			switch {
			case g.isImport(nodeType):
				d.Imports = append(d.Imports, t.Content(child))

			case g.isClass(nodeType):
				decl := Declaration{
					Node:     child,
					Kind:     KindClass,
					Name:     declName(t, child),
					ClassID:  classID,
					HasClass: hasClass,
				}
				d.Declarations = append(d.Declarations, decl)
				id := child.StartByte()
				d.Classes[id] = &ClassGroup{Class: decl}
				d.ClassIDs = append(d.ClassIDs, id)

				body := classBody(g, child)
				if body == nil {
					logger.Warnw("class has no body node, skipping members",
						logger.FieldNodeType, nodeType,
						logger.FieldStartByte, child.StartByte(),
					)
					continue
				}
				walk(body, id, true, false)

			case g.isFunction(nodeType) || g.isProperty(nodeType):
				if !nested {
					kind := KindFunction
					if g.isProperty(nodeType) {
						kind = KindProperty
					}
					decl := Declaration{
						Node:     child,
						Kind:     kind,
						Name:     declName(t, child),
						ClassID:  classID,
						HasClass: hasClass,
					}
					d.Declarations = append(d.Declarations, decl)
					if hasClass {
						group := d.Classes[classID]
						group.Members = append(group.Members, decl)
					} else {
						d.TopLevel = append(d.TopLevel, decl)
					}
				}
				walk(child, 0, false, true)

			case isWrapper(nodeType):
				// Decorated definitions and export statements wrap the
				// real declaration one level down.
				walk(child, classID, hasClass, nested)

			default:
				if !hasClass {
					walk(child, 0, false, nested)
				}
			}
		}
	}
	walk(t.Root(), 0, false, false)

	sort.SliceStable(d.Declarations, func(i, j int) bool {
		return d.Declarations[i].Node.StartByte() < d.Declarations[j].Node.StartByte()
	})
	return d
}

func isWrapper(nodeType string) bool {
	return nodeType == "decorated_definition" || nodeType == "export_statement"
}

func declName(t *Tree, node *sitter.Node) string {
	nameNode := node.ChildByFieldName(t.Grammar.NameField)
	if nameNode == nil {
		logger.Debugw("declaration has no name field",
			logger.FieldNodeType, node.Type(),
			logger.FieldStartByte, node.StartByte(),
		)
		return ""
	}
	return t.Content(nameNode)
}

func classBody(g *Grammar, class *sitter.Node) *sitter.Node {
	if body := class.ChildByFieldName("body"); body != nil && g.isBody(body.Type()) {
		return body
	}
	for i := 0; i < int(class.NamedChildCount()); i++ {
		child := class.NamedChild(i)
		if g.isBody(child.Type()) {
			return child
		}
	}
	return nil
}
