//go:build cgo

package javascript

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/metal3d/cakesort/ordering"
)

// Parse parses src and returns its comments, module-level imports and class
// bodies in document order. Class members of a kind the checks do not know
// are kept with their raw node type.
func Parse(ctx context.Context, path string, src []byte) (*ordering.Module, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if bad := firstError(root); bad != nil {
			pos := position(bad.StartPoint())
			return nil, fmt.Errorf("%s:%d:%d: %w", path, pos.Line, pos.Column+1, ErrSyntax)
		}
		return nil, fmt.Errorf("%s: %w", path, ErrSyntax)
	}

	b := &builder{src: src, mod: &ordering.Module{Path: path}}
	b.walk(root)
	return b.mod, nil
}

type builder struct {
	src []byte
	mod *ordering.Module
}

// walk visits n and its descendants in document order.
func (b *builder) walk(n *sitter.Node) {
	switch n.Type() {
	case nodeComment:
		text, line := commentText(n.Content(b.src))
		kind := ordering.CommentBlock
		if line {
			kind = ordering.CommentLine
		}
		b.mod.Comments = append(b.mod.Comments, ordering.Comment{Kind: kind, Text: text, Loc: span(n)})
		return
	case nodeImportStatement:
		if parent := n.Parent(); parent != nil && parent.Type() == nodeProgram {
			b.mod.Imports = append(b.mod.Imports, b.importDecl(n))
		}
	case nodeClassBody:
		b.mod.ClassBodies = append(b.mod.ClassBodies, b.classBody(n))
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil {
			b.walk(child)
		}
	}
}

func (b *builder) importDecl(n *sitter.Node) *ordering.ImportDecl {
	decl := &ordering.ImportDecl{Loc: span(n)}
	if source := n.ChildByFieldName("source"); source != nil {
		decl.Source = b.stringValue(source)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		clause := n.NamedChild(i)
		if clause.Type() != nodeImportClause {
			continue
		}
		for j := 0; j < int(clause.NamedChildCount()); j++ {
			child := clause.NamedChild(j)
			switch child.Type() {
			case nodeIdentifier:
				// import foo from 'foo'
				decl.Specifiers = append(decl.Specifiers, &ordering.Specifier{
					Kind:  ordering.SpecifierDefault,
					Local: child.Content(b.src),
					Loc:   span(child),
				})
			case nodeNamespaceImport:
				// import * as foo from 'foo'
				spec := &ordering.Specifier{Kind: ordering.SpecifierNamespace, Loc: span(child)}
				for k := 0; k < int(child.NamedChildCount()); k++ {
					if id := child.NamedChild(k); id.Type() == nodeIdentifier {
						spec.Local = id.Content(b.src)
					}
				}
				decl.Specifiers = append(decl.Specifiers, spec)
			case nodeNamedImports:
				// import { foo, bar as baz } from 'foo'
				for k := 0; k < int(child.NamedChildCount()); k++ {
					if spec := child.NamedChild(k); spec.Type() == nodeImportSpecifier {
						decl.Specifiers = append(decl.Specifiers, &ordering.Specifier{
							Kind:  ordering.SpecifierNamed,
							Local: b.localName(spec),
							Loc:   span(spec),
						})
					}
				}
			}
		}
	}
	return decl
}

func (b *builder) localName(spec *sitter.Node) string {
	if alias := spec.ChildByFieldName("alias"); alias != nil {
		return alias.Content(b.src)
	}
	name := spec.ChildByFieldName("name")
	if name == nil {
		return spec.Content(b.src)
	}
	if name.Type() == nodeString {
		return b.stringValue(name)
	}
	return name.Content(b.src)
}

func (b *builder) classBody(n *sitter.Node) *ordering.ClassBody {
	body := &ordering.ClassBody{Loc: span(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		member := &ordering.Member{Loc: span(child)}
		switch child.Type() {
		case nodeComment:
			continue
		case nodeMethodDefinition:
			member.Kind = ordering.MemberMethod
			member.Name = b.keyName(child.ChildByFieldName("name"))
		case nodeFieldDefinition, nodePublicField:
			member.Kind = ordering.MemberProperty
			member.Name = b.keyName(child.ChildByFieldName("property"))
		default:
			member.Kind = ordering.MemberKind(child.Type())
		}
		body.Members = append(body.Members, member)
	}
	return body
}

func (b *builder) keyName(key *sitter.Node) string {
	if key == nil {
		return ""
	}
	switch key.Type() {
	case nodeString:
		return b.stringValue(key)
	case nodeComputedName:
		// ['name']() {} sorts as name, other expressions keep their text
		if key.NamedChildCount() == 1 {
			if inner := key.NamedChild(0); inner.Type() == nodeString {
				return b.stringValue(inner)
			}
		}
	}
	return key.Content(b.src)
}

func (b *builder) stringValue(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeStringFragment {
			return child.Content(b.src)
		}
	}
	return unquote(n.Content(b.src))
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if bad := firstError(child); bad != nil {
			return bad
		}
	}
	return nil
}

func position(p sitter.Point) ordering.Position {
	return ordering.Position{Line: int(p.Row) + 1, Column: int(p.Column)}
}

func span(n *sitter.Node) ordering.Span {
	return ordering.Span{Start: position(n.StartPoint()), End: position(n.EndPoint())}
}
