package csm

import (
	"fmt"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/printer"
)

// Builder accumulates an ordered element sequence into a Template. Building
// is pure data assembly; no rendering happens until the template is
// interpreted. Construction defects surface from Build.
type Builder struct {
	elements []Element
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends e.
func (b *Builder) Add(e Element) *Builder {
	b.elements = append(b.elements, e)
	return b
}

// Comment appends the attached-comment element. Templates place it first so
// a node's comment precedes all of its other output.
func (b *Builder) Comment() *Builder {
	return b.Add(AttachedComment())
}

func (b *Builder) Child(prop ast.Property) *Builder {
	return b.Add(Child(prop))
}

func (b *Builder) Value(prop ast.Property) *Builder {
	return b.Add(Value(prop))
}

func (b *Builder) String(s string) *Builder {
	return b.Add(String(s))
}

func (b *Builder) Keyword(s string) *Builder {
	return b.Add(Keyword(s))
}

func (b *Builder) Punct(s string) *Builder {
	return b.Add(Punct(s))
}

func (b *Builder) StringProp(k printer.Kind, prop ast.Property) *Builder {
	return b.Add(StringProp(k, prop))
}

func (b *Builder) Space() *Builder {
	return b.Add(Space())
}

func (b *Builder) Newline() *Builder {
	return b.Add(Newline())
}

func (b *Builder) Semicolon() *Builder {
	return b.Add(Semicolon())
}

func (b *Builder) Indent() *Builder {
	return b.Add(Indent())
}

func (b *Builder) Unindent() *Builder {
	return b.Add(Unindent())
}

func (b *Builder) IfThen(prop ast.Property, then Element) *Builder {
	return b.Add(If(prop, then))
}

func (b *Builder) IfThenElse(prop ast.Property, then, els Element) *Builder {
	return b.Add(IfElse(prop, then, els))
}

func (b *Builder) IfPred(pred Predicate, then, els Element) *Builder {
	return b.Add(IfPred(pred, then, els))
}

func (b *Builder) Seq(elements ...Element) *Builder {
	return b.Add(Seq(elements...))
}

func (b *Builder) List(prop ast.Property) *Builder {
	return b.Add(List(prop))
}

func (b *Builder) ListSep(prop ast.Property, sep Element) *Builder {
	return b.Add(ListSep(prop, sep))
}

func (b *Builder) ListWrap(prop ast.Property, sep, preceding, following Element) *Builder {
	return b.Add(ListWrap(prop, sep, preceding, following))
}

// Annotations appends the attached-marker list: newline-separated, with a
// leading and trailing newline only when non-empty.
func (b *Builder) Annotations() *Builder {
	return b.Add(ListWrap(ast.AnnotationsProp, Newline(), Newline(), Newline()))
}

// Modifiers appends the qualifier keyword list: space-separated, with a
// leading and trailing space only when non-empty.
func (b *Builder) Modifiers() *Builder {
	return b.Add(ListKind(printer.Keyword, ast.ModifiersProp, Space(), Space(), Space()))
}

// Block wraps body in braces with a newline after the opener and one
// indentation level for the body.
func (b *Builder) Block(body Element) *Builder {
	b.Punct("{")
	b.Newline()
	b.Indent()
	b.Add(body)
	b.Unindent()
	return b.Punct("}")
}

// OrphanCommentsEnding appends the trailing orphan comment scan.
func (b *Builder) OrphanCommentsEnding() *Builder {
	return b.Add(OrphanCommentsEnding())
}

// Build validates the accumulated elements and finalizes the template.
func (b *Builder) Build() (*Template, error) {
	for _, e := range b.elements {
		if e == nil {
			return nil, fmt.Errorf("%w: nil element", ErrBadTemplate)
		}
		if err := validate(e); err != nil {
			return nil, err
		}
	}
	return &Template{elements: b.elements}, nil
}
