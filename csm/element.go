package csm

import (
	"fmt"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/printer"
)

// Element is one step of a template. Elements are stateless apart from
// their configuration; a single instance serves every node of its shape.
type Element interface {
	Render(r *Registry, n *ast.Node, p *printer.Printer) error
}

// ElementFunc adapts a function to the Element interface.
type ElementFunc func(r *Registry, n *ast.Node, p *printer.Printer) error

func (f ElementFunc) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	return f(r, n, p)
}

// Predicate selects the branch of a predicate-mode conditional.
type Predicate func(n *ast.Node) bool

// validator is implemented by elements with construction invariants.
// Validation runs when a builder finalizes so template defects surface at
// registry-build time, not mid-render.
type validator interface {
	validate() error
}

func validate(e Element) error {
	if v, ok := e.(validator); ok {
		return v.validate()
	}
	return nil
}

// stringElement emits fixed text, or the scalar value of a property when
// one is configured.
type stringElement struct {
	kind    printer.Kind
	content string
	prop    ast.Property
	hasProp bool
}

func (e *stringElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	if !e.hasProp {
		p.Print(e.kind, e.content)
		return nil
	}
	if v, ok := e.prop.SingleValue(n); ok {
		p.Print(e.kind, v)
	}
	return nil
}

// String emits the fixed text s.
func String(s string) Element {
	return &stringElement{kind: printer.Text, content: s}
}

// Keyword emits s classified as a keyword.
func Keyword(s string) Element {
	return &stringElement{kind: printer.Keyword, content: s}
}

// Punct emits s classified as punctuation.
func Punct(s string) Element {
	return &stringElement{kind: printer.Punct, content: s}
}

// Text emits the fixed text s classified as k.
func Text(k printer.Kind, s string) Element {
	return &stringElement{kind: k, content: s}
}

// StringProp emits the scalar value of prop classified as k; absence emits
// nothing.
func StringProp(k printer.Kind, prop ast.Property) Element {
	return &stringElement{kind: k, prop: prop, hasProp: true}
}

func Space() Element     { return String(" ") }
func Comma() Element     { return Punct(",") }
func Semicolon() Element { return Punct(";") }

// newlineElement ends the line; indentation of the next line follows the
// printer's current depth.
type newlineElement struct{}

func (newlineElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	p.Newline()
	return nil
}

func Newline() Element { return newlineElement{} }

// indentElement adjusts the printer's indentation depth.
type indentElement struct{ pop bool }

func (e indentElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	if e.pop {
		p.Unindent()
	} else {
		p.Indent()
	}
	return nil
}

func Indent() Element   { return indentElement{} }
func Unindent() Element { return indentElement{pop: true} }

// valueElement emits the string form of a single scalar property.
type valueElement struct {
	kind printer.Kind
	prop ast.Property
}

func (e *valueElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	if v, ok := e.prop.SingleValue(n); ok {
		p.Print(e.kind, v)
	}
	return nil
}

// Value emits the scalar value of prop; absence emits nothing.
func Value(prop ast.Property) Element {
	return &valueElement{kind: printer.Literal, prop: prop}
}

// ValueKind is Value with an explicit text kind.
func ValueKind(k printer.Kind, prop ast.Property) Element {
	return &valueElement{kind: k, prop: prop}
}

// childElement dispatches rendering of a single child-node property.
type childElement struct {
	prop ast.Property
}

func (e *childElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	c := e.prop.SingleChild(n)
	if c == nil {
		return nil
	}
	return r.Render(c, p)
}

func (e *childElement) validate() error {
	if e.prop.Kind != ast.SingleNodeProp {
		return fmt.Errorf("%w: child element on %s property %q", ErrBadTemplate, e.prop.Kind, e.prop.Name)
	}
	return nil
}

// Child dispatches the child node under prop; an absent optional relation
// emits nothing.
func Child(prop ast.Property) Element {
	return &childElement{prop: prop}
}

// commentElement renders the node's attached comment, always before any
// other output of the node's template.
type commentElement struct{}

func (commentElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	if n.Comment == nil || !p.CommentsEnabled() {
		return nil
	}
	return r.Render(n.Comment, p)
}

func AttachedComment() Element { return commentElement{} }

// listElement emits a list property. For node lists every item recurses
// through the registry; for scalar lists items print as text. An empty or
// absent list emits nothing, including the preceding and following
// elements; the separator goes strictly between consecutive items.
type listElement struct {
	prop      ast.Property
	separator Element
	preceding Element
	following Element
	itemKind  printer.Kind
}

func (e *listElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	if e.prop.IsAboutNodes() {
		items := e.prop.ListChildren(n)
		if len(items) == 0 {
			return nil
		}
		if e.preceding != nil {
			if err := e.preceding.Render(r, n, p); err != nil {
				return err
			}
		}
		for i, item := range items {
			if err := r.Render(item, p); err != nil {
				return err
			}
			if e.separator != nil && i != len(items)-1 {
				if err := e.separator.Render(r, n, p); err != nil {
					return err
				}
			}
		}
		if e.following != nil {
			return e.following.Render(r, n, p)
		}
		return nil
	}
	values := e.prop.ListValues(n)
	if len(values) == 0 {
		return nil
	}
	if e.preceding != nil {
		if err := e.preceding.Render(r, n, p); err != nil {
			return err
		}
	}
	for i, v := range values {
		p.Print(e.itemKind, v)
		if e.separator != nil && i != len(values)-1 {
			if err := e.separator.Render(r, n, p); err != nil {
				return err
			}
		}
	}
	if e.following != nil {
		return e.following.Render(r, n, p)
	}
	return nil
}

func (e *listElement) validate() error {
	if e.prop.IsSingle() {
		return fmt.Errorf("%w: list element on single property %q", ErrBadTemplate, e.prop.Name)
	}
	for _, sub := range []Element{e.separator, e.preceding, e.following} {
		if sub == nil {
			continue
		}
		if err := validate(sub); err != nil {
			return err
		}
	}
	return nil
}

// List emits the items of prop with no separator or wrappers.
func List(prop ast.Property) Element {
	return &listElement{prop: prop, itemKind: printer.Literal}
}

// ListSep emits the items of prop separated by sep.
func ListSep(prop ast.Property, sep Element) Element {
	return &listElement{prop: prop, separator: sep, itemKind: printer.Literal}
}

// ListWrap emits preceding once, the items separated by sep, then following
// once; all three may be nil and none is emitted for an empty list.
func ListWrap(prop ast.Property, sep, preceding, following Element) Element {
	return &listElement{prop: prop, separator: sep, preceding: preceding, following: following, itemKind: printer.Literal}
}

// ListKind is ListWrap for scalar lists with an explicit item text kind.
func ListKind(k printer.Kind, prop ast.Property, sep, preceding, following Element) Element {
	return &listElement{prop: prop, separator: sep, preceding: preceding, following: following, itemKind: k}
}

// ifElement selects between then and else. Exactly one of the predicate or
// the property condition is configured.
type ifElement struct {
	pred    Predicate
	prop    ast.Property
	hasProp bool
	then    Element
	els     Element
}

func (e *ifElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	var test bool
	if e.hasProp {
		test = e.prop.Present(n)
	} else {
		test = e.pred(n)
	}
	if test {
		return e.then.Render(r, n, p)
	}
	if e.els != nil {
		return e.els.Render(r, n, p)
	}
	return nil
}

func (e *ifElement) validate() error {
	if e.hasProp == (e.pred != nil) {
		return fmt.Errorf("%w: conditional needs exactly one of predicate and property", ErrBadTemplate)
	}
	if e.then == nil {
		return fmt.Errorf("%w: conditional without then branch", ErrBadTemplate)
	}
	for _, sub := range []Element{e.then, e.els} {
		if sub == nil {
			continue
		}
		if err := validate(sub); err != nil {
			return err
		}
	}
	return nil
}

// If emits then when prop is present: non-nil child or set value for single
// properties, non-empty list for list properties.
func If(prop ast.Property, then Element) Element {
	return &ifElement{prop: prop, hasProp: true, then: then}
}

// IfElse is If with a branch for the absent case.
func IfElse(prop ast.Property, then, els Element) Element {
	return &ifElement{prop: prop, hasProp: true, then: then, els: els}
}

// IfPred selects on an arbitrary predicate over the node.
func IfPred(pred Predicate, then, els Element) Element {
	return &ifElement{pred: pred, then: then, els: els}
}

// IfFlag selects on a named node flag.
func IfFlag(name string, then, els Element) Element {
	return &ifElement{pred: func(n *ast.Node) bool { return n.Flag(name) }, then: then, els: els}
}

// sequenceElement renders its sub-elements in order against the same node.
type sequenceElement struct {
	elements []Element
}

func (e *sequenceElement) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	for _, sub := range e.elements {
		if err := sub.Render(r, n, p); err != nil {
			return err
		}
	}
	return nil
}

func (e *sequenceElement) validate() error {
	for _, sub := range e.elements {
		if sub == nil {
			return fmt.Errorf("%w: nil element in sequence", ErrBadTemplate)
		}
		if err := validate(sub); err != nil {
			return err
		}
	}
	return nil
}

// Seq concatenates elements.
func Seq(elements ...Element) Element {
	return &sequenceElement{elements: elements}
}

// OrphanCommentsEnding emits the contiguous run of comment-shaped children
// at the tail of the node's position-sorted child list. This is a fallback
// pass for comments no structural element owns.
func OrphanCommentsEnding() Element {
	return ElementFunc(func(r *Registry, n *ast.Node, p *printer.Printer) error {
		if !p.CommentsEnabled() {
			return nil
		}
		children := n.ChildNodes()
		if len(children) == 0 {
			return nil
		}
		tail := 0
		for tail < len(children) {
			if !children[len(children)-1-tail].Shape.IsComment() {
				break
			}
			tail++
		}
		for i := len(children) - tail; i < len(children); i++ {
			if err := r.Render(children[i], p); err != nil {
				return err
			}
		}
		return nil
	})
}
