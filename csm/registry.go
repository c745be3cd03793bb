package csm

import (
	"fmt"
	"sync"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/printer"
)

// Template is the ordered, immutable element sequence for one node shape.
type Template struct {
	elements []Element
}

// Render interprets the template against n, sending output to p.
func (t *Template) Render(r *Registry, n *ast.Node, p *printer.Printer) error {
	for _, e := range t.elements {
		if err := e.Render(r, n, p); err != nil {
			return err
		}
	}
	return nil
}

// Registry maps node shapes to their templates and is the recursive
// dispatch entry point. Register all templates before rendering; after
// construction a registry is safe for unsynchronized concurrent reads.
type Registry struct {
	templates map[ast.Shape]*Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: map[ast.Shape]*Template{}}
}

// Register finalizes b and installs the result for s, replacing any earlier
// template for the shape.
func (r *Registry) Register(s ast.Shape, b *Builder) error {
	t, err := b.Build()
	if err != nil {
		return fmt.Errorf("shape %s: %w", s, err)
	}
	r.templates[s] = t
	return nil
}

// RegisterTemplate installs an already built template for s.
func (r *Registry) RegisterTemplate(s ast.Shape, t *Template) {
	r.templates[s] = t
}

// Template looks up the template for s. A missing template is a
// configuration defect reported as ErrNoTemplate.
func (r *Registry) Template(s ast.Shape) (*Template, error) {
	t, ok := r.templates[s]
	if !ok {
		return nil, fmt.Errorf("%w: shape %s", ErrNoTemplate, s)
	}
	return t, nil
}

// Render looks up n's template by shape and interprets it against n and p.
func (r *Registry) Render(n *ast.Node, p *printer.Printer) error {
	t, err := r.Template(n.Shape)
	if err != nil {
		return err
	}
	return t.Render(r, n, p)
}

// RenderString allocates a fresh printer, renders n and returns the
// accumulated text. Rendering is all-or-nothing: on error no partial text
// is returned.
func (r *Registry) RenderString(n *ast.Node, opts ...printer.Option) (string, error) {
	p := printer.New(opts...)
	if err := r.Render(n, p); err != nil {
		return "", err
	}
	return p.String(), nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
})

// Default returns the registry holding the built-in shape templates. It is
// built once; callers must not register into it concurrently with renders.
func Default() *Registry {
	return defaultRegistry()
}

// Render renders n with the default registry.
func Render(n *ast.Node, p *printer.Printer) error {
	return Default().Render(n, p)
}

// RenderString renders n with the default registry into a fresh printer.
func RenderString(n *ast.Node, opts ...printer.Option) (string, error) {
	return Default().RenderString(n, opts...)
}
