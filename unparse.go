package unparse

import (
	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/csm"
	"github.com/unparsehq/unparse/printer"
)

// Source renders node to source text using the built-in templates. Options
// configure the printer allocated for this call.
func Source(node *ast.Node, opts ...printer.Option) (string, error) {
	return csm.RenderString(node, opts...)
}

// MustSource is Source for trees known to use only registered shapes.
func MustSource(node *ast.Node, opts ...printer.Option) string {
	s, err := Source(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
