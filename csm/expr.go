package csm

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/unparsehq/unparse/ast"
	"github.com/unparsehq/unparse/debug"
)

// ExprPredicate compiles src with expr-lang into a conditional predicate,
// so predicate-mode conditionals can be stated as data (for example in
// template documents). The expression environment exposes
//
//	shape        the node's shape tag
//	flag(name)   a named boolean attribute
//	value(name)  a scalar property's value, "" when absent
//	has(name)    the presence test for a property
//
// Compile errors are construction-time failures; evaluation errors select
// the false branch and are logged under UNPARSE_DEBUG_PRED.
func ExprPredicate(src string) (Predicate, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: predicate %q: %v", ErrBadTemplate, src, err)
	}
	return func(n *ast.Node) bool {
		out, err := expr.Run(prg, exprEnv(n))
		if err != nil {
			if debug.Pred() {
				debug.Logf("predicate %q on %s: %v\n", src, n.Shape, err)
			}
			return false
		}
		b, _ := out.(bool)
		return b
	}, nil
}

func exprEnv(n *ast.Node) map[string]any {
	return map[string]any{
		"shape": string(n.Shape),
		"flag": func(name string) bool {
			return n.Flag(name)
		},
		"value": func(name string) string {
			p, err := ast.LookupProperty(n.Shape, name)
			if err != nil {
				return ""
			}
			v, _ := p.SingleValue(n)
			return v
		},
		"has": func(name string) bool {
			p, err := ast.LookupProperty(n.Shape, name)
			if err != nil {
				return false
			}
			return p.Present(n)
		},
	}
}
