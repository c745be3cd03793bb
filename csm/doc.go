// Package csm implements the concrete syntax model: declarative, per-shape
// templates that render syntax trees back to source text.
//
// # Overview
//
// A Template is an ordered sequence of Elements. Each element knows how to
// render itself against a node and a printer: fixed text, a scalar
// property's value, a recursively dispatched child, a separator-aware list,
// a conditional, the attached-comment side channel, or a nested sequence.
// A Registry maps node shapes to templates and is the single recursive
// entry point:
//
//	src, err := csm.RenderString(node)
//
// # Extension
//
// A dialect adding a new syntactic form supplies one template for its shape
// and registers it; dispatch needs no other change:
//
//	reg := csm.NewRegistry()
//	err := reg.Register(myShape, csm.NewBuilder().
//	    Value(opProp).
//	    Space().
//	    Child(rightProp))
//
// A shape reachable from a rendered tree without a registered template
// aborts the render with ErrNoTemplate: silently skipping it would drop the
// subtree from the output.
//
// # Related Packages
//
//   - github.com/unparsehq/unparse/ast - the node model
//   - github.com/unparsehq/unparse/printer - the output sink
//   - github.com/unparsehq/unparse/csmyaml - templates loaded from YAML
package csm
