// Package ast provides the node model for syntax trees rendered by this
// module.
//
// # Overview
//
// A tree is made of Node values. Each node carries a Shape (its concrete
// kind, used as the template lookup key), generic attribute storage read
// through Property accessors, an optional attached Comment, and a
// non-owning Parent back-reference maintained by the mutators.
//
// # Shapes and Properties
//
// The shape set is open. Built-in shapes cover a Java-like surface
// (compilation unit, class declaration, field declaration, type references,
// expressions including the half-binary partial comparison form) and new
// shapes are declared with DeclareShape:
//
//	const WhenClauseShape ast.Shape = "when-clause"
//	ast.DeclareShape(WhenClauseShape, ast.Property{Name: "body", Kind: ast.NodeListProp})
//
// A Property exposes four query forms: single scalar, single child node,
// scalar list and node list, plus cardinality and about-nodes predicates.
// Absent optional relations read as zero results, never errors.
//
// # Mutation
//
// Nodes are built through explicit mutators (SetValue, SetChild, SetList,
// SetComment, AddOrphanComment). Mutators maintain parent back-references
// and source positions and push explicit change events to observers
// registered with Observe. Rendering never mutates; a tree must not be
// mutated while a render is in flight.
//
// # Related Packages
//
//   - github.com/unparsehq/unparse/csm - templates rendering these nodes
//   - github.com/unparsehq/unparse/printer - the output sink
package ast
