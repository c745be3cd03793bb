// Package csmyaml loads concrete syntax templates from YAML documents.
//
// A document may declare new shapes and must give one element list per
// shape it templates:
//
//	shapes:
//	  half-comparison:
//	    properties:
//	      - {name: operator, kind: value}
//	      - {name: right, kind: node}
//	templates:
//	  half-comparison:
//	    - {comment: true}
//	    - {value: operator, kind: punct}
//	    - " "
//	    - {child: right}
//
// A plain string is shorthand for a literal. Conditionals take exactly one
// of property, flag or expr (an expr-lang predicate over the node).
//
// # Related Packages
//
//   - github.com/unparsehq/unparse/csm - the compiled template model
package csmyaml
