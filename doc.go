// Package unparse renders typed syntax trees back to formatted source text
// ("unparsing"), driven by declarative per-shape templates instead of
// hand-written recursive printing code.
//
// The node model lives in ast, the template machinery in csm, the output
// sink in printer, and data-driven template documents in csmyaml. This
// package is the convenience surface:
//
//	src, err := unparse.Source(tree)
//
// Rendering is a pure, synchronous, depth-first walk: the same immutable
// tree always renders to byte-identical text, and concurrent renders of
// different trees share no mutable state.
package unparse
