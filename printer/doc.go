// Package printer provides the output sink used while rendering a syntax
// tree to text.
//
// # Usage
//
//	p := printer.New(printer.WithIndent(2))
//	p.Print(printer.Keyword, "class")
//	p.Newline()
//	src := p.String()
//
// A Printer is created per render call and discarded after the result is
// extracted; it is not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/unparsehq/unparse/csm - drives a Printer from templates
package printer
