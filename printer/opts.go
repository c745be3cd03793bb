package printer

import "strings"

type Option func(*Printer)

// WithIndent sets the indentation unit to n spaces.
func WithIndent(n int) Option {
	return func(p *Printer) { p.indent = strings.Repeat(" ", n) }
}

// WithIndentString sets the indentation unit verbatim, e.g. "\t".
func WithIndentString(s string) Option {
	return func(p *Printer) { p.indent = s }
}

// WithComments enables or disables comment output.
func WithComments(v bool) Option {
	return func(p *Printer) { p.comments = v }
}

// WithColors applies c to printed text. A nil c leaves output plain.
func WithColors(c *Colors) Option {
	return func(p *Printer) {
		if c == nil {
			p.color = nil
			return
		}
		p.color = c.Color
	}
}

// WithDepth sets the starting indentation depth.
func WithDepth(n int) Option {
	return func(p *Printer) { p.depth = n }
}
