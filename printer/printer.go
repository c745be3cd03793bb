package printer

import "strings"

// Kind classifies printed text for coloring.
type Kind int

const (
	Text Kind = iota
	Keyword
	Ident
	Literal
	Comment
	Punct
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Text:    "Text",
		Keyword: "Keyword",
		Ident:   "Ident",
		Literal: "Literal",
		Comment: "Comment",
		Punct:   "Punct",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Printer is the append-only output sink for one render call. It tracks an
// indentation depth pushed and popped by templates; the indent prefix is
// written lazily when the first text of a line is printed, so popping the
// depth before a closing delimiter leaves no trailing spaces.
type Printer struct {
	sb strings.Builder

	indent   string
	depth    int
	atStart  bool
	line     int
	col      int
	comments bool

	color func(Kind, string) string
}

// New creates a Printer with a fresh empty buffer. The default configuration
// uses four-space indentation, renders comments and applies no colors.
func New(opts ...Option) *Printer {
	p := &Printer{
		indent:   "    ",
		atStart:  true,
		comments: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print appends text classified as k. Embedded newlines are routed through
// Newline so continuation lines pick up the current indentation.
func (p *Printer) Print(k Kind, s string) {
	if s == "" {
		return
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if i > 0 {
			p.Newline()
		}
		p.printLine(k, ln)
	}
}

func (p *Printer) printLine(k Kind, ln string) {
	if ln == "" {
		return
	}
	if p.atStart {
		prefix := strings.Repeat(p.indent, p.depth)
		p.sb.WriteString(prefix)
		p.col = len(prefix)
		p.atStart = false
	}
	out := ln
	if p.color != nil {
		out = p.color(k, ln)
	}
	p.sb.WriteString(out)
	p.col += len(ln)
}

// Newline ends the current line. Indentation for the next line is deferred
// until something is printed on it.
func (p *Printer) Newline() {
	p.sb.WriteString("\n")
	p.line++
	p.col = 0
	p.atStart = true
}

// Indent pushes one indentation level.
func (p *Printer) Indent() {
	p.depth++
}

// Unindent pops one indentation level.
func (p *Printer) Unindent() {
	if p.depth > 0 {
		p.depth--
	}
}

// CommentsEnabled reports whether comment output is enabled for this sink.
func (p *Printer) CommentsEnabled() bool {
	return p.comments
}

// Line returns the zero-based current line number.
func (p *Printer) Line() int {
	return p.line
}

// Col returns the current column in bytes, excluding color escapes.
func (p *Printer) Col() int {
	return p.col
}

// String extracts the accumulated text.
func (p *Printer) String() string {
	return p.sb.String()
}
