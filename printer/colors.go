package printer

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colors maps text kinds to sprintf-style color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Kind]func(string, ...any) string
}

// NewColors returns the default syntax highlighting palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Kind]func(string, ...any) string{},
	}
	colors.Map[Keyword] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Ident] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Literal] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Comment] = color.BlueString
	colors.Map[Punct] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// AutoColors returns the default palette when stdout is a terminal and nil
// otherwise, so it can be passed to WithColors unconditionally.
func AutoColors() *Colors {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return nil
	}
	return NewColors()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k Kind, s string) string {
	return c.Get(k)(s)
}

func (c *Colors) Get(k Kind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
