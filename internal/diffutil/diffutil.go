// Package diffutil renders readable diffs of expected versus actual source
// text in test failure output.
package diffutil

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented diff from want to got, with -/+ prefixes.
func Diff(want, got string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
