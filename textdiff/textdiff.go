// Package textdiff renders line-oriented diffs between two versions of a
// settings document.
package textdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-level diff between from and to.
func Lines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

// Render formats diffs with one line per source line, prefixed with
// "+", "-" or two spaces. With colorize set, insertions are green and
// deletions red.
func Render(diffs []diffpatch.Diff, colorize bool) string {
	var sb strings.Builder
	for _, d := range diffs {
		var mark string
		var paint func(format string, a ...any) string
		switch d.Type {
		case diffpatch.DiffInsert:
			mark, paint = "+", color.GreenString
		case diffpatch.DiffDelete:
			mark, paint = "-", color.RedString
		default:
			mark, paint = " ", nil
		}
		for _, line := range splitLines(d.Text) {
			out := mark + " " + line
			if colorize && paint != nil {
				out = paint("%s", out)
			}
			sb.WriteString(out)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Unified is the one-call form of Lines plus Render.
func Unified(from, to string, colorize bool) string {
	return Render(Lines(from, to), colorize)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
