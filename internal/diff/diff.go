// Package diff computes and renders unified diffs between stored page
// versions for terminal display.
package diff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Colors for terminal rendering. fatih/color disables them automatically
// when stdout is not a terminal or NO_COLOR is set.
var (
	headerColor = color.New(color.Bold)
	hunkColor   = color.New(color.FgCyan)
	addColor    = color.New(color.FgGreen)
	delColor    = color.New(color.FgRed)
)

// Unified returns the unified diff between from and to, labeled with
// fromLabel and toLabel. The result is empty when the inputs are equal.
func Unified(from, to, fromLabel, toLabel string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  contextLines,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// ChangedLines filters a unified diff down to its removal and addition
// lines, dropping hunk markers and context. The file header lines start
// with the same prefixes and are kept.
func ChangedLines(unified string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(unified, "\n") {
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
			b.WriteString(line)
		}
	}
	return b.String()
}

// Highlight colors a diff for terminal display: additions green,
// removals red, file headers bold, hunk markers cyan. Lines without a
// diff prefix pass through unchanged.
func Highlight(unified string) string {
	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			lines[i] = headerColor.Sprint(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkColor.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addColor.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = delColor.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}
