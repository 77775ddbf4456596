package textwidth

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the maximum visual width (in monospace columns) of the
// provided string. ANSI color sequences are ignored and East Asian wide or
// fullwidth runes occupy two columns.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Truncate shortens s to at most target columns, marking the cut with an
// ellipsis.
func Truncate(s string, target int) string {
	if target <= 0 {
		return ""
	}
	if StringWidth(s) <= target {
		return s
	}
	var sb strings.Builder
	used := 0
	for _, r := range stripANSI(s) {
		w := runeWidth(r)
		if used+w > target-1 {
			break
		}
		sb.WriteRune(r)
		used += w
	}
	sb.WriteString("…")
	return sb.String()
}

func lineWidth(s string) int {
	n := 0
	for _, r := range stripANSI(s) {
		n += runeWidth(r)
	}
	return n
}

func runeWidth(r rune) int {
	switch r {
	case '\r', '\n':
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}
