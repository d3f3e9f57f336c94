package ui

import "time"

// formatAddedDate renders a creation timestamp the way the detail view shows
// it, e.g. "April 3, 2025". Zero times produce an empty string.
func formatAddedDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// rowWidths bounds the title and author columns of a list row for the given
// terminal width. Wide terminals get the full column caps; narrow ones split
// what remains after the badge and padding.
func rowWidths(width int) (titleMax, authorMax int) {
	const (
		titleCap  = 40
		authorCap = 30
		chrome    = 16 // badge, "by ", marker, padding
	)
	titleMax, authorMax = titleCap, authorCap
	if avail := width - chrome; avail < titleCap+authorCap {
		titleMax = avail / 2
		authorMax = avail - titleMax
	}
	if titleMax < 0 {
		titleMax = 0
	}
	if authorMax < 0 {
		authorMax = 0
	}
	return titleMax, authorMax
}

// truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
