// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// SingleLine collapses all runs of whitespace, newlines included, to one space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate flattens s to one line and cuts it to maxWidth visual columns,
// ending with … when anything was dropped.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = SingleLine(s)
	if VisualWidth(s) <= maxWidth {
		return s
	}

	// The ellipsis takes 1 column.
	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth <= 0 {
		return TruncateEllipsis
	}

	result := make([]rune, 0, len(s))
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > availableWidth {
			break
		}
		result = append(result, r)
		width += rw
	}
	return string(result) + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth visual columns, truncating
// when it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-currentWidth)
}
