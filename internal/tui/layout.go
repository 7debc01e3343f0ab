package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall, so the frame never wraps or scrolls the terminal.
func normalizePane(s string, width, height int) string {
	width = max(width, 0)
	height = max(height, 0)

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(ln string, width int) string {
	// Bound the work on pathological lines before measuring them.
	if width > 0 && len(ln) > 8192 {
		ln = truncateLine(ln, width)
	}

	w := xansi.StringWidth(ln)
	if w > width {
		ln = truncateLine(ln, width)
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

func truncateLine(ln string, width int) string {
	switch {
	case width <= 0:
		return ""
	case width == 1:
		return xansi.Cut(ln, 0, 1)
	default:
		return xansi.Cut(ln, 0, width-1) + "…"
	}
}
