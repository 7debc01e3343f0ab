package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a text input as one padded line of exactly bodyW columns.
func renderInputLine(bodyW int, inputView string, focused bool) string {
	bodyW = max(bodyW, 10)

	// Keep the input on a single visual line even if the view carries newlines.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	marker := " "
	if focused {
		marker = lipgloss.NewStyle().Foreground(colorAccent).Render(glyphFocus())
	}

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		marker+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate styling so a cut escape sequence cannot bleed into the next line.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

func renderButton(label string, focused bool) string {
	return styleButton(focused).Render(label)
}
