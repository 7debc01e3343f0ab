package tui

import (
	"strings"

	"roster-cli/internal/i18n"
	"roster-cli/internal/nav"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// resultScreen shows the payload it was opened with, unmodified.
type resultScreen struct {
	payload string
	title   string

	body         viewport.Model
	contentWidth int
}

// title, gap, rule
const resultHeaderLines = 3

func newResultScreen(route nav.Route, cat *i18n.Catalog) *resultScreen {
	s := &resultScreen{
		payload: route.Payload(),
		title:   cat.T(i18n.ResultTitle),
		body:    viewport.New(40, 5),
	}
	s.setBody()
	return s
}

func (s *resultScreen) resize(width, height int) {
	s.contentWidth = clampContentWidth(width)
	s.body.Width = s.contentWidth
	s.body.Height = max(1, height-resultHeaderLines-2)
	s.setBody()
}

func (s *resultScreen) setBody() {
	w := s.body.Width
	// Only the on-screen layout wraps; the payload itself is kept as received.
	s.body.SetContent(xansi.Hardwrap(s.payload, w, true))
}

func (s *resultScreen) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.body, cmd = s.body.Update(msg)
	return cmd
}

func (s *resultScreen) view() string {
	w := s.contentWidth
	if w <= 0 {
		w = clampContentWidth(0)
	}
	heading := renderHeading(s.title, w)
	return strings.Join([]string{
		lipgloss.PlaceHorizontal(w, lipgloss.Center, heading),
		"",
		styleMuted().Render(strings.Repeat(glyphHRule(), w)),
		s.body.View(),
	}, "\n")
}
