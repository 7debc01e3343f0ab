package tui

import (
	"log/slog"
	"strings"

	"roster-cli/internal/i18n"
	"roster-cli/internal/nav"
	"roster-cli/internal/roster"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// entryScreen renders a roster.State and forwards user actions to it.
// It never edits the list itself.
type entryScreen struct {
	state     *roster.State
	navigator nav.Navigator
	cat       *i18n.Catalog
	log       *slog.Logger
	keys      keyMap

	input textinput.Model
	list  viewport.Model
	focus entryFocus

	// listDirty is set by the state subscription; the list viewport is
	// rebuilt on the next render.
	listDirty    bool
	scrollToEnd  bool
	unsubscribe  func()
	contentWidth int
}

// title, gap, input, gap, buttons, rule
const entryHeaderLines = 6

func newEntryScreen(state *roster.State, navigator nav.Navigator, cat *i18n.Catalog, log *slog.Logger) *entryScreen {
	s := &entryScreen{
		state:     state,
		navigator: navigator,
		cat:       cat,
		log:       log,
		keys:      newKeyMap(cat),
		focus:     focusInput,
		listDirty: true,
	}

	s.input = textinput.New()
	s.input.Placeholder = cat.T(i18n.InputPlaceholder)
	s.input.CharLimit = 0
	s.input.Width = 40
	s.input.SetValue(state.Draft().Name)

	s.list = viewport.New(40, 5)

	s.unsubscribe = state.Subscribe(func(c roster.Change) {
		if c.Kind != roster.ChangeCommit {
			return
		}
		s.listDirty = true
		s.scrollToEnd = true
		if s.log != nil {
			s.log.Debug("entry committed", "len", c.Len)
		}
	})
	return s
}

func (s *entryScreen) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *entryScreen) init() tea.Cmd {
	return s.setFocus(focusInput)
}

func (s *entryScreen) setFocus(f entryFocus) tea.Cmd {
	s.focus = f
	if f == focusInput {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *entryScreen) resize(width, height int) {
	w := clampContentWidth(width)
	s.contentWidth = w
	// Leave room for the input padding and prompt.
	s.input.Width = max(10, w-6)
	s.list.Width = w
	s.list.Height = max(1, height-entryHeaderLines-2)
	s.listDirty = true
}

// add commits the draft. Blank drafts are dropped silently.
func (s *entryScreen) add() {
	if s.state.CommitDraft() {
		s.input.SetValue(s.state.Draft().Name)
	}
}

// finish hands the current list to the result screen.
func (s *entryScreen) finish() {
	s.navigator.GoToResult(s.state.Snapshot())
}

// update handles one message. quit is true when the user leaves the root screen.
func (s *entryScreen) update(msg tea.Msg) (cmd tea.Cmd, quit bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus == focusInput {
			s.input, cmd = s.input.Update(msg)
		}
		return cmd, false
	}

	switch {
	case key.Matches(km, s.keys.Next):
		return s.setFocus(s.focus.next()), false
	case key.Matches(km, s.keys.Prev):
		return s.setFocus(s.focus.prev()), false
	case key.Matches(km, s.keys.Submit):
		switch s.focus {
		case focusInput, focusAdd:
			s.add()
		case focusFinish:
			s.finish()
		}
		return nil, false
	case key.Matches(km, s.keys.Scroll):
		s.list, cmd = s.list.Update(km)
		return cmd, false
	case km.String() == "esc":
		return nil, true
	}

	if s.focus != focusInput {
		switch {
		case key.Matches(km, s.keys.Quit):
			return nil, true
		case km.String() == " ":
			// Space activates the focused button.
			if s.focus == focusAdd {
				s.add()
			} else {
				s.finish()
			}
			return nil, false
		}
		s.list, cmd = s.list.Update(km)
		return cmd, false
	}

	before := s.input.Value()
	s.input, cmd = s.input.Update(km)
	if after := s.input.Value(); after != before {
		s.state.UpdateDraft(after)
	}
	return cmd, false
}

func (s *entryScreen) refreshList() {
	if !s.listDirty {
		return
	}
	s.listDirty = false

	w := s.list.Width
	lines := make([]string, 0, s.state.Len())
	for _, e := range s.state.Entries() {
		name := sanitizeLine(e.Name)
		lines = append(lines, lipgloss.PlaceHorizontal(w, lipgloss.Center, styleEntryName().Render(name)))
	}
	s.list.SetContent(strings.Join(lines, "\n"))
	if s.scrollToEnd {
		s.list.GotoBottom()
		s.scrollToEnd = false
	}
}

func (s *entryScreen) view() string {
	s.refreshList()
	w := s.contentWidth
	if w <= 0 {
		w = clampContentWidth(0)
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(w, lipgloss.Center, str)
	}

	title := center(styleTitle().Render(s.cat.T(i18n.EnterItem)))
	input := renderInputLine(w, s.input.View(), s.focus == focusInput)
	buttons := center(lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderButton(s.cat.T(i18n.ButtonAdd), s.focus == focusAdd),
		"  ",
		renderButton(s.cat.T(i18n.ButtonFinish), s.focus == focusFinish),
	))

	return strings.Join([]string{
		title,
		"",
		input,
		"",
		buttons,
		styleMuted().Render(strings.Repeat(glyphHRule(), w)),
		s.list.View(),
	}, "\n")
}

func sanitizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
