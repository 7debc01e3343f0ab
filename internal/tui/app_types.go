package tui

import (
	"roster-cli/internal/i18n"

	"github.com/charmbracelet/bubbles/key"
)

type entryFocus int

const (
	focusInput entryFocus = iota
	focusAdd
	focusFinish
)

const entryFocusCount = 3

func (f entryFocus) next() entryFocus { return (f + 1) % entryFocusCount }

func (f entryFocus) prev() entryFocus { return (f + entryFocusCount - 1) % entryFocusCount }

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Scroll key.Binding
	Back   key.Binding
	Quit   key.Binding
	// ForceQuit works even while the input has focus.
	ForceQuit key.Binding
}

func newKeyMap(cat *i18n.Catalog) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", cat.T(i18n.HelpFocus)),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", cat.T(i18n.HelpSubmit)),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", cat.T(i18n.HelpScroll)),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", cat.T(i18n.HelpBack)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", cat.T(i18n.HelpQuit)),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func (k keyMap) entryHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Scroll, k.Back}
}

func (k keyMap) resultHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Back, k.Quit}
}
