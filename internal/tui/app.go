package tui

import (
	"io"
	"log/slog"

	"roster-cli/internal/i18n"
	"roster-cli/internal/model"
	"roster-cli/internal/nav"
	"roster-cli/internal/roster"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel hosts the two screens. The nav.Controller decides which one is
// shown; appModel only reacts to stack changes.
type appModel struct {
	cat  *i18n.Catalog
	log  *slog.Logger
	seed []model.Entry
	keys keyMap
	help help.Model

	nav   *nav.Controller
	shown nav.Screen

	entry  *entryScreen
	result *resultScreen

	width  int
	height int
}

const maxContentW = 72

func newAppModel(opts Options) appModel {
	cat := opts.Catalog
	if cat == nil {
		cat = i18n.MustLoad("")
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	seed := opts.Seed
	if seed == nil {
		seed = model.SeedEntries()
	}

	m := appModel{
		cat:  cat,
		log:  log,
		seed: seed,
		keys: newKeyMap(cat),
		help: help.New(),
		nav:  nav.NewController(),
	}
	m.nav.OnNavigate(func(from, to nav.StackEntry) {
		log.Debug("navigate", "from", from.Screen.String(), "to", to.Screen.String(), "payload_len", len(to.Route.Payload()))
	})
	m.syncScreen()
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.entry != nil {
		return tea.Batch(textinput.Blink, m.entry.init())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = clampContentWidth(msg.Width)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.shown {
	case nav.ScreenEntry:
		var quit bool
		cmd, quit = m.entry.update(msg)
		if quit {
			return m, tea.Quit
		}
	case nav.ScreenResult:
		if km, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(km, m.keys.Back):
				m.nav.Back()
			case key.Matches(km, m.keys.Quit):
				return m, tea.Quit
			default:
				cmd = m.result.update(km)
			}
		} else {
			cmd = m.result.update(msg)
		}
	}

	return m, tea.Batch(cmd, m.syncScreen())
}

// syncScreen builds the screen for the top of the navigation stack when it
// changed. Entering the entry screen always starts from a fresh seeded list.
func (m *appModel) syncScreen() tea.Cmd {
	cur := m.nav.Current()
	if cur.Screen == m.shown {
		return nil
	}
	m.shown = cur.Screen

	switch cur.Screen {
	case nav.ScreenResult:
		if m.entry != nil {
			m.entry.close()
			m.entry = nil
		}
		m.result = newResultScreen(cur.Route, m.cat)
		m.resize()
		return nil
	default:
		m.result = nil
		m.entry = newEntryScreen(roster.New(m.seed), m.nav, m.cat, m.log)
		m.resize()
		return m.entry.init()
	}
}

func (m *appModel) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	if m.entry != nil {
		m.entry.resize(m.width, m.height)
	}
	if m.result != nil {
		m.result.resize(m.width, m.height)
	}
}

func (m appModel) close() {
	if m.entry != nil {
		m.entry.close()
	}
}

func (m appModel) View() string {
	var body, footer string
	switch m.shown {
	case nav.ScreenResult:
		body = m.result.view()
		footer = m.help.ShortHelpView(m.keys.resultHelp())
	default:
		body = m.entry.view()
		footer = m.help.ShortHelpView(m.keys.entryHelp())
	}

	frame := body + "\n\n" + footer
	if m.width <= 0 || m.height <= 0 {
		return frame
	}
	w := clampContentWidth(m.width)
	frame = normalizePane(frame, w, m.height)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame)
}

func clampContentWidth(width int) int {
	if width <= 0 || width > maxContentW {
		return maxContentW
	}
	return width
}
