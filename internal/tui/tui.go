package tui

import (
	"log/slog"

	"roster-cli/internal/i18n"
	"roster-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the interactive program.
type Options struct {
	Catalog *i18n.Catalog
	Logger  *slog.Logger
	// Seed is copied into every fresh entry screen. Nil means model.SeedEntries().
	Seed []model.Entry
	// Theme is auto, light or dark.
	Theme string
	// Glyphs is unicode or ascii.
	Glyphs string
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	final, err := tea.NewProgram(newAppModel(opts), tea.WithAltScreen()).Run()
	if fm, ok := final.(appModel); ok {
		fm.close()
	}
	return err
}
