package cli

import (
	"fmt"
	"os"
	"strings"

	"roster-cli/internal/config"
	"roster-cli/internal/format"
	"roster-cli/internal/i18n"
	"roster-cli/internal/logging"
	"roster-cli/internal/model"
	"roster-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	PrettyJSON bool
	Format     string
	Lang       string
	LogLevel   string
	LogPath    string

	cfg config.Config
	log *logging.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "roster",
		Short:        "Collect names and hand the list to a result screen",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  roster

  # Same flow without a terminal UI
  roster snapshot --add Budi --add Siti

  # Inspect the result route encoding
  roster route --payload "[Entry(name=Tanu)]"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.log.Close()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("ROSTER_CONFIG", ""), "Path to config file (default ~/.config/roster/config.toml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("ROSTER_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.Lang, "lang", "", "UI language (overrides ui.lang)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides log.level)")
	cmd.PersistentFlags().StringVar(&app.LogPath, "log-path", "", "Log file path (overrides log.path)")

	cmd.AddCommand(newSnapshotCmd(app))
	cmd.AddCommand(newRouteCmd(app))

	return cmd
}

// load reads config and opens the logger. Flags win over config values.
func (app *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.UI.Lang = app.Lang
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = app.LogLevel
	}
	if flags.Changed("log-path") {
		cfg.Log.Path = app.LogPath
	}
	app.cfg = cfg

	l, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		// Logging is best-effort; keep going with a discarding logger.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: log file unavailable: %v\n", err)
	}
	app.log = l
	return nil
}

func (app *App) catalog() (*i18n.Catalog, error) {
	cat, err := i18n.Load(app.cfg.UI.Lang)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	return cat, nil
}

func (app *App) seed() []model.Entry {
	return model.EntriesFromNames(app.cfg.Seed.Names)
}

func runTUI(app *App) error {
	cat, err := app.catalog()
	if err != nil {
		return err
	}
	app.log.Debug("starting tui", "lang", cat.Language().String(), "seed", len(app.cfg.Seed.Names))
	return tui.Run(tui.Options{
		Catalog: cat,
		Logger:  app.log.Logger,
		Seed:    app.seed(),
		Theme:   app.cfg.UI.Theme,
		Glyphs:  app.cfg.UI.Glyphs,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, data any) error {
	return format.Write(cmd.OutOrStdout(), format.Envelope{Data: data}, app.Format, app.PrettyJSON)
}
