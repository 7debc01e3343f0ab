package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	Seed SeedConfig `mapstructure:"seed"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Lang   string `mapstructure:"lang"`
	Theme  string `mapstructure:"theme"`
	Glyphs string `mapstructure:"glyphs"`
}

// LogConfig holds logger settings. An empty Path discards log output.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// SeedConfig lists the names a fresh entry screen starts with.
type SeedConfig struct {
	Names []string `mapstructure:"names"`
}

// DefaultPath is where the config file is looked up when ROSTER_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "roster", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix ROSTER_
// (e.g. ROSTER_UI_LANG, ROSTER_SEED_NAMES="Tanu,Tina"). A missing config file is
// not an error.
//
// path overrides ROSTER_CONFIG and the default location when non-empty.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.lang", "en")
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.glyphs", "unicode")
	v.SetDefault("log.level", "error")
	v.SetDefault("log.path", "")
	v.SetDefault("seed.names", []string{"Tanu", "Tina", "Tono"})

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("ROSTER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Lang = strings.TrimSpace(c.UI.Lang)
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.UI.Glyphs = strings.ToLower(strings.TrimSpace(c.UI.Glyphs))
	return c, nil
}
