package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Mode selects the front end
type Mode string

const (
	ModeConsole Mode = "console"
	ModeTUI     Mode = "tui"
)

// ClearPolicy controls when the console front end clears the screen
type ClearPolicy string

const (
	ClearAuto   ClearPolicy = "auto"   // Only when stdout is a terminal
	ClearAlways ClearPolicy = "always"
	ClearNever  ClearPolicy = "never"
)

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds front end configuration
type UIConfig struct {
	Mode        Mode        `mapstructure:"mode"`
	ClearScreen ClearPolicy `mapstructure:"clear_screen"`
}

// SearchConfig holds search behaviour
type SearchConfig struct {
	Suggestions bool `mapstructure:"suggestions"` // Offer a close title on a miss
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Mode:        ModeConsole,
			ClearScreen: ClearAuto,
		},
		Search: SearchConfig{
			Suggestions: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookshelf", "bookshelf.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookshelf", "bookshelf.log")
	}
}

// DefaultConfigPath returns the default config directory for the current OS
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookshelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bookshelf")
	}
}

// LoadConfig loads configuration from the default locations, a .env file and
// BOOKSHELF_* environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	return Load(viper.New(), DefaultConfigPath(), ".")
}

// Load reads config.yaml from the given search paths into a Config seeded
// with defaults. A missing file is not an error.
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides, e.g. BOOKSHELF_UI_MODE
	v.SetEnvPrefix("BOOKSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindDefaults registers every key so AutomaticEnv overrides reach Unmarshal
// even when no config file mentions them.
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("ui.mode", string(cfg.UI.Mode))
	v.SetDefault("ui.clear_screen", string(cfg.UI.ClearScreen))
	v.SetDefault("search.suggestions", cfg.Search.Suggestions)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate rejects unknown enum values
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case ModeConsole, ModeTUI:
	default:
		return fmt.Errorf("invalid ui.mode %q (want %q or %q)", c.UI.Mode, ModeConsole, ModeTUI)
	}

	switch c.UI.ClearScreen {
	case ClearAuto, ClearAlways, ClearNever:
	default:
		return fmt.Errorf("invalid ui.clear_screen %q (want auto, always or never)", c.UI.ClearScreen)
	}

	return nil
}
