// Package config loads CLI settings from a TOML file and GRIDPATH_*
// environment variables.
//
// Precedence, lowest first: Default, the file, the environment. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/gridpath/search"
)

// Environment variable names.
const (
	EnvRows          = "GRIDPATH_ROWS"
	EnvCols          = "GRIDPATH_COLS"
	EnvAlgorithm     = "GRIDPATH_ALGORITHM"
	EnvHistoryPath   = "GRIDPATH_HISTORY"
	EnvPlaybackDelay = "GRIDPATH_PLAYBACK_DELAY"
	EnvLogLevel      = "GRIDPATH_LOG_LEVEL"
	EnvNoColor       = "GRIDPATH_NO_COLOR"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	Rows          int              `toml:"rows" validate:"gte=1,lte=4096"`
	Cols          int              `toml:"cols" validate:"gte=1,lte=4096"`
	Algorithm     search.Algorithm `toml:"algorithm"`
	HistoryPath   string           `toml:"history_path" validate:"required"`
	PlaybackDelay Duration         `toml:"playback_delay"`
	LogLevel      string           `toml:"log_level" validate:"oneof=debug info warn error"`
	NoColor       bool             `toml:"no_color"`
}

// Duration is a time.Duration that reads and writes as "60ms" in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)

	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// stateDir is ~/.local/state/gridpath, or .gridpath when there is no home.
func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".gridpath"
	}

	return filepath.Join(home, ".local", "state", "gridpath")
}

// DefaultPath is where the CLI looks for its config file.
func DefaultPath() string {
	return filepath.Join(stateDir(), "config.toml")
}

// Default returns the built-in settings: a 10×10 grid, BFS, 60ms playback.
func Default() Config {
	return Config{
		Rows:          10,
		Cols:          10,
		Algorithm:     search.BFS,
		HistoryPath:   filepath.Join(stateDir(), "history"),
		PlaybackDelay: Duration(60 * time.Millisecond),
		LogLevel:      "info",
	}
}

// Load reads path over Default, applies the environment and validates.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes cfg to path as TOML, creating the directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func applyEnv(cfg *Config) error {
	var err error
	if v := os.Getenv(EnvRows); v != "" {
		if cfg.Rows, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvRows, err)
		}
	}
	if v := os.Getenv(EnvCols); v != "" {
		if cfg.Cols, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvCols, err)
		}
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		if cfg.Algorithm, err = search.ParseAlgorithm(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvAlgorithm, err)
		}
	}
	if v := os.Getenv(EnvPlaybackDelay); v != "" {
		if err = cfg.PlaybackDelay.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("config: %s: %w", EnvPlaybackDelay, err)
		}
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		if cfg.NoColor, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvNoColor, err)
		}
	}
	cfg.HistoryPath = envOrDefault(EnvHistoryPath, cfg.HistoryPath)
	cfg.LogLevel = NormalizeLevel(envOrDefault(EnvLogLevel, cfg.LogLevel))

	return nil
}

var validate = validator.New()

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalid, search.ErrUnknownAlgorithm)
	}
	if c.PlaybackDelay < 0 {
		return fmt.Errorf("%w: playback_delay must not be negative", ErrInvalid)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// NormalizeLevel lower-cases a level name and folds the "warning" alias
// into "warn", the spelling Validate accepts.
func NormalizeLevel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return "warn"
	}

	return s
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog.Level.
// Anything else is Info.
func ParseLevel(s string) slog.Level {
	switch NormalizeLevel(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
