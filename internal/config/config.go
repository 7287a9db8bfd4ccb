// Package config loads shelf's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/shelf/internal/playlist"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	appName = "shelf"

	DefaultScanWorkers = 8
	MaxScanWorkers     = 256
	MinVolumeDB        = -40.0
	MaxVolumeDB        = 0.0
)

type Config struct {
	LibraryRoot string    `koanf:"library_root"`  // folder scanned when the library is empty
	ScanWorkers int       `koanf:"scan_workers"`  // concurrent tag readers during a scan
	LoopMode    string    `koanf:"loop_mode"`     // "none", "track" or "queue"
	VolumeDB    float64   `koanf:"volume_db"`     // used until a volume has been saved
	Notify      bool      `koanf:"notifications"` // desktop notification per started track
	Log         LogConfig `koanf:"log"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text or json
	File   string `koanf:"file"`
}

// Default returns the configuration used when no file sets a key.
func Default() *Config {
	return &Config{
		ScanWorkers: DefaultScanWorkers,
		LoopMode:    playlist.LoopNone.String(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(xdg.StateHome, appName, appName+".log"),
		},
	}
}

// Load reads the user config then ./config.toml; later files override
// earlier ones. Missing files are skipped.
func Load() (*Config, error) {
	var existing []string
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return load(existing...)
}

// LoadFrom reads a single explicit config file, which must exist.
func LoadFrom(path string) (*Config, error) {
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return load(path)
}

func load(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.LibraryRoot = expandPath(c.LibraryRoot)
	c.Log.File = expandPath(c.Log.File)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	switch {
	case c.ScanWorkers <= 0:
		c.ScanWorkers = DefaultScanWorkers
	case c.ScanWorkers > MaxScanWorkers:
		c.ScanWorkers = MaxScanWorkers
	}
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if _, err := playlist.ParseLoopMode(c.LoopMode); err != nil {
		return fmt.Errorf("%w: loop_mode: %w", ErrInvalidConfig, err)
	}
	if c.VolumeDB < MinVolumeDB || c.VolumeDB > MaxVolumeDB {
		return fmt.Errorf("%w: volume_db %.1f outside [%.0f, %.0f]",
			ErrInvalidConfig, c.VolumeDB, MinVolumeDB, MaxVolumeDB)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Loop returns the configured loop mode. Call after Validate.
func (c *Config) Loop() playlist.LoopMode {
	m, _ := playlist.ParseLoopMode(c.LoopMode)
	return m
}

// HasLibraryRoot returns true if a library folder is configured.
func (c *Config) HasLibraryRoot() bool {
	return c.LibraryRoot != ""
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/shelf/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
