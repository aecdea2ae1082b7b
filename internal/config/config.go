// Package config holds compile-time constants and the runtime configuration
// loaded from defaults, an optional YAML file and COUNTDIAL_* environment
// variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/countdial/internal/util"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, off.
	LogLevel string `koanf:"log_level"`

	// LogFile receives log output while the dial owns the terminal.
	LogFile string `koanf:"log_file"`

	// DBPath is the sqlite file holding dial state and countdown history.
	DBPath string `koanf:"db_path"`

	// TickInterval is the pause between countdown values.
	TickInterval time.Duration `koanf:"tick_interval"`

	// TiltOffset is the maximum lean while dragging.
	TiltOffset float64 `koanf:"tilt_offset"`

	// Theme is the initial theme when none has been saved.
	Theme string `koanf:"theme"`

	// ReportsDir is where PDF history reports are written.
	ReportsDir string `koanf:"reports_dir"`
}

// New returns a Config with defaults rooted in the user's data directory.
func New() *Config {
	dataDir := util.DataDir(AppName)
	return &Config{
		LogLevel:     "info",
		LogFile:      filepath.Join(dataDir, LogFileName),
		DBPath:       filepath.Join(dataDir, DBFileName),
		TickInterval: TickInterval,
		TiltOffset:   TiltOffset,
		Theme:        ThemeLight,
		ReportsDir:   util.ReportsDir(AppName),
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.TiltOffset < 0 {
		return fmt.Errorf("%w: tilt_offset must not be negative, got %v", ErrInvalidConfig, c.TiltOffset)
	}
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "off":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
