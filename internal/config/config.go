// Package config loads and saves the carbonmeter configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/greenops"
)

// ErrInvalidConfig is returned by Validate and Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables read by ApplyEnv and the path resolution.
const (
	EnvConfig   = "CARBONMETER_CONFIG"
	EnvHome     = "CARBONMETER_HOME"
	EnvLogLevel = "CARBONMETER_LOG_LEVEL"
	EnvLocale   = "CARBONMETER_LOCALE"
)

// Config is the carbonmeter configuration.
type Config struct {
	Gauge     gauge.Config    `yaml:"gauge"`
	Animation AnimationConfig `yaml:"animation"`
	Breakdown BreakdownConfig `yaml:"breakdown"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnimationConfig sets the frame rate of the needle animation.
type AnimationConfig struct {
	FPS int `yaml:"fps"`
}

// BreakdownConfig controls the category panel and number formatting.
type BreakdownConfig struct {
	BarWidth    float64 `yaml:"bar_width"`
	TotalPolicy string  `yaml:"total_policy"` // all or registered
	Locale      string  `yaml:"locale"`
}

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Gauge:     gauge.DefaultConfig(),
		Animation: AnimationConfig{FPS: 60},
		Breakdown: BreakdownConfig{
			BarWidth:    breakdown.DefaultBarWidth,
			TotalPolicy: breakdown.TotalAllKeys.String(),
			Locale:      greenops.DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := New()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	if err := MergeYAML(cfg, path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies CARBONMETER_LOG_LEVEL and CARBONMETER_LOCALE.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		c.Breakdown.Locale = v
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Gauge.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		errs = append(errs, fmt.Errorf("animation.fps must be in 1..240, got %d", c.Animation.FPS))
	}
	if c.Breakdown.BarWidth <= 0 {
		errs = append(errs, fmt.Errorf("breakdown.bar_width must be > 0, got %g", c.Breakdown.BarWidth))
	}
	if _, err := breakdown.ParseTotalPolicy(c.Breakdown.TotalPolicy); err != nil {
		errs = append(errs, fmt.Errorf("breakdown.total_policy: %w", err))
	}
	if _, err := greenops.NewFormatter(c.Breakdown.Locale); err != nil {
		errs = append(errs, fmt.Errorf("breakdown.locale: %w", err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Policy returns the parsed breakdown total policy, TotalAllKeys when unset
// or invalid.
func (c *Config) Policy() breakdown.TotalPolicy {
	p, _ := breakdown.ParseTotalPolicy(c.Breakdown.TotalPolicy)
	return p
}

// Formatter returns the number formatter for the configured locale, falling
// back to the default locale.
func (c *Config) Formatter() *greenops.Formatter {
	f, err := greenops.NewFormatter(c.Breakdown.Locale)
	if err != nil {
		return greenops.MustFormatter(greenops.DefaultLocale)
	}
	return f
}
