package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 10000.0, cfg.Gauge.Max, 0)
	assert.InDelta(t, 80.0, cfg.Gauge.NeedleLength, 0)
	assert.Equal(t, 60, cfg.Animation.FPS)
	assert.Equal(t, "pt-BR", cfg.Breakdown.Locale)
	assert.Equal(t, breakdown.TotalAllKeys, cfg.Policy())
	assert.Equal(t, "pt-BR", cfg.Formatter().Locale())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
gauge:
  max: 5000
  damping: 0.25
breakdown:
  total_policy: registered
logging:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, cfg.Gauge.Max, 0)
	assert.InDelta(t, 0.25, cfg.Gauge.Damping, 0)
	assert.Equal(t, breakdown.TotalRegisteredOnly, cfg.Policy())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero max", "gauge:\n  max: 0\n"},
		{"damping above one", "gauge:\n  damping: 1.5\n"},
		{"radius too large", "gauge:\n  radius: 500\n"},
		{"fps", "animation:\n  fps: 0\n"},
		{"policy", "breakdown:\n  total_policy: some\n"},
		{"locale", "breakdown:\n  locale: \"!!\"\n"},
		{"bar width", "breakdown:\n  bar_width: -1\n"},
		{"log format", "logging:\n  format: xml\n"},
		{"malformed", "gauge: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Gauge.Max = 7500
	cfg.Breakdown.Locale = "en"

	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLocale, "en-US")

	cfg := config.New()
	cfg.ApplyEnv()

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "en-US", cfg.Breakdown.Locale)
}

func TestFormatter_FallsBackOnInvalidLocale(t *testing.T) {
	cfg := config.New()
	cfg.Breakdown.Locale = "!!"
	assert.Equal(t, "pt-BR", cfg.Formatter().Locale())
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/var/log/carbonmeter.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/var/log/carbonmeter.log", got.File)
}
