package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmeter/internal/config"
)

// writeConfig is a test helper that writes YAML content to a temp file
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMergeYAML_PartialSectionKeepsDefaults(t *testing.T) {
	target := config.New()
	path := writeConfig(t, `
gauge:
  max: 20000
breakdown:
  locale: en
`)

	require.NoError(t, config.MergeYAML(target, path))

	assert.InDelta(t, 20000.0, target.Gauge.Max, 0)
	assert.InDelta(t, 0.1, target.Gauge.Damping, 0)
	assert.Equal(t, 300, target.Gauge.Width)
	assert.Equal(t, "en", target.Breakdown.Locale)
	assert.InDelta(t, 200.0, target.Breakdown.BarWidth, 0)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.New()
	path := writeConfig(t, `
plugins:
  aws: {}
animation:
  fps: 30
`)

	require.NoError(t, config.MergeYAML(target, path))
	assert.Equal(t, 30, target.Animation.FPS)
}

func TestMergeYAML_EmptyFile(t *testing.T) {
	target := config.New()
	path := writeConfig(t, "# nothing here\n")

	require.NoError(t, config.MergeYAML(target, path))
	assert.Equal(t, config.New(), target)
}

func TestMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.MergeYAML(nil, "unused"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.MergeYAML(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		err := config.MergeYAML(config.New(), writeConfig(t, "gauge: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := config.MergeYAML(config.New(), writeConfig(t, "gauge:\n  max: lots\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"gauge"`)
	})
}
