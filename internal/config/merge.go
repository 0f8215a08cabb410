package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyGauge     = "gauge"
	keyAnimation = "animation"
	keyBreakdown = "breakdown"
	keyLogging   = "logging"
)

// MergeYAML loads a YAML file and applies its top-level sections onto
// target. Fields absent from the file keep their current value. Unknown
// top-level keys are ignored.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}
	return nil
}

// decodeSection decodes one section onto the matching field of target.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyGauge:
		return node.Decode(&target.Gauge)
	case keyAnimation:
		return node.Decode(&target.Animation)
	case keyBreakdown:
		return node.Decode(&target.Breakdown)
	case keyLogging:
		return node.Decode(&target.Logging)
	default:
		return nil
	}
}
