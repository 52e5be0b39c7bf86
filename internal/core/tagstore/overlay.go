package tagstore

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OverlayFilename is looked up in the prompt directory at startup.
const OverlayFilename = "presets.yaml"

type overlayFile struct {
	Presets map[string]overlayPreset `yaml:"presets"`
}

type overlayPreset struct {
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
	// Extend prefixes the shared quality/negative blocks so the overlay
	// only has to list what the preset adds.
	Extend bool `yaml:"extend"`
}

// LoadOverlay parses user-defined presets from a YAML file. A missing file
// is not an error; overlays are optional.
func LoadOverlay(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- overlay path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read preset overlay %s: %w", path, err)
	}

	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse preset overlay %s: %w", path, err)
	}

	out := make(map[string]Preset, len(file.Presets))
	for name, p := range file.Presets {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		preset := Preset{Positive: strings.TrimSpace(p.Positive), Negative: strings.TrimSpace(p.Negative)}
		if p.Extend {
			preset.Positive = joinBlocks(QualityTags, preset.Positive)
			preset.Negative = joinBlocks(StandardNegative, preset.Negative)
		}
		out[key] = preset
	}
	return out, nil
}

// ApplyOverlay registers custom presets on top of the built-in set. Built-in
// names cannot be replaced. Call once during startup, before any lookups.
func ApplyOverlay(overlay map[string]Preset) {
	added := make([]string, 0, len(overlay))
	for name, preset := range overlay {
		if _, exists := presets[name]; exists {
			continue
		}
		presets[name] = preset
		added = append(added, name)
	}
	sort.Strings(added)
	presetOrder = append(presetOrder, added...)
}

func joinBlocks(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + ", " + extra
}
