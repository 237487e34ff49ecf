package config

import (
	"fmt"
	"sort"
	"strings"
)

const overridePrefix = "lc."

// parseCLIConfigOverrides parses --config=lc.key=value format.
// Returns a map suitable for parseConfig().
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: lc.key=value (note: use = not space)", override)
		}

		fullKey := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(fullKey, overridePrefix) {
			return nil, fmt.Errorf("config override key must start with %q: %q", overridePrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, overridePrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}
		if !knownKeys[key] {
			return nil, fmt.Errorf("unknown config key %q", key)
		}

		// Every key is single-valued; the last occurrence wins.
		result[key] = parts[1]
	}

	return result, nil
}

var knownKeys = map[string]bool{
	"workspace":         true,
	"default_file":      true,
	"theme":             true,
	"show_icons":        true,
	"icon_style":        true,
	"debug_log":         true,
	"max_depth":         true,
	"respect_gitignore": true,
	"skip_hidden":       true,
	"atomic_save":       true,
	"mode":              true,
	"width":             true,
	"height":            true,
	"addr":              true,
	"tab_width":         true,
}

// KnownKeys returns the configuration keys accepted by overrides, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for key := range knownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ApplyCLIOverrides applies --config lc.key=value pairs on top of c.
// Values that fail validation (unknown theme, bad mode) are reported.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	if raw, ok := data["theme"]; ok {
		if NormalizeThemeName(raw.(string)) == "" {
			return fmt.Errorf("unknown theme %q", raw)
		}
	}
	if raw, ok := data["mode"]; ok {
		if _, err := ParseMode(raw.(string)); err != nil {
			return err
		}
	}
	c.apply(data)
	return nil
}
