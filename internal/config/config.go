// Package config loads the lazycode configuration from YAML and CLI overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chmouel/lazycode/internal/filetype"
	"github.com/chmouel/lazycode/internal/theme"
	"github.com/chmouel/lazycode/internal/utils"
	"github.com/chmouel/lazycode/internal/workspace"
)

// Runtime modes.
const (
	ModeTUI = "tui"
	ModeWeb = "web"
)

// Defaults shared by the CLI flags and DefaultConfig.
const (
	DefaultFile     = "README.md"
	DefaultWidth    = 1200
	DefaultHeight   = 800
	DefaultAddr     = "127.0.0.1:8080"
	DefaultTabWidth = 4

	// Terminal fallbacks used while DefaultWidth/DefaultHeight are in effect.
	DefaultColumns = 120
	DefaultRows    = 40
)

// AppConfig defines the global lazycode configuration options.
type AppConfig struct {
	Workspace        string // Directory scanned at startup; empty means the working directory
	DefaultFile      string // Workspace-relative file opened at startup when present
	Theme            string // Theme name: see AvailableThemes in internal/theme
	ShowIcons        bool
	IconStyle        filetype.IconStyle
	DebugLog         string
	MaxDepth         int
	RespectGitignore bool
	SkipHidden       bool
	AtomicSave       bool   // Save through a temp file and rename
	Mode             string // "tui" or "web"
	Width            int
	Height           int
	Addr             string
	TabWidth         int
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		DefaultFile:      DefaultFile,
		Theme:            theme.DefaultDark(),
		ShowIcons:        true,
		IconStyle:        filetype.IconStyleEmoji,
		MaxDepth:         workspace.DefaultMaxDepth,
		RespectGitignore: false,
		SkipHidden:       false,
		AtomicSave:       false,
		Mode:             ModeTUI,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Addr:             DefaultAddr,
		TabWidth:         DefaultTabWidth,
	}
}

// ScanOptions converts the scan related keys for workspace.NewScanner.
func (c *AppConfig) ScanOptions() workspace.Options {
	return workspace.Options{
		MaxDepth:         c.MaxDepth,
		RespectGitignore: c.RespectGitignore,
		SkipHidden:       c.SkipHidden,
	}
}

// Icons is the effective icon style once ShowIcons is taken into account.
func (c *AppConfig) Icons() filetype.IconStyle {
	if !c.ShowIcons {
		return filetype.IconStyleNone
	}
	return c.IconStyle
}

// TerminalSize returns the columns and rows the TUI starts with. Width and
// Height are page pixels for the web runtime, so the untouched defaults map to
// a terminal-sized fallback.
func (c *AppConfig) TerminalSize() (int, int) {
	if c.Width == DefaultWidth && c.Height == DefaultHeight {
		return DefaultColumns, DefaultRows
	}
	return c.Width, c.Height
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return defaultVal
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return defaultVal
		}
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceString(value any, defaultVal string) string {
	switch v := value.(type) {
	case string:
		if text := strings.TrimSpace(v); text != "" {
			return text
		}
	case int:
		return strconv.Itoa(v)
	}
	return defaultVal
}

// parseConfig overlays the keys found in data on the defaults.
func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

func (c *AppConfig) apply(data map[string]any) {
	c.Workspace = coerceString(data["workspace"], c.Workspace)
	c.DefaultFile = coerceString(data["default_file"], c.DefaultFile)
	c.DebugLog = coerceString(data["debug_log"], c.DebugLog)
	c.Addr = coerceString(data["addr"], c.Addr)

	if raw, ok := data["theme"]; ok {
		if name := NormalizeThemeName(coerceString(raw, "")); name != "" {
			c.Theme = name
		}
	}
	if raw, ok := data["icon_style"]; ok {
		c.IconStyle = filetype.ParseIconStyle(coerceString(raw, string(c.IconStyle)))
	}
	if raw, ok := data["mode"]; ok {
		if mode, err := ParseMode(coerceString(raw, "")); err == nil {
			c.Mode = mode
		}
	}

	c.ShowIcons = coerceBool(data["show_icons"], c.ShowIcons)
	c.RespectGitignore = coerceBool(data["respect_gitignore"], c.RespectGitignore)
	c.SkipHidden = coerceBool(data["skip_hidden"], c.SkipHidden)
	c.AtomicSave = coerceBool(data["atomic_save"], c.AtomicSave)

	if v := coerceInt(data["max_depth"], c.MaxDepth); v > 0 {
		c.MaxDepth = v
	}
	if v := coerceInt(data["width"], c.Width); v > 0 {
		c.Width = v
	}
	if v := coerceInt(data["height"], c.Height); v > 0 {
		c.Height = v
	}
	if v := coerceInt(data["tab_width"], c.TabWidth); v > 0 {
		c.TabWidth = v
	}
}

// ParseMode validates a runtime mode name.
func ParseMode(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeTUI:
		return ModeTUI, nil
	case ModeWeb:
		return ModeWeb, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %s or %s)", mode, ModeTUI, ModeWeb)
	}
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads config.yaml (or config.yml) from the lazycode config
// directory, or configPath when given. Missing files yield the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := filepath.Clean(filepath.Join(getConfigDir(), "lazycode"))

	var paths []string

	if configPath != "" {
		absPath, err := utils.ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
		}

		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name, or "" when unknown.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
