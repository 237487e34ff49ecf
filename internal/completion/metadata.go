// Package completion describes the lazycode flags for shell completion.
package completion

import (
	"github.com/chmouel/lazycode/internal/config"
	"github.com/chmouel/lazycode/internal/theme"
)

// FlagInfo contains metadata about a command-line flag for completion generation.
type FlagInfo struct {
	Name        string   // Flag name without dashes
	Short       string   // Single-letter alias, if any
	Description string   // Human-readable description
	HasValue    bool     // true for string flags, false for bool flags
	ValueHint   string   // Hint for value type (e.g., "DIR", "PATH", "NAME")
	Values      []string // Enumerated values for completion (e.g., theme names)
}

// Subcommands lists the lazycode subcommands.
var Subcommands = []string{"tree", "completion"}

// Shells lists the shells a completion script can be generated for.
var Shells = []string{"bash", "zsh", "fish"}

// GetFlags returns metadata for all lazycode command-line flags.
// This is the single source of truth for shell completion generation.
func GetFlags() []FlagInfo {
	return []FlagInfo{
		{
			Name:        "mode",
			Short:       "m",
			Description: "Runtime to start",
			HasValue:    true,
			ValueHint:   "MODE",
			Values:      []string{config.ModeTUI, config.ModeWeb},
		},
		{
			Name:        "width",
			Description: "Window width",
			HasValue:    true,
			ValueHint:   "N",
		},
		{
			Name:        "height",
			Description: "Window height",
			HasValue:    true,
			ValueHint:   "N",
		},
		{
			Name:        "addr",
			Description: "Listen address of the web mode",
			HasValue:    true,
			ValueHint:   "HOST:PORT",
		},
		{
			Name:        "theme",
			Short:       "t",
			Description: "Override UI theme",
			HasValue:    true,
			ValueHint:   "NAME",
			Values:      theme.AvailableThemes(),
		},
		{
			Name:        "open",
			Short:       "o",
			Description: "File opened at startup",
			HasValue:    true,
			ValueHint:   "FILE",
		},
		{
			Name:        "debug-log",
			Description: "Path to debug log file",
			HasValue:    true,
			ValueHint:   "PATH",
		},
		{
			Name:        "config-file",
			Description: "Path to configuration file",
			HasValue:    true,
			ValueHint:   "FILE",
		},
		{
			Name:        "config",
			Short:       "C",
			Description: "Override config values",
			HasValue:    true,
			ValueHint:   "lc.KEY=VALUE",
			Values:      ConfigKeys(),
		},
		{
			Name:        "show-themes",
			Description: "List available themes",
		},
		{
			Name:        "version",
			Short:       "v",
			Description: "Print version information",
		},
	}
}

// ConfigKeys returns the override prefixes accepted by --config.
func ConfigKeys() []string {
	keys := config.KnownKeys()
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, "lc."+key+"=")
	}
	return out
}
