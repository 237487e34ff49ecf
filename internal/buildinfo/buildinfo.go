// Package buildinfo holds the build metadata of the lazycode binary.
// cmd/lazycode forwards its linker variables through Set at startup.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
	dirty   bool
)

// Set stores the build metadata received from linker-injected variables.
func Set(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
	dirty = false
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// BuiltBy returns the build agent string.
func BuiltBy() string { return builtBy }

// Summary is the one-line form printed by --version and the web footer.
func Summary() string {
	c := commit
	if len(c) > 12 {
		c = c[:12]
	}
	if dirty {
		c += "-dirty"
	}
	return fmt.Sprintf("lazycode %s (commit %s, built %s by %s)", version, c, date, builtBy)
}

// Enrich fills placeholders from runtime/debug.ReadBuildInfo: the VCS
// revision and modified flag for commit, the Go version for builtBy.
func Enrich() {
	if commit != "none" && builtBy != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if commit == "none" {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commit = setting.Value
			case "vcs.modified":
				dirty = setting.Value == "true"
			}
		}
	}

	if builtBy == "unknown" {
		builtBy = info.GoVersion
	}
}
