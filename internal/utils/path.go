// Package utils holds small helpers shared by config and bootstrap.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and environment variables, then makes the
// result absolute. The empty string is returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded := os.ExpandEnv(path)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
	}
	return filepath.Abs(expanded)
}
