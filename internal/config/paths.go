// ABOUTME: Centralized path resolution for the purge home directory
// ABOUTME: Respects the PURGE_HOME environment variable for isolation

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// MustPurgeHome returns the purge home directory.
// Checks PURGE_HOME env var first, falls back to ~/.purge.
// Panics if PURGE_HOME is set but invalid (whitespace-only or relative path).
// Panics if home directory cannot be determined.
func MustPurgeHome() string {
	if home := os.Getenv("PURGE_HOME"); home != "" {
		home = strings.TrimSpace(home)
		if home == "" {
			panic("PURGE_HOME is set but contains only whitespace")
		}
		if !filepath.IsAbs(home) {
			panic("PURGE_HOME must be an absolute path: " + home)
		}
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic("cannot determine home directory: " + err.Error())
	}
	return filepath.Join(homeDir, ".purge")
}
