// ABOUTME: Application configuration loaded from file and environment
// ABOUTME: Env var overrides use the PURGE_ prefix; file is optional TOML
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Scan  ScanConfig
	Audit AuditConfig
	Run   RunConfig
}

// ScanConfig holds directory-scan settings.
type ScanConfig struct {
	Root string // empty means the per-OS system volume root
}

// AuditConfig holds removal-log settings.
type AuditConfig struct {
	Enabled bool
	Path    string
}

// RunConfig holds execution settings.
type RunConfig struct {
	Workers int
}

// Load reads configuration from file and env. Env var overrides use the
// prefix PURGE_; PURGE_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("scan.root", "")
	v.SetDefault("audit.enabled", true)
	v.SetDefault("audit.path", filepath.Join(MustPurgeHome(), "audit", "removals.log"))
	v.SetDefault("run.workers", 4)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PURGE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(userConfigDir(), "purge"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PURGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
