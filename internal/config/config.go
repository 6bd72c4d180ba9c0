// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// First run writes the defaults out so they can be edited
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.tls_enabled", false)
	// Proxies allowed to set X-Forwarded-For; empty trusts none
	v.SetDefault("server.trusted_proxies", []string{})

	// Theme defaults
	v.SetDefault("theme.default_palette", "slate")
	v.SetDefault("theme.dark_mode", false)
	v.SetDefault("theme.css_selector", ":root")

	// Rate limiting for POST /api/variables
	v.SetDefault("ratelimit.requests", 60)
	v.SetDefault("ratelimit.interval", "1m")
}

// ThemeSettings are the defaults applied when a request or command does not
// name a palette, mode or selector.
type ThemeSettings struct {
	Palette  string
	DarkMode bool
	Selector string
}

// Theme returns the configured theme defaults, falling back to the built-in
// ones when the config has not been initialized.
func Theme() ThemeSettings {
	s := ThemeSettings{Palette: "slate", Selector: ":root"}
	if v == nil {
		return s
	}
	if p := v.GetString("theme.default_palette"); p != "" {
		s.Palette = p
	}
	if sel := v.GetString("theme.css_selector"); sel != "" {
		s.Selector = sel
	}
	s.DarkMode = v.GetBool("theme.dark_mode")
	return s
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a string slice
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
