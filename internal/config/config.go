// Package config loads the pricebook configuration file.
package config

import "time"

// DefaultTimeout bounds a single document fetch.
const DefaultTimeout = 10 * time.Second

// Config is the decoded config.toml.
type Config struct {
	Source SourceConfig `toml:"source"`
	Log    LogConfig    `toml:"log"`
}

// SourceConfig says where database.html is read from. Exactly one of Dir and
// URL is set; the document name itself is fixed.
type SourceConfig struct {
	Dir            string `toml:"dir,omitempty"`
	URL            string `toml:"url,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Source: SourceConfig{Dir: "."},
		Log:    LogConfig{Level: "warn"},
	}
}

// Timeout returns the fetch timeout.
func (s SourceConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// IsRemote reports whether the document is fetched over HTTP.
func (s SourceConfig) IsRemote() bool {
	return s.URL != ""
}
