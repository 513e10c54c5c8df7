package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pricebook/internal/messages"
)

// ErrConfigValidation wraps config validation failures, as opposed to
// filesystem or TOML syntax errors.
var ErrConfigValidation = errors.New("config validation failed")

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadConfigOrDefault reads path, returning Default when the file does not exist.
func LoadConfigOrDefault(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes TOML data over the defaults and validates the result.
// source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	// A url replaces the default dir unless dir was set explicitly.
	if cfg.Source.URL != "" && !setsDir(data) {
		cfg.Source.Dir = ""
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes data rejecting keys the Config struct does not have.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

func setsDir(data []byte) bool {
	var raw struct {
		Source map[string]any `toml:"source"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw.Source["dir"]
	return ok
}
