package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/pricebook/internal/messages"
)

// DefaultDir is the config directory relative to the user's home.
const DefaultDir = "~/.config/pricebook"

// Paths holds resolved paths for config files.
type Paths struct {
	Dir             string
	ConfigPath      string
	PreferencesPath string
}

// DefaultPaths returns the paths under the user's home directory.
func DefaultPaths() (Paths, error) {
	dir, err := homedir.Expand(DefaultDir)
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return PathsIn(dir), nil
}

// PathsIn returns the paths for a config directory.
func PathsIn(dir string) Paths {
	return Paths{
		Dir:             dir,
		ConfigPath:      filepath.Join(dir, "config.toml"),
		PreferencesPath: filepath.Join(dir, "preferences.toml"),
	}
}

// PathsForConfigFile returns paths for an explicit config file; preferences
// live next to it.
func PathsForConfigFile(path string) (Paths, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Paths{}, fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	paths := PathsIn(filepath.Dir(expanded))
	paths.ConfigPath = expanded
	return paths, nil
}
