package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""), "empty")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultTimeout, cfg.Source.Timeout())
	assert.False(t, cfg.Source.IsRemote())
}

func TestParseConfig_Dir(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[source]
dir = "/srv/shop"
timeout_seconds = 3

[log]
level = "debug"
`), "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/shop", cfg.Source.Dir)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseConfig_URLReplacesDefaultDir(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[source]
url = "https://example.github.io/shop/"
`), "config.toml")
	require.NoError(t, err)
	assert.Empty(t, cfg.Source.Dir)
	assert.True(t, cfg.Source.IsRemote())
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		contains   string
		validation bool
	}{
		{name: "syntax", data: "[source", contains: "invalid config"},
		{name: "unknown key", data: "[source]\nfile = \"db.html\"", contains: "unrecognized", validation: true},
		{name: "both", data: "[source]\ndir = \".\"\nurl = \"https://x.io\"", contains: "both", validation: true},
		{name: "bad scheme", data: "[source]\nurl = \"ftp://x.io\"", contains: "url", validation: true},
		{name: "negative timeout", data: "[source]\ntimeout_seconds = -1", contains: "timeout", validation: true},
		{name: "log level", data: "[log]\nlevel = \"loud\"", contains: "level", validation: true},
		{name: "empty dir", data: "[source]\ndir = \"\"", contains: "dir or", validation: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), "config.toml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Equal(t, tt.validation, errorsIsValidation(err))
		})
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfigOrDefault(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[source]\ndir = \"data\"\n"), 0o644))
	cfg, err = LoadConfigOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Source.Dir)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestPaths(t *testing.T) {
	paths := PathsIn("/etc/pb")
	assert.Equal(t, filepath.Join("/etc/pb", "config.toml"), paths.ConfigPath)
	assert.Equal(t, filepath.Join("/etc/pb", "preferences.toml"), paths.PreferencesPath)

	paths, err := PathsForConfigFile("/opt/shop/pb.toml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/shop/pb.toml", paths.ConfigPath)
	assert.Equal(t, filepath.Join("/opt/shop", "preferences.toml"), paths.PreferencesPath)

	paths, err = DefaultPaths()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(paths.Dir))
}
