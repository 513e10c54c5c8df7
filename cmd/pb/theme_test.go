package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pricebook/internal/theme"
)

func TestThemeCmd(t *testing.T) {
	withSystemTheme(t, false)
	configPath := testHome(t, testCatalog)
	prefs := theme.NewPreferenceFile(filepath.Join(filepath.Dir(configPath), "preferences.toml"))

	out, _, err := run(t, "theme", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, _, err = run(t, "theme", "dark", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "theme set to dark")
	stored, ok, err := prefs.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, theme.Dark, stored)

	out, _, err = run(t, "theme", "toggle", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "theme set to light")

	out, _, err = run(t, "theme", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeCmd_RejectsUnknown(t *testing.T) {
	configPath := testHome(t, testCatalog)
	_, _, err := run(t, "theme", "sepia", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(configPath), "preferences.toml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestThemeCmd_WarnsOnUnreadablePreference(t *testing.T) {
	withSystemTheme(t, true)
	configPath := testHome(t, testCatalog)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(configPath), "preferences.toml"), []byte("theme = [\n"), 0o644))

	out, stderr, err := run(t, "theme", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
	assert.Contains(t, stderr, "Warning:")
}
