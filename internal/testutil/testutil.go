// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Document wraps a JSON catalog array in a minimal page the way the hosted
// database.html carries it.
func Document(catalogJSON string) string {
	return "<!DOCTYPE html>\n<html><body>\n" +
		`<div id="secure-data" style="display:none;">` + "\n" +
		catalogJSON + "\n" +
		"</div>\n</body></html>\n"
}

// WriteDatabase writes database.html containing catalogJSON into dir and
// returns its path.
// t is the active test; dir must exist.
func WriteDatabase(t *testing.T, dir string, catalogJSON string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, "database.html"), Document(catalogJSON))
}

// WriteConfig writes a config.toml with body into dir and returns its path.
// t is the active test; dir must exist.
func WriteConfig(t *testing.T, dir string, body string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, "config.toml"), body)
}

// WriteFile writes content to path, creating parent directories.
// t is the active test; the test fails on any error.
func WriteFile(t *testing.T, path string, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
