package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pricebook/internal/testutil"
	"github.com/conn-castle/pricebook/internal/theme"
)

const testCatalog = `[
    {"id": 1, "name": "Rice", "variants": [{"weight": "1kg", "salePrice": 50, "minPrice": 45, "available": true}]}
]`

// testHome lays out a config dir whose source dir holds database.html built
// from catalogJSON (none when empty) and returns the config file path.
func testHome(t *testing.T, catalogJSON string) string {
	t.Helper()
	root := t.TempDir()
	shop := filepath.Join(root, "shop")
	require.NoError(t, os.MkdirAll(shop, 0o755))
	if catalogJSON != "" {
		testutil.WriteDatabase(t, shop, catalogJSON)
	}
	return testutil.WriteConfig(t, filepath.Join(root, "config"),
		"[source]\ndir = '"+shop+"'\n\n[log]\nlevel = \"error\"\n")
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"pb"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func withSystemTheme(t *testing.T, dark bool) {
	t.Helper()
	orig := theme.SystemPrefersDark
	theme.SystemPrefersDark = func() bool { return dark }
	t.Cleanup(func() { theme.SystemPrefersDark = orig })
}
