package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `
environments:
  debug:
    orders: "orders (dev)"
  production:
    orders: "orders"
sheets:
  "orders (dev)":
    header_rows: 1
    variable_names:
      orderId:
        col: B
        type: string
      orderDate:
        col: C
        type: date
        format: yyyy-mm-dd
        style:
          font:
            bold: true
  "orders":
    header_rows: 2
    variable_names:
      orderId:
        col: A
        type: string
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLayoutFile(t *testing.T) {
	file, err := LoadLayoutFile(writeLayout(t, sampleLayout))
	require.NoError(t, err)

	table := file.Table()
	assert.Equal(t, 1, table.HeaderRows("orders (dev)"))
	assert.Equal(t, 2, table.HeaderRows("orders"))

	decls := table.FieldDecls("orders (dev)")
	assert.Equal(t, "B", decls["orderId"].Col)
	assert.Equal(t, "date", decls["orderDate"].Type)

	// Unknown declaration keys survive as opaque metadata.
	assert.Equal(t, "yyyy-mm-dd", decls["orderDate"].Meta["format"])

	// Nested metadata blocks must survive JSON encoding (CLI output path).
	data, err := json.Marshal(decls)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bold":true`)
}

func TestSheetIDEnvironmentAliases(t *testing.T) {
	file, err := LoadLayoutFile(writeLayout(t, sampleLayout))
	require.NoError(t, err)

	assert.Equal(t, "orders (dev)", file.SheetID(EnvDebug, "orders"))
	assert.Equal(t, "orders", file.SheetID(EnvProduction, "orders"))

	// Unaliased logical names resolve to themselves.
	assert.Equal(t, "inventory", file.SheetID(EnvDebug, "inventory"))
	assert.Equal(t, "orders", file.SheetID("staging", "orders"))
}

func TestLoadLayoutFileMissing(t *testing.T) {
	_, err := LoadLayoutFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadLayoutFileMalformed(t *testing.T) {
	_, err := LoadLayoutFile(writeLayout(t, "sheets: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LAYOUT_CONFIG_PATH", "/etc/sheetlayout/layout.yaml")

	require.NoError(t, LoadEnvConfig())
	assert.Equal(t, EnvProduction, DefaultEnvConfig.APP_ENV)
	assert.Equal(t, "/etc/sheetlayout/layout.yaml", DefaultEnvConfig.LAYOUT_CONFIG_PATH)
}

func TestLoadEnvConfigRejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	assert.Error(t, LoadEnvConfig())
}
