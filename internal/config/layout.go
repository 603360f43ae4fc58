package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/locvowork/sheetlayout/pkg/sheetlayout"
)

// LayoutFile is the on-disk shape of the layout configuration. Sheets are
// keyed by their concrete identifier (tab name); environments map logical
// names used in code to identifiers, so debug and production workbooks can
// use different tab names behind one stable logical name.
//
//	environments:
//	  debug:
//	    orders: "orders (dev)"
//	  production:
//	    orders: "orders"
//	sheets:
//	  "orders (dev)":
//	    header_rows: 1
//	    variable_names:
//	      orderId: {col: B, type: string}
type LayoutFile struct {
	Environments map[string]map[string]string            `yaml:"environments"`
	Sheets       map[string]sheetlayout.SheetDescriptor `yaml:"sheets"`
}

// LoadLayoutFile parses a layout configuration from path.
func LoadLayoutFile(path string) (*LayoutFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout config: %w", err)
	}

	var file LayoutFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse layout config %s: %w", path, err)
	}

	return &file, nil
}

// Table freezes the declared sheets into an immutable configuration table.
func (f *LayoutFile) Table() *sheetlayout.Table {
	return sheetlayout.Freeze(f.Sheets)
}

// SheetID resolves a logical sheet name to the concrete identifier for env.
// An unaliased name resolves to itself, so configurations that never diverge
// between environments need no environments block at all.
func (f *LayoutFile) SheetID(env, logical string) string {
	if aliases, ok := f.Environments[env]; ok {
		if id, ok := aliases[logical]; ok {
			return id
		}
	}
	return logical
}
