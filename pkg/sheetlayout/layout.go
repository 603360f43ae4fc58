// Package sheetlayout provides a stable naming layer over spreadsheet
// columns: calling code references data by field name (e.g. "orderDate")
// instead of numeric position, so inserting or reordering columns in a
// workbook only requires a configuration change, never a code change.
package sheetlayout

import (
	"fmt"
)

// FieldDecl declares where a named field lives in a sheet.
// Type is descriptive metadata ("string", "number", "date", ...); this
// package never validates cell contents against it. Unknown keys on a
// declaration are kept in Meta as opaque metadata.
type FieldDecl struct {
	Col  string                 `yaml:"col" json:"col"`
	Type string                 `yaml:"type" json:"type"`
	Meta map[string]interface{} `yaml:",inline" json:"meta,omitempty"`
}

// fieldDeclYAML avoids recursing into UnmarshalYAML below.
type fieldDeclYAML FieldDecl

// UnmarshalYAML decodes a declaration and normalizes its inline metadata:
// yaml.v2 decodes nested mappings as map[interface{}]interface{}, which
// encoding/json cannot marshal, so Meta is rewritten to string-keyed maps all
// the way down.
func (d *FieldDecl) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw fieldDeclYAML
	if err := unmarshal(&raw); err != nil {
		return err
	}
	raw.Meta = normalizeMeta(raw.Meta)
	*d = FieldDecl(raw)
	return nil
}

func normalizeMeta(meta map[string]interface{}) map[string]interface{} {
	if meta == nil {
		return nil
	}
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		out[k] = normalizeMetaValue(v)
	}
	return out
}

func normalizeMetaValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, e := range val {
			out[fmt.Sprint(k)] = normalizeMetaValue(e)
		}
		return out
	case map[string]interface{}:
		return normalizeMeta(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = normalizeMetaValue(e)
		}
		return out
	default:
		return v
	}
}

// SheetDescriptor describes the layout of one sheet: how many leading rows
// are header rows, and which field names map to which column letters.
type SheetDescriptor struct {
	HeaderRows    int                  `yaml:"header_rows" json:"header_rows"`
	VariableNames map[string]FieldDecl `yaml:"variable_names" json:"variable_names"`
}

// Layout resolves field names to column indices for one sheet. It holds a
// sheet identifier and a reference to the shared frozen table; constructing
// one is cheap and all its operations are pure reads.
type Layout struct {
	sheetID string
	table   *Table
}

// NewLayout creates a resolver for sheetID over the given frozen table.
// A nil table behaves like an empty one.
func NewLayout(sheetID string, table *Table) *Layout {
	if table == nil {
		table = emptyTable
	}
	return &Layout{sheetID: sheetID, table: table}
}

// SheetID returns the sheet identifier this resolver was built for.
func (l *Layout) SheetID() string {
	return l.sheetID
}

// HeaderRowCount returns the configured number of header rows, or 0 when the
// sheet identifier is absent from the table. Never fails: a sheet that is not
// configured yet is a valid state, not an error.
func (l *Layout) HeaderRowCount() int {
	return l.table.HeaderRows(l.sheetID)
}

// DataConfig returns the field declarations for this sheet, or an empty map
// when the identifier is absent. The result is a copy; mutating it does not
// affect the shared table.
func (l *Layout) DataConfig() map[string]FieldDecl {
	return l.table.FieldDecls(l.sheetID)
}

// DataMap resolves every declared column letter and returns field name →
// 1-based column index. It is recomputed on each call; the table is small and
// static, so caching would buy nothing. A malformed column letter surfaces as
// a wrapped ErrInvalidColumnLabel.
func (l *Layout) DataMap() (map[string]int, error) {
	decls := l.table.FieldDecls(l.sheetID)

	indices := make(map[string]int, len(decls))
	for name, decl := range decls {
		idx, err := ColumnIndex(decl.Col)
		if err != nil {
			return nil, fmt.Errorf("sheet %q field %q: %w", l.sheetID, name, err)
		}
		indices[name] = idx
	}

	return indices, nil
}
