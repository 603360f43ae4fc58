package sheetlayout

import (
	"errors"
	"reflect"
	"sort"
)

// ErrMutationRejected indicates an attempt to modify a configuration table
// after it was frozen.
var ErrMutationRejected = errors.New("configuration table is frozen")

// Table is a frozen configuration table: sheet identifier → sheet descriptor.
// It is built once at startup and never mutated afterwards, so any number of
// Layout instances may read it concurrently without coordination.
type Table struct {
	sheets map[string]SheetDescriptor
}

var emptyTable = &Table{sheets: map[string]SheetDescriptor{}}

// Freeze deep-copies sheets into a Table. The copy severs every reference the
// caller holds, so later writes through the original map cannot reach the
// table. Nested Meta values are copied with a visited-set guard, so aliased or
// even cyclic metadata graphs are handled rather than recursed into forever.
func Freeze(sheets map[string]SheetDescriptor) *Table {
	if len(sheets) == 0 {
		return emptyTable
	}

	visited := make(map[visitKey]reflect.Value)
	copied := deepCopyValue(reflect.ValueOf(sheets), visited)

	return &Table{sheets: copied.Interface().(map[string]SheetDescriptor)}
}

// HeaderRows returns the header row count for sheetID, or 0 when the sheet is
// not configured.
func (t *Table) HeaderRows(sheetID string) int {
	desc, ok := t.sheets[sheetID]
	if !ok {
		return 0
	}
	return desc.HeaderRows
}

// FieldDecls returns a copy of the field declarations for sheetID, or an
// empty map when the sheet is not configured.
func (t *Table) FieldDecls(sheetID string) map[string]FieldDecl {
	desc, ok := t.sheets[sheetID]
	if !ok || len(desc.VariableNames) == 0 {
		return map[string]FieldDecl{}
	}

	visited := make(map[visitKey]reflect.Value)
	copied := deepCopyValue(reflect.ValueOf(desc.VariableNames), visited)

	return copied.Interface().(map[string]FieldDecl)
}

// Sheets returns the configured sheet identifiers in sorted order.
func (t *Table) Sheets() []string {
	ids := make([]string, 0, len(t.sheets))
	for id := range t.sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TableBuilder assembles a configuration table and freezes it with Build.
// Once built, further SetSheet calls are rejected.
type TableBuilder struct {
	sheets map[string]SheetDescriptor
	built  bool
}

// NewTableBuilder creates an empty builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{sheets: make(map[string]SheetDescriptor)}
}

// SetSheet adds or replaces the descriptor for sheetID. After Build it
// returns ErrMutationRejected.
func (b *TableBuilder) SetSheet(sheetID string, desc SheetDescriptor) error {
	if b.built {
		return ErrMutationRejected
	}
	b.sheets[sheetID] = desc
	return nil
}

// Build freezes the accumulated sheets into an immutable Table.
func (b *TableBuilder) Build() *Table {
	b.built = true
	return Freeze(b.sheets)
}

// visitKey identifies a traversed map, slice or pointer by kind and data
// pointer. Slices need the length too: two slices over the same backing
// array but with different lengths are distinct values, not aliases.
type visitKey struct {
	kind reflect.Kind
	ptr  uintptr
	len  int
}

func keyFor(v reflect.Value) visitKey {
	key := visitKey{kind: v.Kind(), ptr: v.Pointer()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	return key
}

// deepCopyValue copies v structurally. Maps, slices and pointers are tracked
// in visited so shared sub-objects stay shared in the copy and reference
// cycles terminate.
func deepCopyValue(v reflect.Value, visited map[visitKey]reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		if cp, ok := visited[keyFor(v)]; ok {
			return cp
		}
		cp := reflect.MakeMapWithSize(v.Type(), v.Len())
		visited[keyFor(v)] = cp
		iter := v.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), deepCopyValue(iter.Value(), visited))
		}
		return cp

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		if cp, ok := visited[keyFor(v)]; ok {
			return cp
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		visited[keyFor(v)] = cp
		for i := 0; i < v.Len(); i++ {
			cp.Index(i).Set(deepCopyValue(v.Index(i), visited))
		}
		return cp

	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		if cp, ok := visited[keyFor(v)]; ok {
			return cp
		}
		cp := reflect.New(v.Type().Elem())
		visited[keyFor(v)] = cp
		cp.Elem().Set(deepCopyValue(v.Elem(), visited))
		return cp

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopyValue(v.Elem(), visited))
		return out

	case reflect.Struct:
		cp := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			if !cp.Field(i).CanSet() {
				continue
			}
			cp.Field(i).Set(deepCopyValue(v.Field(i), visited))
		}
		return cp

	default:
		// Scalars and strings are value types already.
		return v
	}
}
