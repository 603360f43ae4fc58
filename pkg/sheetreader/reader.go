// Package sheetreader is the spreadsheet accessor side of sheetlayout: it
// reads and writes workbook cells addressed by field name, going through a
// Layout so callers never touch column indices directly.
package sheetreader

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/sheetlayout/pkg/sheetlayout"
)

// ErrUnknownField indicates a field name with no declaration in the sheet's
// layout.
var ErrUnknownField = errors.New("field not declared in sheet layout")

// Record is one data row keyed by field name. Cells beyond the row's width
// are present with an empty value, so lookups never miss.
type Record map[string]string

// Reader wraps an open workbook.
type Reader struct {
	file     *excelize.File
	ownsFile bool
}

// OpenFile opens the workbook at path. Close releases it.
func OpenFile(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Reader{file: f, ownsFile: true}, nil
}

// NewReader wraps an already-open workbook; the caller keeps ownership.
func NewReader(f *excelize.File) *Reader {
	return &Reader{file: f}
}

func (r *Reader) Close() error {
	if !r.ownsFile {
		return nil
	}
	return r.file.Close()
}

// Records reads every data row of the layout's sheet, skipping its header
// rows, and returns them keyed by field name.
func (r *Reader) Records(layout *sheetlayout.Layout) ([]Record, error) {
	indices, err := layout.DataMap()
	if err != nil {
		return nil, err
	}

	rows, err := r.file.GetRows(layout.SheetID())
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", layout.SheetID(), err)
	}

	skip := layout.HeaderRowCount()
	if skip > len(rows) {
		skip = len(rows)
	}

	records := make([]Record, 0, len(rows)-skip)
	for _, row := range rows[skip:] {
		rec := make(Record, len(indices))
		for field, idx := range indices {
			if idx-1 < len(row) {
				rec[field] = row[idx-1]
			} else {
				rec[field] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// Field reads a single cell by field name. dataRow is 1-based and counts from
// the first row after the header rows.
func (r *Reader) Field(layout *sheetlayout.Layout, dataRow int, field string) (string, error) {
	cell, err := r.cellName(layout, dataRow, field)
	if err != nil {
		return "", err
	}

	value, err := r.file.GetCellValue(layout.SheetID(), cell)
	if err != nil {
		return "", fmt.Errorf("failed to read %s!%s: %w", layout.SheetID(), cell, err)
	}
	return value, nil
}

// UpdateField writes a single cell by field name. dataRow is 1-based and
// counts from the first row after the header rows.
func (r *Reader) UpdateField(layout *sheetlayout.Layout, dataRow int, field string, value interface{}) error {
	cell, err := r.cellName(layout, dataRow, field)
	if err != nil {
		return err
	}

	if err := r.file.SetCellValue(layout.SheetID(), cell, value); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", layout.SheetID(), cell, err)
	}
	return nil
}

// SaveAs writes the workbook to path.
func (r *Reader) SaveAs(path string) error {
	return r.file.SaveAs(path)
}

func (r *Reader) cellName(layout *sheetlayout.Layout, dataRow int, field string) (string, error) {
	if dataRow < 1 {
		return "", fmt.Errorf("data row %d out of range", dataRow)
	}

	indices, err := layout.DataMap()
	if err != nil {
		return "", err
	}

	idx, ok := indices[field]
	if !ok {
		return "", fmt.Errorf("%w: %q in sheet %q", ErrUnknownField, field, layout.SheetID())
	}

	cell, err := excelize.CoordinatesToCellName(idx, layout.HeaderRowCount()+dataRow)
	if err != nil {
		return "", err
	}
	return cell, nil
}
