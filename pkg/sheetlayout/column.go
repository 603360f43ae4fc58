package sheetlayout

import (
	"errors"
	"fmt"
)

// ErrInvalidColumnLabel indicates a column label that is empty or contains
// characters outside A-Z / a-z.
var ErrInvalidColumnLabel = errors.New("invalid column label")

// ColumnIndex converts a spreadsheet column label ("A", "Z", "AA", ...) to a
// 1-based column index. Labels are case-insensitive: "A"=1, "Z"=26, "AA"=27.
func ColumnIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrInvalidColumnLabel)
	}

	total := 0
	for _, r := range label {
		switch {
		case r >= 'A' && r <= 'Z':
			total = total*26 + int(r-'A') + 1
		case r >= 'a' && r <= 'z':
			total = total*26 + int(r-'a') + 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnLabel, label)
		}
	}

	return total, nil
}

// ColumnLabel converts a 1-based column index back to its spreadsheet label.
func ColumnLabel(index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: index %d out of range", ErrInvalidColumnLabel, index)
	}

	var label string
	for index > 0 {
		label = string(rune((index-1)%26+'A')) + label
		index = (index - 1) / 26
	}

	return label, nil
}
