package sheetlayout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnIndexSingleLetters(t *testing.T) {
	for i := 0; i < 26; i++ {
		label := string(rune('A' + i))
		idx, err := ColumnIndex(label)
		require.NoError(t, err)
		assert.Equal(t, i+1, idx, "label %s", label)
	}
}

func TestColumnIndexMultiLetter(t *testing.T) {
	cases := map[string]int{
		"AA": 27,
		"AZ": 52,
		"BA": 53,
		"ZZ": 702,
		"B":  2,
	}
	for label, want := range cases {
		idx, err := ColumnIndex(label)
		require.NoError(t, err)
		assert.Equal(t, want, idx, "label %s", label)
	}
}

func TestColumnIndexCaseInsensitive(t *testing.T) {
	upper, err := ColumnIndex("AZ")
	require.NoError(t, err)

	lower, err := ColumnIndex("az")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)

	mixed, err := ColumnIndex("Az")
	require.NoError(t, err)
	assert.Equal(t, upper, mixed)
}

func TestColumnIndexInvalidLabels(t *testing.T) {
	for _, label := range []string{"", "1A", "A1", "A-B", " A"} {
		_, err := ColumnIndex(label)
		assert.True(t, errors.Is(err, ErrInvalidColumnLabel), "label %q: %v", label, err)
	}
}

func TestColumnLabelRoundTrip(t *testing.T) {
	for _, idx := range []int{1, 26, 27, 52, 53, 702, 703} {
		label, err := ColumnLabel(idx)
		require.NoError(t, err)

		back, err := ColumnIndex(label)
		require.NoError(t, err)
		assert.Equal(t, idx, back, "label %s", label)
	}

	_, err := ColumnLabel(0)
	assert.True(t, errors.Is(err, ErrInvalidColumnLabel))
}
