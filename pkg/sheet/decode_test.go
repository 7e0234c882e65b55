package sheet_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetverify/pkg/sheet"
	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

const inventory = `
columns:
  - id: name
    title: Name
  - id: qty
    title: Quantity
    rules:
      - pattern: '^\d+$'
        errorMessage: must be numeric
  - id: sku
    readonly: true
rows:
  - id: r1
    cells: [apple, "12", A-1]
  - id: r2
    cells: [pear, ~, A-2]
  - cells: [plum, 7.5]
`

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := sheet.Decode(strings.NewReader(inventory))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 3, s.Columns())

	col, err := s.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []verify.Rule{{Pattern: `^\d+$`, ErrorMessage: "must be numeric"}}, col.Rules)

	h, err := s.Header(2)
	require.NoError(t, err)
	assert.True(t, h.ReadOnly)

	assert.Equal(t, "12", value(t, s, 0, 1))
	assert.Equal(t, 7.5, value(t, s, 2, 1))

	_, present, err := s.Value(1, 1)
	require.NoError(t, err)
	assert.False(t, present)

	id, err := s.RowID(2)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "syntax", doc: "columns: [\n"},
		{name: "unknown field", doc: "columns:\n  - id: a\n    colour: red\n"},
		{name: "duplicate column", doc: "columns:\n  - id: a\n  - id: a\n"},
		{name: "wide row", doc: "columns:\n  - id: a\nrows:\n  - cells: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := sheet.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, sheet.ErrInvalidDocument)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()
	s, err := sheet.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rows())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(inventory), 0o600))

	s, err := sheet.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Rows())

	_, err = sheet.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
