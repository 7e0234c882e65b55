package verify_test

import (
	"fmt"

	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

type cell struct {
	value   any
	present bool
}

func v(value any) cell { return cell{value: value, present: true} }

var absent = cell{}

// memDoc is a minimal verify.Document whose rows can be reordered.
type memDoc struct {
	rowIDs  []string
	columns []verify.Column
	cells   [][]cell
}

func newMemDoc(columns []verify.Column, rows ...[]cell) *memDoc {
	d := &memDoc{columns: columns}
	for i, r := range rows {
		d.rowIDs = append(d.rowIDs, fmt.Sprintf("row-%d", i))
		d.cells = append(d.cells, r)
	}
	return d
}

func (d *memDoc) Rows() int    { return len(d.rowIDs) }
func (d *memDoc) Columns() int { return len(d.columns) }

func (d *memDoc) RowID(row int) (string, error) {
	if row < 0 || row >= len(d.rowIDs) {
		return "", fmt.Errorf("row %d: %w", row, verify.ErrIndexOutOfRange)
	}
	return d.rowIDs[row], nil
}

func (d *memDoc) Column(col int) (verify.Column, error) {
	if col < 0 || col >= len(d.columns) {
		return verify.Column{}, fmt.Errorf("column %d: %w", col, verify.ErrIndexOutOfRange)
	}
	return d.columns[col], nil
}

func (d *memDoc) Value(row, col int) (any, bool, error) {
	if row < 0 || row >= len(d.cells) || col < 0 || col >= len(d.columns) {
		return nil, false, fmt.Errorf("cell %d:%d: %w", row, col, verify.ErrIndexOutOfRange)
	}
	if col >= len(d.cells[row]) {
		return nil, false, nil
	}
	c := d.cells[row][col]
	return c.value, c.present, nil
}

func (d *memDoc) swapRows(a, b int) {
	d.rowIDs[a], d.rowIDs[b] = d.rowIDs[b], d.rowIDs[a]
	d.cells[a], d.cells[b] = d.cells[b], d.cells[a]
}

var (
	numeric  = verify.Rule{Pattern: `^\d+$`, ErrorMessage: "must be numeric"}
	short    = verify.Rule{Pattern: `^.{0,3}$`, ErrorMessage: "at most 3 characters"}
	noSpaces = verify.Rule{Pattern: `^\S*$`, ErrorMessage: "no spaces"}
	broken   = verify.Rule{Pattern: `(`, ErrorMessage: "broken rule"}
)
