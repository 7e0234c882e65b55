package sheet

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

// Column describes one column of the sheet.
type Column struct {
	ID       string        `yaml:"id"`
	Title    string        `yaml:"title,omitempty"`
	ReadOnly bool          `yaml:"readonly,omitempty"`
	Rules    []verify.Rule `yaml:"rules,omitempty"`
}

// Cell holds a value. A nil *Cell is an absent record.
type Cell struct {
	V any
}

// Row is the input form of a row. An empty ID is generated.
type Row struct {
	ID    string
	Cells []*Cell
}

// Values builds a row of cells; nil values become absent cells.
func Values(vs ...any) []*Cell {
	cells := make([]*Cell, len(vs))
	for i, v := range vs {
		if v != nil {
			cells[i] = &Cell{V: v}
		}
	}
	return cells
}

// Sheet is an in-memory document. It is not safe for concurrent use.
type Sheet struct {
	columns []Column
	rowIDs  []string
	data    [][]*Cell
}

var _ verify.Document = (*Sheet)(nil)

// New creates a sheet. Rows shorter than the column list are padded with
// absent cells.
func New(columns []Column, rows []Row) (*Sheet, error) {
	s := &Sheet{}

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		col = cloneColumn(col)
		if col.ID == "" {
			col.ID = uuid.NewString()
		}
		if _, dup := seen[col.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.ID)
		}
		seen[col.ID] = struct{}{}
		s.columns = append(s.columns, col)
	}

	seen = make(map[string]struct{}, len(rows))
	for i, row := range rows {
		if len(row.Cells) > len(s.columns) {
			return nil, fmt.Errorf("row %d: %w", i, ErrRowTooWide)
		}
		id := row.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRow, id)
		}
		seen[id] = struct{}{}

		cells := make([]*Cell, len(s.columns))
		copy(cells, row.Cells)
		s.rowIDs = append(s.rowIDs, id)
		s.data = append(s.data, cells)
	}
	return s, nil
}

func (s *Sheet) Rows() int    { return len(s.rowIDs) }
func (s *Sheet) Columns() int { return len(s.columns) }

// RowID resolves a row position to its stable id.
func (s *Sheet) RowID(row int) (string, error) {
	if err := s.checkRow(row); err != nil {
		return "", err
	}
	return s.rowIDs[row], nil
}

// Column resolves a column position to the engine's view of the column.
func (s *Sheet) Column(col int) (verify.Column, error) {
	c, err := s.Header(col)
	if err != nil {
		return verify.Column{}, err
	}
	return verify.Column{ID: c.ID, ReadOnly: c.ReadOnly, Rules: c.Rules}, nil
}

// Header returns a copy of the column at position col.
func (s *Sheet) Header(col int) (Column, error) {
	if err := s.checkColumn(col); err != nil {
		return Column{}, err
	}
	return cloneColumn(s.columns[col]), nil
}

// Value returns the value of a cell; present is false for an absent record.
func (s *Sheet) Value(row, col int) (any, bool, error) {
	if err := s.checkCell(row, col); err != nil {
		return nil, false, err
	}
	c := s.data[row][col]
	if c == nil {
		return nil, false, nil
	}
	return c.V, true, nil
}

// RowIndex returns the current position of a row id.
func (s *Sheet) RowIndex(id string) (int, bool) {
	i := slices.Index(s.rowIDs, id)
	return i, i >= 0
}

// ColumnIndex returns the current position of a column id.
func (s *Sheet) ColumnIndex(id string) (int, bool) {
	i := slices.IndexFunc(s.columns, func(c Column) bool { return c.ID == id })
	return i, i >= 0
}

func (s *Sheet) checkRow(row int) error {
	if row < 0 || row >= len(s.rowIDs) {
		return fmt.Errorf("row %d of %d: %w", row, len(s.rowIDs), verify.ErrIndexOutOfRange)
	}
	return nil
}

func (s *Sheet) checkColumn(col int) error {
	if col < 0 || col >= len(s.columns) {
		return fmt.Errorf("column %d of %d: %w", col, len(s.columns), verify.ErrIndexOutOfRange)
	}
	return nil
}

func (s *Sheet) checkCell(row, col int) error {
	if err := s.checkRow(row); err != nil {
		return err
	}
	return s.checkColumn(col)
}

func cloneColumn(c Column) Column {
	c.Rules = slices.Clone(c.Rules)
	return c
}
