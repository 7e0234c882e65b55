package workbook

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dmitrymomot/sheetverify/pkg/sheet"
	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

// Workbook owns one sheet and the verification engine bound to it.
type Workbook struct {
	sheet  *sheet.Sheet
	engine *verify.Engine
	opts   []verify.Option
}

// Open binds an engine to s and builds its cache.
func Open(s *sheet.Sheet, opts ...verify.Option) (*Workbook, error) {
	wb := &Workbook{opts: opts}
	if err := wb.Reload(s); err != nil {
		return nil, err
	}
	return wb, nil
}

// Reload replaces the document and rebuilds the cache from scratch.
func (wb *Workbook) Reload(s *sheet.Sheet) error {
	if s == nil {
		return ErrNilSheet
	}
	engine := verify.New(s, wb.opts...)
	if err := engine.Rebuild(); err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	wb.sheet, wb.engine = s, engine
	return nil
}

// Sheet returns the underlying document for reads.
func (wb *Workbook) Sheet() *sheet.Sheet {
	return wb.sheet
}

// Engine returns the verification engine.
func (wb *Workbook) Engine() *verify.Engine {
	return wb.engine
}

// SetValue writes a cell and revalidates it.
func (wb *Workbook) SetValue(row, col int, v any) error {
	if err := wb.sheet.SetValue(row, col, v); err != nil {
		return err
	}
	return wb.engine.Revalidate(row, col)
}

// ClearCell removes a cell record and revalidates it.
func (wb *Workbook) ClearCell(row, col int) error {
	if err := wb.sheet.ClearCell(row, col); err != nil {
		return err
	}
	return wb.engine.Revalidate(row, col)
}

// SetColumnRules replaces a column's rules and rebuilds that column.
func (wb *Workbook) SetColumnRules(col int, rules []verify.Rule) error {
	if err := wb.sheet.SetColumnRules(col, rules); err != nil {
		return err
	}
	return wb.engine.RebuildColumn(col)
}

// InsertRow inserts an empty row. Empty rows have nothing to validate.
func (wb *Workbook) InsertRow(at int) (string, error) {
	return wb.sheet.InsertRow(at)
}

// DeleteRow removes a row and forgets its entries.
func (wb *Workbook) DeleteRow(row int) error {
	id, err := wb.sheet.DeleteRow(row)
	if err != nil {
		return err
	}
	wb.engine.ForgetRow(id)
	return nil
}

// MoveRow reorders rows. Entries follow row ids, so the cache is untouched.
func (wb *Workbook) MoveRow(from, to int) error {
	return wb.sheet.MoveRow(from, to)
}

// InsertColumn inserts a column and builds its entries.
func (wb *Workbook) InsertColumn(at int, c sheet.Column) (string, error) {
	id, err := wb.sheet.InsertColumn(at, c)
	if err != nil {
		return "", err
	}
	if err := wb.engine.RebuildColumn(at); err != nil {
		return "", err
	}
	return id, nil
}

// DeleteColumn removes a column and forgets its entries.
func (wb *Workbook) DeleteColumn(col int) error {
	id, err := wb.sheet.DeleteColumn(col)
	if err != nil {
		return err
	}
	wb.engine.ForgetColumn(id)
	return nil
}

// MoveColumn reorders columns. Entries follow column ids, so the cache is untouched.
func (wb *Workbook) MoveColumn(from, to int) error {
	return wb.sheet.MoveColumn(from, to)
}

// IsValid reports whether the cell passes every rule of its column.
func (wb *Workbook) IsValid(row, col int) bool {
	return wb.engine.IsValid(row, col)
}

// FailuresOf returns the cell's failing rules in rule order.
func (wb *Workbook) FailuresOf(row, col int) []verify.Failure {
	return wb.engine.FailuresOf(row, col)
}

// Check validates a candidate value for a column without storing anything.
func (wb *Workbook) Check(col int, value any) []verify.Failure {
	return wb.engine.Check(col, value)
}

// CellReport describes one failing cell at its current position.
type CellReport struct {
	Row      int              `json:"row"`
	Col      int              `json:"col"`
	RowID    string           `json:"rowId"`
	ColumnID string           `json:"columnId"`
	Failures []verify.Failure `json:"failures"`
}

// Report lists every failing cell ordered by position.
func (wb *Workbook) Report() []CellReport {
	rows := make(map[string]int, wb.sheet.Rows())
	for i := range wb.sheet.Rows() {
		if id, err := wb.sheet.RowID(i); err == nil {
			rows[id] = i
		}
	}
	cols := make(map[string]int, wb.sheet.Columns())
	for i := range wb.sheet.Columns() {
		if c, err := wb.sheet.Column(i); err == nil {
			cols[c.ID] = i
		}
	}

	var report []CellReport
	wb.engine.Cache().Range(func(key verify.Key, failures []verify.Failure) bool {
		row, okRow := rows[key.RowID]
		col, okCol := cols[key.ColumnID]
		if okRow && okCol {
			report = append(report, CellReport{
				Row:      row,
				Col:      col,
				RowID:    key.RowID,
				ColumnID: key.ColumnID,
				Failures: failures,
			})
		}
		return true
	})

	slices.SortFunc(report, func(a, b CellReport) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	return report
}
