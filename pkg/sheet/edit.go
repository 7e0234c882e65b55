package sheet

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

// SetValue writes a value into a cell, creating the record if it was absent.
func (s *Sheet) SetValue(row, col int, v any) error {
	if err := s.checkWritable(row, col); err != nil {
		return err
	}
	s.data[row][col] = &Cell{V: v}
	return nil
}

// ClearCell removes the cell record.
func (s *Sheet) ClearCell(row, col int) error {
	if err := s.checkWritable(row, col); err != nil {
		return err
	}
	s.data[row][col] = nil
	return nil
}

// SetColumnRules replaces the rule set of a column.
func (s *Sheet) SetColumnRules(col int, rules []verify.Rule) error {
	if err := s.checkColumn(col); err != nil {
		return err
	}
	s.columns[col].Rules = slices.Clone(rules)
	return nil
}

// InsertRow inserts an empty row at position at (0..Rows()) and returns its id.
func (s *Sheet) InsertRow(at int) (string, error) {
	if at < 0 || at > len(s.rowIDs) {
		return "", fmt.Errorf("insert row at %d of %d: %w", at, len(s.rowIDs), verify.ErrIndexOutOfRange)
	}
	id := uuid.NewString()
	s.rowIDs = slices.Insert(s.rowIDs, at, id)
	s.data = slices.Insert(s.data, at, make([]*Cell, len(s.columns)))
	return id, nil
}

// DeleteRow removes the row at position row and returns its id.
func (s *Sheet) DeleteRow(row int) (string, error) {
	if err := s.checkRow(row); err != nil {
		return "", err
	}
	id := s.rowIDs[row]
	s.rowIDs = slices.Delete(s.rowIDs, row, row+1)
	s.data = slices.Delete(s.data, row, row+1)
	return id, nil
}

// MoveRow moves the row at from so that it ends up at position to.
func (s *Sheet) MoveRow(from, to int) error {
	if err := s.checkRow(from); err != nil {
		return err
	}
	if err := s.checkRow(to); err != nil {
		return err
	}
	move(s.rowIDs, from, to)
	move(s.data, from, to)
	return nil
}

// InsertColumn inserts a column at position at (0..Columns()) with absent
// cells in every row and returns its id.
func (s *Sheet) InsertColumn(at int, c Column) (string, error) {
	if at < 0 || at > len(s.columns) {
		return "", fmt.Errorf("insert column at %d of %d: %w", at, len(s.columns), verify.ErrIndexOutOfRange)
	}
	c = cloneColumn(c)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := s.ColumnIndex(c.ID); exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateColumn, c.ID)
	}

	s.columns = slices.Insert(s.columns, at, c)
	for i := range s.data {
		s.data[i] = slices.Insert(s.data[i], at, nil)
	}
	return c.ID, nil
}

// DeleteColumn removes the column at position col and returns its id.
func (s *Sheet) DeleteColumn(col int) (string, error) {
	if err := s.checkColumn(col); err != nil {
		return "", err
	}
	id := s.columns[col].ID
	s.columns = slices.Delete(s.columns, col, col+1)
	for i := range s.data {
		s.data[i] = slices.Delete(s.data[i], col, col+1)
	}
	return id, nil
}

// MoveColumn moves the column at from so that it ends up at position to.
func (s *Sheet) MoveColumn(from, to int) error {
	if err := s.checkColumn(from); err != nil {
		return err
	}
	if err := s.checkColumn(to); err != nil {
		return err
	}
	move(s.columns, from, to)
	for _, cells := range s.data {
		move(cells, from, to)
	}
	return nil
}

func (s *Sheet) checkWritable(row, col int) error {
	if err := s.checkCell(row, col); err != nil {
		return err
	}
	if s.columns[col].ReadOnly {
		return fmt.Errorf("column %q: %w", s.columns[col].ID, ErrReadOnlyColumn)
	}
	return nil
}

// move shifts s[from] to index to in place.
func move[T any](s []T, from, to int) {
	item := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = item
}
