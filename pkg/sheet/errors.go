package sheet

import "errors"

var (
	// ErrDuplicateColumn is returned when two columns share an id.
	ErrDuplicateColumn = errors.New("duplicate column id")

	// ErrDuplicateRow is returned when two rows share an id.
	ErrDuplicateRow = errors.New("duplicate row id")

	// ErrRowTooWide is returned when a row has more cells than the sheet has columns.
	ErrRowTooWide = errors.New("row has more cells than columns")

	// ErrReadOnlyColumn is returned when writing a cell of a read-only column.
	ErrReadOnlyColumn = errors.New("column is read-only")

	// ErrInvalidDocument is returned when a YAML document cannot be decoded.
	ErrInvalidDocument = errors.New("invalid sheet document")
)
