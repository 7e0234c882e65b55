package verify

import "github.com/dmitrymomot/sheetverify/pkg/logger"

// IsValid reports whether the cell at the given position passes every rule
// of its column.
func (e *Engine) IsValid(row, col int) bool {
	key, ok := e.resolve(row, col)
	if !ok {
		return true
	}
	return e.cache.IsPassing(key)
}

// FailuresOf returns the rules the cell at the given position fails, in the
// column's rule order. It returns nil for a passing cell.
func (e *Engine) FailuresOf(row, col int) []Failure {
	key, ok := e.resolve(row, col)
	if !ok {
		return nil
	}
	return e.cache.Get(key)
}

// Check evaluates a candidate value against a column's rules without
// touching the cache. It backs live feedback while a value is being typed.
func (e *Engine) Check(col int, value any) []Failure {
	column, err := e.doc.Column(col)
	if err != nil {
		e.contractViolation(-1, col, err)
		return nil
	}
	if value == nil {
		return nil
	}
	return e.validator.Failures(column.Rules, value)
}

func (e *Engine) resolve(row, col int) (Key, bool) {
	rowID, err := e.doc.RowID(row)
	if err != nil {
		e.contractViolation(row, col, err)
		return Key{}, false
	}
	column, err := e.doc.Column(col)
	if err != nil {
		e.contractViolation(row, col, err)
		return Key{}, false
	}
	return Key{RowID: rowID, ColumnID: column.ID}, true
}

// contractViolation handles positions that callers derived from stale bounds.
func (e *Engine) contractViolation(row, col int, err error) {
	if e.strict {
		panic(err)
	}
	e.logger.Error("verification query outside document bounds",
		logger.Position(row, col),
		logger.Error(err),
	)
}
