package verify

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sheetverify/pkg/logger"
)

// Engine keeps the verification cache of one Document in sync with its
// values and rules. Only Rebuild, RebuildColumn, Revalidate and the Forget
// methods mutate the cache.
type Engine struct {
	doc       Document
	cache     *Cache
	validator *Validator
	metrics   *Metrics
	logger    *slog.Logger
	strict    bool
}

// New creates an engine bound to doc. The cache starts empty; call Rebuild
// once the document is loaded.
func New(doc Document, opts ...Option) *Engine {
	if doc == nil {
		panic("verify: nil document")
	}

	e := &Engine{
		doc:    doc,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cache == nil {
		e.cache = NewCache()
	}
	if e.validator == nil {
		e.validator = NewValidator(
			WithValidatorLogger(e.logger),
			WithValidatorMetrics(e.metrics),
		)
	}
	return e
}

// Cache returns the cache owned by the engine. Callers must treat it as
// read-only.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Validator returns the validator used by the engine.
func (e *Engine) Validator() *Validator {
	return e.validator
}

// Rebuild discards the cache and validates every cell of the document.
func (e *Engine) Rebuild() error {
	e.cache.Clear()

	rows, cols := e.doc.Rows(), e.doc.Columns()
	for col := range cols {
		column, err := e.doc.Column(col)
		if err != nil {
			return fmt.Errorf("rebuild: %w", err)
		}
		if err := e.buildColumn(column, col, rows); err != nil {
			return fmt.Errorf("rebuild: %w", err)
		}
	}

	e.metrics.rebuilt("sheet", e.cache.Len())
	e.logger.Debug("verification cache rebuilt",
		logger.Count("rows", rows),
		logger.Count("columns", cols),
		logger.Count("failing", e.cache.Len()),
	)
	return nil
}

// RebuildColumn discards and recomputes the entries of one column. Use it
// after the column's rule set changed.
func (e *Engine) RebuildColumn(col int) error {
	column, err := e.doc.Column(col)
	if err != nil {
		return fmt.Errorf("rebuild column: %w", err)
	}

	e.cache.DeleteColumn(column.ID)
	if err := e.buildColumn(column, col, e.doc.Rows()); err != nil {
		return fmt.Errorf("rebuild column %q: %w", column.ID, err)
	}

	e.metrics.rebuilt("column", e.cache.Len())
	return nil
}

func (e *Engine) buildColumn(column Column, col, rows int) error {
	if len(column.Rules) == 0 {
		return nil
	}

	for row := range rows {
		value, present, err := e.doc.Value(row, col)
		if err != nil {
			return err
		}
		if !present || value == nil {
			continue
		}

		failures := e.validator.Failures(column.Rules, value)
		if len(failures) == 0 {
			continue
		}

		rowID, err := e.doc.RowID(row)
		if err != nil {
			return err
		}
		e.cache.Set(Key{RowID: rowID, ColumnID: column.ID}, failures)
	}
	return nil
}

// Revalidate recomputes the entry of one cell from its current value. Call
// it after every value write that is not followed by a rebuild.
func (e *Engine) Revalidate(row, col int) error {
	return e.revalidate(row, col, nil, false)
}

// RevalidateValue recomputes the entry of one cell as if it held value,
// without reading the document. Use it to validate a value about to be
// committed.
func (e *Engine) RevalidateValue(row, col int, value any) error {
	return e.revalidate(row, col, value, true)
}

func (e *Engine) revalidate(row, col int, value any, override bool) error {
	column, err := e.doc.Column(col)
	if err != nil {
		return fmt.Errorf("revalidate: %w", err)
	}
	if len(column.Rules) == 0 {
		return nil
	}

	rowID, err := e.doc.RowID(row)
	if err != nil {
		return fmt.Errorf("revalidate: %w", err)
	}

	present := true
	if !override {
		value, present, err = e.doc.Value(row, col)
		if err != nil {
			return fmt.Errorf("revalidate: %w", err)
		}
	}

	var failures []Failure
	if present && value != nil {
		failures = e.validator.Failures(column.Rules, value)
	}
	e.cache.Set(Key{RowID: rowID, ColumnID: column.ID}, failures)

	e.metrics.revalidated(e.cache.Len())
	return nil
}

// ForgetRow drops the entries of a row that was deleted from the document.
func (e *Engine) ForgetRow(rowID string) {
	e.cache.DeleteRow(rowID)
	e.metrics.pruned(e.cache.Len())
}

// ForgetColumn drops the entries of a column that was deleted from the document.
func (e *Engine) ForgetColumn(columnID string) {
	e.cache.DeleteColumn(columnID)
	e.metrics.pruned(e.cache.Len())
}
