// Package verify maintains the cell data-verification cache of a sheet.
//
// Every column carries zero or more Rules (a regular-expression pattern and
// an error message). The Engine validates cell values against their column's
// rules and stores only the failures, keyed by the stable (row id, column id)
// identity of the cell rather than its current position. Rows and columns
// can therefore be inserted, deleted or reordered without invalidating the
// cache.
//
// # Lifecycle
//
// The cache is owned by one Engine, which is bound to one Document:
//
//   - Rebuild discards and recomputes everything. Run it when a document is
//     loaded.
//   - RebuildColumn recomputes a single column. Run it when the column's
//     rule set changes.
//   - Revalidate recomputes a single cell. Run it right after every value
//     write, before control returns to rendering or input handling.
//   - ForgetRow and ForgetColumn drop the entries of deleted identities.
//
// IsValid and FailuresOf are O(1) reads and are safe to call once per
// visible cell per paint.
//
// # Patterns
//
// Patterns use ECMAScript syntax and are tested unanchored against the
// browser-style string form of the value (see Stringify). A pattern that
// fails to compile makes every value fail the rule; the problem is logged
// once per pattern.
//
// # Concurrency
//
// Engine, Cache and Validator are designed for a single-threaded edit loop
// and take no locks of their own.
package verify
