package verify

import "slices"

// Cache maps cell identities to the rules they currently fail. A missing key
// and an empty entry both mean the cell passes; Set never stores empty
// entries.
//
// Entries are grouped by column so a column rebuild or a column deletion
// does not scan unrelated cells.
type Cache struct {
	columns map[string]map[string][]Failure
	size    int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{columns: make(map[string]map[string][]Failure)}
}

// Get returns a copy of the entry stored for key, or nil when the cell passes.
func (c *Cache) Get(key Key) []Failure {
	return slices.Clone(c.columns[key.ColumnID][key.RowID])
}

// Set replaces the entry for key. An empty entry removes the key.
func (c *Cache) Set(key Key, entry []Failure) {
	rows := c.columns[key.ColumnID]
	_, existed := rows[key.RowID]

	if len(entry) == 0 {
		if existed {
			delete(rows, key.RowID)
			c.size--
			if len(rows) == 0 {
				delete(c.columns, key.ColumnID)
			}
		}
		return
	}

	if rows == nil {
		rows = make(map[string][]Failure)
		c.columns[key.ColumnID] = rows
	}
	rows[key.RowID] = slices.Clone(entry)
	if !existed {
		c.size++
	}
}

// IsPassing reports whether the cell has no recorded failures.
func (c *Cache) IsPassing(key Key) bool {
	return len(c.columns[key.ColumnID][key.RowID]) == 0
}

// Clear empties the cache.
func (c *Cache) Clear() {
	clear(c.columns)
	c.size = 0
}

// DeleteColumn drops every entry of a column.
func (c *Cache) DeleteColumn(columnID string) {
	c.size -= len(c.columns[columnID])
	delete(c.columns, columnID)
}

// DeleteRow drops every entry of a row.
func (c *Cache) DeleteRow(rowID string) {
	for columnID, rows := range c.columns {
		if _, ok := rows[rowID]; !ok {
			continue
		}
		delete(rows, rowID)
		c.size--
		if len(rows) == 0 {
			delete(c.columns, columnID)
		}
	}
}

// Len returns the number of failing cells.
func (c *Cache) Len() int {
	return c.size
}

// Range calls fn for every failing cell until fn returns false. Iteration
// order is unspecified. fn must not modify the cache.
func (c *Cache) Range(fn func(key Key, failures []Failure) bool) {
	for columnID, rows := range c.columns {
		for rowID, failures := range rows {
			if !fn(Key{RowID: rowID, ColumnID: columnID}, slices.Clone(failures)) {
				return
			}
		}
	}
}
