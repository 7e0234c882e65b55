package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sheetverify/pkg/verify"
)

func failure(msg string) verify.Failure {
	return verify.Failure{Pattern: "p", Value: "v", ErrorMessage: msg}
}

func TestCache_GetSet(t *testing.T) {
	t.Parallel()

	c := verify.NewCache()
	key := verify.Key{RowID: "r1", ColumnID: "c1"}

	assert.Empty(t, c.Get(key))
	assert.True(t, c.IsPassing(key))

	c.Set(key, []verify.Failure{failure("a"), failure("b")})
	got := c.Get(key)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ErrorMessage)
	assert.Equal(t, "b", got[1].ErrorMessage)
	assert.False(t, c.IsPassing(key))
	assert.Equal(t, 1, c.Len())

	c.Set(key, []verify.Failure{failure("c")})
	assert.Equal(t, []verify.Failure{failure("c")}, c.Get(key))
	assert.Equal(t, 1, c.Len())
}

func TestCache_PassingEntriesAreEquivalent(t *testing.T) {
	t.Parallel()

	c := verify.NewCache()
	emptied := verify.Key{RowID: "r1", ColumnID: "c1"}
	never := verify.Key{RowID: "r2", ColumnID: "c1"}

	c.Set(emptied, []verify.Failure{failure("a")})
	c.Set(emptied, []verify.Failure{})

	assert.Equal(t, c.IsPassing(never), c.IsPassing(emptied))
	assert.Equal(t, c.Get(never), c.Get(emptied))
	assert.Len(t, c.Get(emptied), 0)
	assert.Equal(t, 0, c.Len())

	c.Set(never, nil)
	assert.True(t, c.IsPassing(never))
	assert.Equal(t, 0, c.Len())
}

func TestCache_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	c := verify.NewCache()
	key := verify.Key{RowID: "r", ColumnID: "c"}
	entry := []verify.Failure{failure("a")}
	c.Set(key, entry)

	entry[0].ErrorMessage = "mutated input"
	got := c.Get(key)
	got[0].ErrorMessage = "mutated output"

	assert.Equal(t, "a", c.Get(key)[0].ErrorMessage)
}

func TestCache_DeleteRowAndColumn(t *testing.T) {
	t.Parallel()

	c := verify.NewCache()
	for _, row := range []string{"r1", "r2"} {
		for _, col := range []string{"c1", "c2"} {
			c.Set(verify.Key{RowID: row, ColumnID: col}, []verify.Failure{failure(row + col)})
		}
	}
	require.Equal(t, 4, c.Len())

	c.DeleteRow("r1")
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.IsPassing(verify.Key{RowID: "r1", ColumnID: "c1"}))
	assert.False(t, c.IsPassing(verify.Key{RowID: "r2", ColumnID: "c1"}))

	c.DeleteColumn("c2")
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.IsPassing(verify.Key{RowID: "r2", ColumnID: "c2"}))

	c.DeleteRow("missing")
	c.DeleteColumn("missing")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsPassing(verify.Key{RowID: "r2", ColumnID: "c1"}))
}

func TestCache_Range(t *testing.T) {
	t.Parallel()

	c := verify.NewCache()
	c.Set(verify.Key{RowID: "r1", ColumnID: "c1"}, []verify.Failure{failure("a")})
	c.Set(verify.Key{RowID: "r2", ColumnID: "c1"}, []verify.Failure{failure("b")})
	c.Set(verify.Key{RowID: "r1", ColumnID: "c2"}, []verify.Failure{failure("c")})

	seen := map[string]string{}
	c.Range(func(key verify.Key, failures []verify.Failure) bool {
		seen[key.String()] = failures[0].ErrorMessage
		return true
	})
	assert.Equal(t, map[string]string{"r1_c1": "a", "r2_c1": "b", "r1_c2": "c"}, seen)

	calls := 0
	c.Range(func(verify.Key, []verify.Failure) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestKey_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "row_col", verify.Key{RowID: "row", ColumnID: "col"}.String())
}
