package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Pattern records a rule pattern under the key "pattern".
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Position records a positional cell address as a "cell" group.
func Position(row, col int) slog.Attr {
	return slog.Group("cell", slog.Int("row", row), slog.Int("col", col))
}

// CellKey records a stable cell identity as a "cell_key" group.
func CellKey(rowID, columnID string) slog.Attr {
	return slog.Group("cell_key", slog.String("row_id", rowID), slog.String("column_id", columnID))
}

// Count records a counter value under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
