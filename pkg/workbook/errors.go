package workbook

import "errors"

// ErrNilSheet is returned when opening or reloading without a sheet.
var ErrNilSheet = errors.New("workbook: nil sheet")
