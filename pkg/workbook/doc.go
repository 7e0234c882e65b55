// Package workbook ties a sheet to its verification engine and enforces the
// cache lifecycle: a full rebuild on open and reload, a column rebuild on
// rule changes, a single-cell revalidation after every write, and pruning
// when rows or columns are deleted.
//
// All document mutations should go through the Workbook; writing to the
// underlying sheet directly leaves the cache stale until the next rebuild.
//
//	wb, err := workbook.Open(s)
//	if err != nil {
//	    return err
//	}
//	if err := wb.SetValue(0, 1, "abc"); err != nil {
//	    return err
//	}
//	if !wb.IsValid(0, 1) {
//	    for _, f := range wb.FailuresOf(0, 1) {
//	        fmt.Println(f.ErrorMessage)
//	    }
//	}
package workbook
