// Package sheet is an in-memory spreadsheet document: an ordered list of
// columns carrying validation rules and an ordered list of rows of cells.
//
// Rows and columns have stable ids that survive insertion, deletion and
// reordering, and *Sheet implements verify.Document so a verification
// engine can key its cache by identity instead of position. Ids missing
// from the input are generated as UUIDs.
//
// Sheets can be decoded from YAML:
//
//	columns:
//	  - id: qty
//	    title: Quantity
//	    rules:
//	      - pattern: '^\d+$'
//	        errorMessage: must be numeric
//	rows:
//	  - id: r1
//	    cells: ["12"]
//	  - cells: [~]      # absent cell
package sheet
