package verify

// Rule is one validation constraint on a column's values.
type Rule struct {
	Pattern      string `json:"pattern" yaml:"pattern"`
	ErrorMessage string `json:"errorMessage" yaml:"errorMessage"`
}

// Column is the view of a column the engine needs: its stable id and rules.
type Column struct {
	ID       string
	ReadOnly bool
	Rules    []Rule
}

// Failure records a rule the cell currently fails together with the value
// that failed it.
type Failure struct {
	Pattern      string `json:"pattern"`
	Value        any    `json:"value"`
	ErrorMessage string `json:"errorMessage"`
}

// Key identifies a validation subject independently of its position.
type Key struct {
	RowID    string
	ColumnID string
}

func (k Key) String() string {
	return k.RowID + "_" + k.ColumnID
}

// Document is the sheet model the engine reads from. Index arguments are
// current positions; RowID and Column must resolve them through the
// document's live index-to-id mapping and fail with an error wrapping
// ErrIndexOutOfRange outside the current bounds.
type Document interface {
	Rows() int
	Columns() int
	RowID(row int) (string, error)
	Column(col int) (Column, error)
	// Value reports the cell's value; present is false for an absent record.
	Value(row, col int) (value any, present bool, err error)
}
