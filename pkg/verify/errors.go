package verify

import "errors"

var (
	// ErrIndexOutOfRange is returned by a Document when a row or column index
	// is outside its current bounds. Document implementations wrap it.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMalformedPattern wraps pattern compile errors returned by Validator.Compile.
	ErrMalformedPattern = errors.New("malformed rule pattern")
)
