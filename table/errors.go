package table

import "fmt"

// SchemaError indicates a source shape the table cannot serve.
type SchemaError struct {
	NumCols int // Columns the source declared
	MinCols int // Columns the table requires
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation: %d columns, need at least %d", e.NumCols, e.MinCols)
}

// SourceError indicates that the row stream failed mid-load.
//
// The original underlying error can be accessed via errors.Unwrap.
type SourceError struct {
	Row int   // Row at which the stream failed
	Err error // Underlying stream error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("row source failed at row %d: %v", e.Row, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// RowCountError indicates a source that yielded a different number of rows
// than it declared.
type RowCountError struct {
	Declared int // Rows the source declared
	Yielded  int // Rows the stream actually produced
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("row source yielded %d rows, declared %d", e.Yielded, e.Declared)
}

// OutOfRangeError indicates cell ids outside the loaded shape. It is
// panicked, never returned: the O(1) accessors treat out-of-range ids as a
// programming error, like slice indexing.
type OutOfRangeError struct {
	Row     int
	Col     int
	NumRows int
	NumCols int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell (%d, %d) out of range for %dx%d table", e.Row, e.Col, e.NumRows, e.NumCols)
}
