package tabgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/tabgo/table"
)

var (
	// ErrNilSource is returned when Load is called with a nil row source.
	ErrNilSource = errors.New("row source must not be nil")

	// ErrInvalidIndexColumn is returned by the Indexed builder when the
	// index column is negative.
	ErrInvalidIndexColumn = errors.New("index column must not be negative")

	// ErrLoad marks every load failure. The concrete cause, one of the
	// typed errors below, can be recovered via errors.As.
	ErrLoad = errors.New("load failed")
)

// The typed load errors are defined next to the table contract and shared
// by every variant; they are aliased here so callers of the facade needn't
// import the table package to inspect them.
type (
	// SchemaError indicates a source shape the table cannot serve.
	SchemaError = table.SchemaError

	// SourceError indicates that the row stream failed mid-load.
	SourceError = table.SourceError

	// RowCountError indicates a source that yielded a different number of
	// rows than it declared.
	RowCountError = table.RowCountError

	// OutOfRangeError indicates cell ids outside the loaded shape. It is
	// panicked by the O(1) accessors, never returned.
	OutOfRangeError = table.OutOfRangeError
)

func translateLoadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrLoad, err)
}
