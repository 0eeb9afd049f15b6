package rowsource

import (
	"fmt"
	"iter"
)

// Compile-time check to ensure Slice satisfies the Source interface.
var _ Source = (*Slice)(nil)

// Slice adapts in-memory rows, mainly for tests and examples.
type Slice struct {
	rows    [][]int32
	numCols int
}

// NewSlice creates a Slice source over rows. The column count is taken from
// the first row.
func NewSlice(rows [][]int32) *Slice {
	numCols := 0
	if len(rows) > 0 {
		numCols = len(rows[0])
	}

	return &Slice{rows: rows, numCols: numCols}
}

// NumRows returns the number of rows.
func (s *Slice) NumRows() int { return len(s.rows) }

// NumCols returns the number of fields per record.
func (s *Slice) NumCols() int { return s.numCols }

// Records yields the rows in order. Rows shorter than the declared column
// count yield ErrShortRecord.
func (s *Slice) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		rec := make(Record, s.numCols*FieldWidth)
		for i, row := range s.rows {
			if len(row) < s.numCols {
				yield(nil, fmt.Errorf("row %d: %w", i, ErrShortRecord))
				return
			}

			for col := range s.numCols {
				rec.PutField(col, row[col])
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}
