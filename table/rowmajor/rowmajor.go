// Package rowmajor provides the baseline table variant: rows laid out
// contiguously, every operation answered by a linear scan.
package rowmajor

import (
	"github.com/hupe1980/tabgo/internal/colbuf"
	"github.com/hupe1980/tabgo/rowsource"
	"github.com/hupe1980/tabgo/table"
)

// Compile-time check to ensure Table satisfies the table contract.
var _ table.Table = (*Table)(nil)

// Table stores data in row-major format:
//
//	row 0 | row 1 | ... | row n-1
//
// No derived structures are kept. The scans make it the reference the
// specialized variants are checked against.
type Table struct {
	buf     *colbuf.Buffer
	numRows int
	numCols int
}

// New creates an empty row-major table. Load must complete before any
// other method is called.
func New() *Table {
	return &Table{}
}

// Load reads every record into a fresh row-major buffer. On error the
// table keeps its previous state.
func (t *Table) Load(src rowsource.Source) error {
	if err := table.ValidateSchema(src, table.MinColumns); err != nil {
		return err
	}

	numRows := src.NumRows()
	numCols := src.NumCols()
	buf := colbuf.New(colbuf.RowMajor, numRows, numCols)

	row := 0
	for rec, err := range src.Records() {
		if err != nil {
			return &table.SourceError{Row: row, Err: err}
		}
		if row >= numRows {
			return &table.RowCountError{Declared: numRows, Yielded: row + 1}
		}
		if rec.NumFields() < numCols {
			return &table.SourceError{Row: row, Err: rowsource.ErrShortRecord}
		}

		buf.PutRecord(row, rec)
		row++
	}

	if row != numRows {
		return &table.RowCountError{Declared: numRows, Yielded: row}
	}

	t.buf = buf
	t.numRows = numRows
	t.numCols = numCols

	return nil
}

// GetIntField returns the physical cell value at (rowID, colID).
func (t *Table) GetIntField(rowID, colID int) int32 {
	table.MustContain(rowID, colID, t.numRows, t.numCols)
	return t.buf.Get(rowID, colID)
}

// PutIntField overwrites the physical cell value at (rowID, colID).
func (t *Table) PutIntField(rowID, colID int, v int32) {
	table.MustContain(rowID, colID, t.numRows, t.numCols)
	t.buf.Put(rowID, colID, v)
}

// ColumnSum returns the sum of column 0 over all rows.
func (t *Table) ColumnSum() int64 {
	var sum int64
	for row := range t.numRows {
		sum += int64(t.buf.Get(row, 0))
	}
	return sum
}

// PredicatedColumnSum returns the sum of column 0 over rows with col1 > t1
// and col2 < t2.
func (t *Table) PredicatedColumnSum(t1, t2 int32) int64 {
	var sum int64
	for row := range t.numRows {
		if t.buf.Get(row, 1) > t1 && t.buf.Get(row, 2) < t2 {
			sum += int64(t.buf.Get(row, 0))
		}
	}
	return sum
}

// PredicatedAllColumnsSum returns the sum of every column over rows with
// col0 > threshold. Updates were written physically, so the stored column
// 3 is always current.
func (t *Table) PredicatedAllColumnsSum(threshold int32) int64 {
	var sum int64
	for row := range t.numRows {
		if t.buf.Get(row, 0) <= threshold {
			continue
		}
		for col := range t.numCols {
			sum += int64(t.buf.Get(row, col))
		}
	}
	return sum
}

// PredicatedUpdate writes col1 + col2 into column 3 of rows with
// col0 < threshold and returns the number of qualifying rows. The write is
// physical: GetIntField(row, 3) observes it immediately.
func (t *Table) PredicatedUpdate(threshold int32) int32 {
	var updated int32
	for row := range t.numRows {
		if t.buf.Get(row, 0) >= threshold {
			continue
		}
		t.buf.Put(row, 3, t.buf.Get(row, 1)+t.buf.Get(row, 2))
		updated++
	}
	return updated
}

// NumRows returns the number of loaded rows.
func (t *Table) NumRows() int { return t.numRows }

// NumCols returns the number of loaded columns.
func (t *Table) NumCols() int { return t.numCols }
