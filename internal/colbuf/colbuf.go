// Package colbuf provides the flat byte buffer backing a table.
package colbuf

import (
	"encoding/binary"

	"github.com/hupe1980/tabgo/rowsource"
)

// Layout selects how cells are ordered inside the buffer.
type Layout int

const (
	// RowMajor keeps each row contiguous: row 0 | row 1 | ... | row n-1.
	RowMajor Layout = iota

	// ColumnMajor keeps each column contiguous: col 0 | col 1 | ... | col m-1.
	ColumnMajor
)

// String returns a string representation of the Layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return "Unknown"
	}
}

// Buffer stores a fixed numRows by numCols grid of signed 32-bit cells in a
// single contiguous byte slice, giving cache-friendly sequential access.
// Cells are addressed by offset arithmetic only; the layout is fixed at
// construction.
//
// Bounds are not re-checked here: callers hand in ids validated against the
// table shape.
type Buffer struct {
	layout  Layout
	numRows int
	numCols int
	data    []byte
}

// New creates a zeroed buffer for the given shape.
func New(layout Layout, numRows, numCols int) *Buffer {
	return &Buffer{
		layout:  layout,
		numRows: numRows,
		numCols: numCols,
		data:    make([]byte, numRows*numCols*rowsource.FieldWidth),
	}
}

// offset computes the byte offset of cell (row, col) under the layout.
func (b *Buffer) offset(row, col int) int {
	if b.layout == ColumnMajor {
		return (col*b.numRows + row) * rowsource.FieldWidth
	}
	return (row*b.numCols + col) * rowsource.FieldWidth
}

// Get returns the cell at (row, col).
func (b *Buffer) Get(row, col int) int32 {
	off := b.offset(row, col)
	return int32(binary.BigEndian.Uint32(b.data[off : off+rowsource.FieldWidth]))
}

// Put overwrites the cell at (row, col).
func (b *Buffer) Put(row, col int, v int32) {
	off := b.offset(row, col)
	binary.BigEndian.PutUint32(b.data[off:off+rowsource.FieldWidth], uint32(v))
}

// PutRecord writes an entire wire-format record as row `row`. RowMajor
// buffers copy the record bytes as-is, since the cell order matches the
// record; ColumnMajor buffers scatter per cell.
func (b *Buffer) PutRecord(row int, rec rowsource.Record) {
	if b.layout == RowMajor {
		off := row * b.numCols * rowsource.FieldWidth
		copy(b.data[off:], rec[:b.numCols*rowsource.FieldWidth])
		return
	}

	for col := range b.numCols {
		b.Put(row, col, rec.Field(col))
	}
}

// Layout returns the cell ordering.
func (b *Buffer) Layout() Layout { return b.layout }

// NumRows returns the number of rows.
func (b *Buffer) NumRows() int { return b.numRows }

// NumCols returns the number of columns.
func (b *Buffer) NumCols() int { return b.numCols }

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int { return len(b.data) }
