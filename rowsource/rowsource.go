// Package rowsource defines the record stream tables load from, plus the
// stock sources backing tests, benchmarks and the CLI harness.
//
// A Source declares its shape up front (NumRows, NumCols) and yields each
// row exactly once, in row order, as a wire-format Record.
package rowsource

import (
	"encoding/binary"
	"errors"
	"iter"
)

// FieldWidth is the number of bytes a single table cell occupies on the wire.
const FieldWidth = 4

// ErrShortRecord is returned when a record carries fewer fields than the
// source declared.
var ErrShortRecord = errors.New("short record")

// Record is a single row in wire form: consecutive fixed-width big-endian
// signed 32-bit fields.
type Record []byte

// Field decodes the field at column col.
func (r Record) Field(col int) int32 {
	off := col * FieldWidth
	return int32(binary.BigEndian.Uint32(r[off : off+FieldWidth]))
}

// PutField encodes v into the field at column col.
func (r Record) PutField(col int, v int32) {
	off := col * FieldWidth
	binary.BigEndian.PutUint32(r[off:off+FieldWidth], uint32(v))
}

// NumFields returns the number of whole fields the record holds.
func (r Record) NumFields() int {
	return len(r) / FieldWidth
}

// Source is a finite stream of rows with a fixed, known shape.
//
// Records yields every row exactly once, in row order. The yielded Record
// may be reused between iterations; callers that retain a record beyond the
// current iteration must copy it first.
type Source interface {
	// NumRows returns the number of rows the stream will yield.
	NumRows() int

	// NumCols returns the number of fields per record.
	NumCols() int

	// Records returns a restartable iterator over the rows.
	Records() iter.Seq2[Record, error]
}
