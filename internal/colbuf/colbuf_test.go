package colbuf

import (
	"testing"

	"github.com/hupe1980/tabgo/rowsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for _, layout := range []Layout{RowMajor, ColumnMajor} {
			t.Run(layout.String(), func(t *testing.T) {
				b := New(layout, 3, 4)

				for row := range 3 {
					for col := range 4 {
						b.Put(row, col, int32(row*10+col))
					}
				}

				for row := range 3 {
					for col := range 4 {
						assert.Equal(t, int32(row*10+col), b.Get(row, col))
					}
				}
			})
		}
	})

	t.Run("Negative", func(t *testing.T) {
		b := New(RowMajor, 1, 4)
		b.Put(0, 2, -123456)
		assert.Equal(t, int32(-123456), b.Get(0, 2))
	})

	t.Run("RowMajorOrder", func(t *testing.T) {
		b := New(RowMajor, 2, 2)
		b.Put(0, 0, 1)
		b.Put(0, 1, 2)
		b.Put(1, 0, 3)
		b.Put(1, 1, 4)

		// Cells of one row are adjacent.
		assert.Equal(t, 0, b.offset(0, 0))
		assert.Equal(t, rowsource.FieldWidth, b.offset(0, 1))
		assert.Equal(t, 2*rowsource.FieldWidth, b.offset(1, 0))
	})

	t.Run("ColumnMajorOrder", func(t *testing.T) {
		b := New(ColumnMajor, 2, 2)

		// Cells of one column are adjacent.
		assert.Equal(t, 0, b.offset(0, 0))
		assert.Equal(t, rowsource.FieldWidth, b.offset(1, 0))
		assert.Equal(t, 2*rowsource.FieldWidth, b.offset(0, 1))
	})

	t.Run("PutRecord", func(t *testing.T) {
		rec := make(rowsource.Record, 4*rowsource.FieldWidth)
		for col := range 4 {
			rec.PutField(col, int32(100+col))
		}

		for _, layout := range []Layout{RowMajor, ColumnMajor} {
			t.Run(layout.String(), func(t *testing.T) {
				b := New(layout, 2, 4)
				b.PutRecord(1, rec)

				for col := range 4 {
					assert.Equal(t, int32(100+col), b.Get(1, col))
				}
				// Row 0 stays zeroed.
				for col := range 4 {
					assert.Equal(t, int32(0), b.Get(0, col))
				}
			})
		}
	})

	t.Run("Shape", func(t *testing.T) {
		b := New(ColumnMajor, 5, 4)
		require.Equal(t, 5, b.NumRows())
		require.Equal(t, 4, b.NumCols())
		require.Equal(t, ColumnMajor, b.Layout())
		require.Equal(t, 5*4*rowsource.FieldWidth, b.Size())
	})
}
