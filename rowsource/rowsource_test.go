package rowsource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		rec := make(Record, 4*FieldWidth)

		rec.PutField(0, 42)
		rec.PutField(1, -7)
		rec.PutField(2, 0)
		rec.PutField(3, 1<<30)

		assert.Equal(t, int32(42), rec.Field(0))
		assert.Equal(t, int32(-7), rec.Field(1))
		assert.Equal(t, int32(0), rec.Field(2))
		assert.Equal(t, int32(1<<30), rec.Field(3))
		assert.Equal(t, 4, rec.NumFields())
	})

	t.Run("BigEndian", func(t *testing.T) {
		rec := make(Record, FieldWidth)
		rec.PutField(0, 1)

		// Most significant byte first.
		assert.Equal(t, Record{0x00, 0x00, 0x00, 0x01}, rec)
	})
}

func TestSlice(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		src := NewSlice([][]int32{{1, 2, 3, 4}, {5, 6, 7, 8}})
		assert.Equal(t, 2, src.NumRows())
		assert.Equal(t, 4, src.NumCols())
	})

	t.Run("Empty", func(t *testing.T) {
		src := NewSlice(nil)
		assert.Equal(t, 0, src.NumRows())
		assert.Equal(t, 0, src.NumCols())
	})

	t.Run("Records", func(t *testing.T) {
		rows := [][]int32{{5, 2, 1, 0}, {10, 4, 0, 0}, {1, 0, 9, 0}}
		src := NewSlice(rows)

		i := 0
		for rec, err := range src.Records() {
			require.NoError(t, err)
			for col := range 4 {
				assert.Equal(t, rows[i][col], rec.Field(col))
			}
			i++
		}
		assert.Equal(t, 3, i)
	})

	t.Run("Restartable", func(t *testing.T) {
		src := NewSlice([][]int32{{1, 2, 3, 4}})

		for range 2 {
			n := 0
			for rec, err := range src.Records() {
				require.NoError(t, err)
				assert.Equal(t, int32(1), rec.Field(0))
				n++
			}
			assert.Equal(t, 1, n)
		}
	})

	t.Run("ShortRow", func(t *testing.T) {
		src := NewSlice([][]int32{{1, 2, 3, 4}, {5, 6}})

		var got error
		for _, err := range src.Records() {
			if err != nil {
				got = err
				break
			}
		}

		require.Error(t, got)
		assert.True(t, errors.Is(got, ErrShortRecord))
	})
}

func TestRandom(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		src := NewRandom(1, 100, 5, 1024)
		assert.Equal(t, 100, src.NumRows())
		assert.Equal(t, 5, src.NumCols())
	})

	t.Run("Deterministic", func(t *testing.T) {
		src := NewRandom(7, 50, 4, 1024)

		first := make([]int32, 0, 200)
		for rec, err := range src.Records() {
			require.NoError(t, err)
			for col := range 4 {
				first = append(first, rec.Field(col))
			}
		}

		second := make([]int32, 0, 200)
		for rec, err := range src.Records() {
			require.NoError(t, err)
			for col := range 4 {
				second = append(second, rec.Field(col))
			}
		}

		assert.Equal(t, first, second)
	})

	t.Run("Range", func(t *testing.T) {
		src := NewRandom(3, 200, 4, 16)

		for rec, err := range src.Records() {
			require.NoError(t, err)
			for col := range 4 {
				v := rec.Field(col)
				assert.GreaterOrEqual(t, v, int32(0))
				assert.Less(t, v, int32(16))
			}
		}
	})

	t.Run("SeedsDiffer", func(t *testing.T) {
		a := NewRandom(1, 100, 4, 1024)
		b := NewRandom(2, 100, 4, 1024)

		var av, bv []int32
		for rec, err := range a.Records() {
			require.NoError(t, err)
			av = append(av, rec.Field(0))
		}
		for rec, err := range b.Records() {
			require.NoError(t, err)
			bv = append(bv, rec.Field(0))
		}

		assert.NotEqual(t, av, bv)
	})
}
