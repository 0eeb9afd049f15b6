package rowset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Run("AddContains", func(t *testing.T) {
		s := New()
		assert.True(t, s.IsEmpty())

		s.Add(3)
		s.Add(7)
		s.Add(3)

		assert.False(t, s.IsEmpty())
		assert.True(t, s.Contains(3))
		assert.True(t, s.Contains(7))
		assert.False(t, s.Contains(5))
		assert.Equal(t, uint64(2), s.Cardinality())
	})

	t.Run("Union", func(t *testing.T) {
		a := New()
		a.Add(1)
		a.Add(2)

		b := New()
		b.Add(2)
		b.Add(9)

		a.Union(b)

		assert.Equal(t, uint64(3), a.Cardinality())
		assert.True(t, a.Contains(9))
		// The argument is untouched.
		assert.Equal(t, uint64(2), b.Cardinality())
	})

	t.Run("Iterator", func(t *testing.T) {
		s := New()
		for _, row := range []int{9, 1, 4} {
			s.Add(row)
		}

		var got []int
		for row := range s.Iterator() {
			got = append(got, row)
		}

		// Ascending order regardless of insertion order.
		assert.Equal(t, []int{1, 4, 9}, got)
	})

	t.Run("IteratorEarlyStop", func(t *testing.T) {
		s := New()
		for row := range 10 {
			s.Add(row)
		}

		n := 0
		for range s.Iterator() {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})

	t.Run("CloneEquals", func(t *testing.T) {
		s := New()
		s.Add(5)
		s.Add(6)

		c := s.Clone()
		require.True(t, s.Equals(c))

		c.Add(7)
		assert.False(t, s.Equals(c))
		assert.False(t, s.Contains(7))
	})
}
