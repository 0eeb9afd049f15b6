// Package treeindex provides the ordered secondary indexes a table builds
// at load time: a value index mapping column values to row-id sets, and a
// composite sum index carrying precomputed partial aggregates.
package treeindex

import (
	"github.com/tidwall/btree"

	"github.com/hupe1980/tabgo/internal/rowset"
)

// ValueIndex is an ordered mapping from a column value to the set of row
// ids holding that value. Buckets are populated inline during the single
// load pass and never mutated afterwards.
type ValueIndex struct {
	m btree.Map[int32, *rowset.Set]
}

// NewValueIndex creates an empty value index.
func NewValueIndex() *ValueIndex {
	return &ValueIndex{}
}

// Insert adds row to the bucket for v, creating the bucket on first sight.
func (ix *ValueIndex) Insert(v int32, row int) {
	rows, ok := ix.m.Get(v)
	if !ok {
		rows = rowset.New()
		ix.m.Set(v, rows)
	}

	rows.Add(row)
}

// Len returns the number of distinct values.
func (ix *ValueIndex) Len() int {
	return ix.m.Len()
}

// Scan visits every (value, rows) pair in ascending value order.
func (ix *ValueIndex) Scan(fn func(v int32, rows *rowset.Set) bool) {
	ix.m.Scan(fn)
}

// AscendLess visits pairs in ascending order while v < max. Keys ascend, so
// iteration stops at the first key >= max.
func (ix *ValueIndex) AscendLess(max int32, fn func(v int32, rows *rowset.Set) bool) {
	ix.m.Scan(func(v int32, rows *rowset.Set) bool {
		if v >= max {
			return false
		}
		return fn(v, rows)
	})
}

// AscendGreater visits pairs in ascending order starting at the smallest
// v > min.
func (ix *ValueIndex) AscendGreater(min int32, fn func(v int32, rows *rowset.Set) bool) {
	ix.m.Ascend(min, func(v int32, rows *rowset.Set) bool {
		if v == min {
			// The pivot itself is inclusive; the bound is strict.
			return true
		}
		return fn(v, rows)
	})
}

// DescendGreater visits pairs in descending order while v > min.
func (ix *ValueIndex) DescendGreater(min int32, fn func(v int32, rows *rowset.Set) bool) {
	ix.m.Reverse(func(v int32, rows *rowset.Set) bool {
		if v <= min {
			return false
		}
		return fn(v, rows)
	})
}

// SumIndex is the composite two-level index: an ordered mapping from an
// outer column value to an inner ordered mapping whose entries carry the
// precomputed sum of column 0 over all rows with that (outer, inner) pair.
// It trades load-time memory for constant per-bucket work at query time.
type SumIndex struct {
	outer btree.Map[int32, *btree.Map[int32, int64]]
}

// NewSumIndex creates an empty sum index.
func NewSumIndex() *SumIndex {
	return &SumIndex{}
}

// Add accumulates col0 into the bucket for (outer, inner).
func (ix *SumIndex) Add(outer, inner, col0 int32) {
	m, ok := ix.outer.Get(outer)
	if !ok {
		m = new(btree.Map[int32, int64])
		ix.outer.Set(outer, m)
	}

	sum, _ := m.Get(inner)
	m.Set(inner, sum+int64(col0))
}

// RangeSum accumulates the precomputed sums over all buckets with
// inner > innerMin and outer < outerMax. Both dimensions exit early: the
// outer walk ascends and stops at the first key >= outerMax, each inner
// walk descends and stops at the first key <= innerMin.
func (ix *SumIndex) RangeSum(innerMin, outerMax int32) int64 {
	var total int64

	ix.outer.Scan(func(outer int32, inner *btree.Map[int32, int64]) bool {
		if outer >= outerMax {
			return false
		}

		inner.Reverse(func(v int32, sum int64) bool {
			if v <= innerMin {
				return false
			}
			total += sum
			return true
		})

		return true
	})

	return total
}

// Len returns the number of distinct outer values.
func (ix *SumIndex) Len() int {
	return ix.outer.Len()
}
