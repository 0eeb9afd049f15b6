// Package rowset provides compact sets of row ids.
package rowset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set implements a set of row ids backed by a 32-bit Roaring Bitmap.
// It wraps the official roaring implementation.
// Used for index buckets and the updated-rows marker.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add adds a row id to the set.
func (s *Set) Add(row int) {
	s.rb.Add(uint32(row))
}

// Contains checks if a row id is in the set.
func (s *Set) Contains(row int) bool {
	return s.rb.Contains(uint32(row))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of row ids in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Union adds every row id of other to the set.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Equals returns true if both sets hold exactly the same row ids.
func (s *Set) Equals(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// Iterator returns an iterator over the row ids in ascending order.
func (s *Set) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
