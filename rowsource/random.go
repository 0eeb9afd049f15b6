package rowsource

import (
	"iter"
	"math/rand"
)

// Compile-time check to ensure Random satisfies the Source interface.
var _ Source = (*Random)(nil)

// Random yields uniformly distributed rows from a seeded generator. The same
// seed always produces the same stream, and every call to Records restarts
// it, so distinct tables loaded from one Random source see identical data.
type Random struct {
	seed     int64
	numRows  int
	numCols  int
	maxValue int32
}

// NewRandom creates a Random source of numRows by numCols cells with values
// in [0, maxValue).
func NewRandom(seed int64, numRows, numCols int, maxValue int32) *Random {
	if maxValue <= 0 {
		maxValue = 1
	}

	return &Random{
		seed:     seed,
		numRows:  numRows,
		numCols:  numCols,
		maxValue: maxValue,
	}
}

// NumRows returns the number of rows the stream will yield.
func (s *Random) NumRows() int { return s.numRows }

// NumCols returns the number of fields per record.
func (s *Random) NumCols() int { return s.numCols }

// Records yields the rows in order from a generator reset to the seed.
func (s *Random) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		rng := rand.New(rand.NewSource(s.seed))
		rec := make(Record, s.numCols*FieldWidth)

		for range s.numRows {
			for col := range s.numCols {
				rec.PutField(col, int32(rng.Intn(int(s.maxValue))))
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}
