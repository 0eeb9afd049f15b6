package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int32n returns a non-negative pseudo-random int32 in [0,n).
func (r *RNG) Int32n(n int32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int32(r.rand.Intn(int(n)))
}

// Rows generates num rows of cols cells each, uniform in [0, maxValue).
// Uses a single backing array for efficiency.
func (r *RNG) Rows(num, cols int, maxValue int32) [][]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]int32, num*cols)
	rows := make([][]int32, num)

	for i := range num {
		row := data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = int32(r.rand.Intn(int(maxValue)))
		}
		rows[i] = row
	}

	return rows
}

// CloneRows deep-copies rows so in-place reference updates do not leak
// into the caller's data.
func CloneRows(rows [][]int32) [][]int32 {
	out := make([][]int32, len(rows))
	for i, row := range rows {
		out[i] = make([]int32, len(row))
		copy(out[i], row)
	}
	return out
}

// ColumnSum computes the ground-truth sum of column 0.
func ColumnSum(rows [][]int32) int64 {
	var sum int64
	for _, row := range rows {
		sum += int64(row[0])
	}
	return sum
}

// PredicatedColumnSum computes the ground-truth sum of column 0 over rows
// where col1 > t1 and col2 < t2. Both comparisons are strict.
func PredicatedColumnSum(rows [][]int32, t1, t2 int32) int64 {
	var sum int64
	for _, row := range rows {
		if row[1] > t1 && row[2] < t2 {
			sum += int64(row[0])
		}
	}
	return sum
}

// PredicatedAllColumnsSum computes the ground-truth sum of every cell in
// rows where col0 > threshold. It reads the rows as given; run
// PredicatedUpdate first to model a table that has absorbed updates.
func PredicatedAllColumnsSum(rows [][]int32, threshold int32) int64 {
	var sum int64
	for _, row := range rows {
		if row[0] <= threshold {
			continue
		}
		for _, v := range row {
			sum += int64(v)
		}
	}
	return sum
}

// PredicatedUpdate applies the ground-truth update col3 = col1 + col2 to
// every row where col0 < threshold, in place, and returns the number of
// rows it touched.
func PredicatedUpdate(rows [][]int32, threshold int32) int32 {
	var updated int32
	for _, row := range rows {
		if row[0] < threshold {
			row[3] = row[1] + row[2]
			updated++
		}
	}
	return updated
}
