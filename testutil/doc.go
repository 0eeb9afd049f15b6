// Package testutil provides testing utilities for tabgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded row generation and brute-force reference
// implementations of the table operations, used as ground truth when
// checking the storage variants against each other.
//
// # Random Row Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Rows(1000, 4, 1024) // uniform cells in [0, 1024)
//
// # Ground Truth
//
//	want := testutil.PredicatedColumnSum(rows, t1, t2)
package testutil
