// Package tabgo provides a high-performance embedded tabular store for Go.
//
// Tabgo is an embeddable analytic table built around a fixed query mix. All
// data lives in memory as fixed-width signed 32-bit cells; the storage
// variants trade load-time work for query-time speed.
//
// # Quick Start
//
// Build a store, load it, query it:
//
//	store, err := tabgo.Columnar().Open(rowsource.NewRandom(42, 300_000, 5, 1024))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	total := store.ColumnSum()                    // SELECT SUM(col0)
//	narrow := store.PredicatedColumnSum(10, 900)  // ... WHERE col1 > 10 AND col2 < 900
//	wide := store.PredicatedAllColumnsSum(512)    // SELECT SUM(*) WHERE col0 > 512
//	marked := store.PredicatedUpdate(512)         // UPDATE col3 = col1 + col2 WHERE col0 < 512
//
// # Data Sources
//
// Stores load from any rowsource.Source:
//
//	rowsource.NewSlice(rows)                      // in-memory rows
//	rowsource.NewRandom(seed, rows, cols, max)    // seeded generator
//	rowsource.NewCSV("data.csv.gz")               // CSV file, gzip transparent
//
// Loading is all-or-nothing: a failed load leaves the previous contents
// untouched. Every load error matches ErrLoad; the typed cause (SchemaError,
// SourceError, RowCountError) is available via errors.As.
//
// # Choosing a Variant
//
// RowMajor scans everything and writes updates in place; use it as the
// reference. Indexed adds one ordered index over a column you pick at build
// time; operations whose predicate the index covers walk the tree, the rest
// scan. Columnar answers every operation from load-time structures and
// defers updates into a bitmap, which makes the update itself and the sums
// that follow it cheap at the cost of stale physical column 3 reads.
//
// # Benchmarking and Verification
//
// The workload package replays the shipped query mix against any variant
// and cross-checks all variants against each other on identical data:
//
//	cfg := workload.DefaultConfig()
//	result, err := workload.Run(ctx, cfg)
//
// The tabgo-bench command wraps this with flags, a config file and an
// environment overlay.
package tabgo
