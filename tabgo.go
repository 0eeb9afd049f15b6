// Package tabgo provides a high-performance embedded tabular store for Go.
//
// Tabgo serves a fixed analytic workload over int32 tables with
// production-ready features including:
//
//   - Multiple storage variants: RowMajor (baseline), Indexed (one ordered
//     index), Columnar (workload-specialized, fully index-served)
//   - Fluent builders: RowMajor(), Indexed(column), Columnar()
//   - Pluggable row sources: in-memory slices, seeded random data, CSV
//     files with transparent gzip
//   - Ordered secondary indexes with strict-bound range walks
//   - Roaring Bitmap row sets for index buckets and update tracking
//   - Structured logging (slog) and pluggable metrics collection
//   - A benchmark harness with cross-variant verification
//
// # The Workload
//
// Every variant answers the same four operations:
//
//	ColumnSum()                      SELECT SUM(col0)
//	PredicatedColumnSum(t1, t2)      SELECT SUM(col0)  WHERE col1 > t1 AND col2 < t2
//	PredicatedAllColumnsSum(t)       SELECT SUM(*)     WHERE col0 > t
//	PredicatedUpdate(t)              UPDATE col3 = col1 + col2 WHERE col0 < t
//
// All comparisons are strict. Sources must declare at least four columns.
//
// # Variant Selection
//
// Choose the right variant for your access pattern:
//   - RowMajor: reference semantics, predictable scans, eager updates
//   - Indexed: one ordered index on a column of your choice; accelerates
//     the operations whose predicate it covers, eager updates
//   - Columnar: every operation index-served, updates deferred into a
//     bitmap; fastest for the shipped query mix
//
// # Quick Start
//
// Create a columnar store and load it:
//
//	store, err := tabgo.Columnar().
//	    Logger(tabgo.NewTextLogger(slog.LevelInfo)).
//	    Open(rowsource.NewRandom(42, 300_000, 5, 1024))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	total := store.ColumnSum()
//	marked := store.PredicatedUpdate(512)
//
// # Deferred Updates
//
// The columnar variant records updates in a bitmap instead of rewriting
// stored cells: PredicatedAllColumnsSum sees the logical value, while
// GetIntField(row, 3) keeps returning the stored one. Use RowMajor or
// Indexed when readers need the physical column 3 to be current.
package tabgo

import (
	"time"

	"github.com/hupe1980/tabgo/rowsource"
	"github.com/hupe1980/tabgo/table"
)

// Variant names reported by Store.Variant and accepted by the workload
// harness configuration.
const (
	VariantRowMajor = "rowmajor"
	VariantIndexed  = "indexed"
	VariantColumnar = "columnar"
)

// Compile-time check to ensure Store satisfies the table contract.
var _ table.Table = (*Store)(nil)

// Store is the public handle to one loaded table. It decorates a storage
// variant with logging and metrics; the operation semantics are the
// variant's own.
type Store struct {
	table   table.Table
	variant string
	logger  *Logger
	metrics MetricsCollector
}

// newStore is the internal constructor used by the builders.
func newStore(t table.Table, variant string, optFns []Option) *Store {
	opts := applyOptions(optFns)

	logger := opts.logger
	if logger == nil {
		logger = NoopLogger()
	}

	metrics := opts.metricsCollector
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	return &Store{
		table:   t,
		variant: variant,
		logger:  logger,
		metrics: metrics,
	}
}

// Variant returns the name of the storage variant backing this store.
func (s *Store) Variant() string {
	return s.variant
}

// Load builds the store from src in one pass. It is all-or-nothing: on
// error the store keeps its previous state. Every returned error matches
// ErrLoad; the typed cause is available via errors.As.
func (s *Store) Load(src rowsource.Source) error {
	if src == nil {
		return translateLoadError(ErrNilSource)
	}

	start := time.Now()
	err := s.table.Load(src)
	took := time.Since(start)

	s.metrics.RecordLoad(s.table.NumRows(), took, err)
	s.logger.LogLoad(s.variant, s.table.NumRows(), s.table.NumCols(), took, err)

	if err == nil {
		if reporter, ok := s.table.(table.IndexReporter); ok {
			for _, stat := range reporter.IndexStats() {
				s.logger.LogIndex(s.variant, stat.Name, stat.DistinctKeys)
			}
		}
	}

	return translateLoadError(err)
}

// GetIntField returns the physical cell value at (rowID, colID). See the
// variant documentation for column 3 semantics after updates.
func (s *Store) GetIntField(rowID, colID int) int32 {
	return s.table.GetIntField(rowID, colID)
}

// PutIntField overwrites the physical cell value at (rowID, colID),
// bypassing every derived structure.
func (s *Store) PutIntField(rowID, colID int, v int32) {
	s.table.PutIntField(rowID, colID, v)
}

// ColumnSum returns the sum of column 0 over all rows.
func (s *Store) ColumnSum() int64 {
	start := time.Now()
	sum := s.table.ColumnSum()
	s.metrics.RecordColumnSum(time.Since(start))

	return sum
}

// PredicatedColumnSum returns the sum of column 0 over rows with col1 > t1
// and col2 < t2.
func (s *Store) PredicatedColumnSum(t1, t2 int32) int64 {
	start := time.Now()
	sum := s.table.PredicatedColumnSum(t1, t2)
	s.metrics.RecordPredicatedColumnSum(time.Since(start))

	return sum
}

// PredicatedAllColumnsSum returns the sum of every column over rows with
// col0 > t, seeing the logical column 3 of updated rows.
func (s *Store) PredicatedAllColumnsSum(t int32) int64 {
	start := time.Now()
	sum := s.table.PredicatedAllColumnsSum(t)
	s.metrics.RecordPredicatedAllColumnsSum(time.Since(start))

	return sum
}

// PredicatedUpdate sets column 3 to col1 + col2 on rows with col0 < t and
// returns the number of qualifying rows.
func (s *Store) PredicatedUpdate(t int32) int32 {
	start := time.Now()
	count := s.table.PredicatedUpdate(t)
	took := time.Since(start)

	s.metrics.RecordPredicatedUpdate(count, took)
	s.logger.LogUpdate(s.variant, t, count)

	return count
}

// NumRows returns the number of loaded rows.
func (s *Store) NumRows() int {
	return s.table.NumRows()
}

// NumCols returns the number of loaded columns.
func (s *Store) NumCols() int {
	return s.table.NumCols()
}
