// Package table defines the capability contract shared by the storage
// variants and the helpers they have in common.
//
// A table is loaded exactly once from a rowsource.Source and then serves a
// fixed query workload: an unconditional sum over column 0, a two-sided
// predicated sum, an update-aware all-columns sum and a predicated update
// writing col1+col2 into column 3.
package table

import (
	"github.com/hupe1980/tabgo/rowsource"
)

// MinColumns is the smallest column count a source may declare. The fixed
// workload reads columns 0 through 3.
const MinColumns = 4

// Table is the capability contract every storage variant satisfies.
//
// Load must complete before any other method is called, and no method may
// run concurrently with another on the same instance. The O(1) accessors
// panic with *OutOfRangeError on ids outside the loaded shape; all other
// operations cannot fail after a successful load.
type Table interface {
	// Load builds the physical store and every derived structure in one
	// pass over src. It is all-or-nothing: on error the table keeps its
	// previous state.
	Load(src rowsource.Source) error

	// GetIntField returns the physical cell value at (rowID, colID).
	GetIntField(rowID, colID int) int32

	// PutIntField overwrites the physical cell value at (rowID, colID).
	// It bypasses every derived structure; see the variant documentation
	// for what goes stale.
	PutIntField(rowID, colID int, v int32)

	// ColumnSum returns the sum of column 0 over all rows.
	//
	//	SELECT SUM(col0) FROM table;
	ColumnSum() int64

	// PredicatedColumnSum returns the sum of column 0 over rows with
	// col1 > t1 and col2 < t2. Both comparisons are strict.
	//
	//	SELECT SUM(col0) FROM table WHERE col1 > t1 AND col2 < t2;
	PredicatedColumnSum(t1, t2 int32) int64

	// PredicatedAllColumnsSum returns the sum of every column over rows
	// with col0 > t. Rows selected by an earlier PredicatedUpdate
	// contribute their updated column 3 value.
	//
	//	SELECT SUM(col0) + SUM(col1) + ... + SUM(coln) FROM table
	//	WHERE col0 > t;
	PredicatedAllColumnsSum(t int32) int64

	// PredicatedUpdate sets column 3 to col1 + col2 on rows with col0 < t
	// and returns the number of qualifying rows.
	//
	//	UPDATE table SET col3 = col1 + col2 WHERE col0 < t;
	PredicatedUpdate(t int32) int32

	// NumRows returns the number of loaded rows.
	NumRows() int

	// NumCols returns the number of loaded columns.
	NumCols() int
}

// IndexStat describes one ordered index a variant built during Load.
type IndexStat struct {
	// Name identifies the index, e.g. "value(col0)" or "sum(col2,col1)".
	Name string

	// DistinctKeys is the number of distinct keys the index holds. For a
	// composite index this counts the outer dimension.
	DistinctKeys int
}

// IndexReporter is implemented by variants that build ordered indexes.
// Callers type-assert for it; the scan-only variant does not implement it.
type IndexReporter interface {
	IndexStats() []IndexStat
}

// MustContain panics with *OutOfRangeError when (rowID, colID) falls
// outside the given shape. Out-of-range ids on the O(1) accessors are a
// caller bug, mirroring slice indexing.
func MustContain(rowID, colID, numRows, numCols int) {
	if rowID < 0 || rowID >= numRows || colID < 0 || colID >= numCols {
		panic(&OutOfRangeError{Row: rowID, Col: colID, NumRows: numRows, NumCols: numCols})
	}
}

// ValidateSchema checks that src declares at least minCols columns using a
// shared helper, so every variant reports the same SchemaError.
func ValidateSchema(src rowsource.Source, minCols int) error {
	if nc := src.NumCols(); nc < minCols {
		return &SchemaError{NumCols: nc, MinCols: minCols}
	}
	return nil
}
