// Package columnar provides the workload-specialized table variant: cells
// laid out column-major, every shipped operation answered from structures
// built in the single load pass.
//
// The variant defers updates. PredicatedUpdate marks qualifying rows in a
// bitmap instead of rewriting stored column 3, and PredicatedAllColumnsSum
// consults the mark together with a precomputed per-row sum. The stored
// column is never corrected, so GetIntField(row, 3) returns the load-time
// value even for marked rows. Callers that need read-your-writes on
// column 3 should use the rowmajor or indexed variant.
package columnar

import (
	"fmt"

	"github.com/hupe1980/tabgo/internal/colbuf"
	"github.com/hupe1980/tabgo/internal/rowset"
	"github.com/hupe1980/tabgo/internal/treeindex"
	"github.com/hupe1980/tabgo/rowsource"
	"github.com/hupe1980/tabgo/table"
)

// Compile-time check to ensure Table satisfies the table contract.
var _ table.Table = (*Table)(nil)

// Table stores data in column-major format:
//
//	col 0 | col 1 | ... | col n-1
//
// and keeps, per the workload plan, an ordered value index, a composite
// sum index and two flat row-sum caches: the plain cell sum per row and
// the sum as it would read with column 3 replaced by col1 + col2.
type Table struct {
	buf     *colbuf.Buffer
	numRows int
	numCols int

	plan      table.Plan
	values    *treeindex.ValueIndex
	composite *treeindex.SumIndex

	rowSums        []int64
	updatedRowSums []int64
	updated        *rowset.Set
}

// New creates an empty columnar table. The derived structures follow the
// shipped workload plan; Load must complete before any other method is
// called.
func New() *Table {
	return &Table{plan: table.WorkloadPlan()}
}

// Load reads every record into a fresh column-major buffer and fills the
// indexes and row-sum caches in the same pass. The update set starts
// empty: reloading clears earlier marks. On error the table keeps its
// previous state.
func (t *Table) Load(src rowsource.Source) error {
	if err := table.ValidateSchema(src, table.MinColumns); err != nil {
		return err
	}

	numRows := src.NumRows()
	numCols := src.NumCols()
	buf := colbuf.New(colbuf.ColumnMajor, numRows, numCols)
	values := treeindex.NewValueIndex()
	composite := treeindex.NewSumIndex()
	rowSums := make([]int64, numRows)
	updatedRowSums := make([]int64, numRows)

	row := 0
	for rec, err := range src.Records() {
		if err != nil {
			return &table.SourceError{Row: row, Err: err}
		}
		if row >= numRows {
			return &table.RowCountError{Declared: numRows, Yielded: row + 1}
		}
		if rec.NumFields() < numCols {
			return &table.SourceError{Row: row, Err: rowsource.ErrShortRecord}
		}

		buf.PutRecord(row, rec)

		values.Insert(rec.Field(t.plan.ValueColumn), row)
		composite.Add(
			rec.Field(t.plan.CompositeOuter),
			rec.Field(t.plan.CompositeInner),
			rec.Field(t.plan.ValueColumn),
		)

		var sum int64
		for col := range numCols {
			sum += int64(rec.Field(col))
		}
		rowSums[row] = sum
		updatedRowSums[row] = sum - int64(rec.Field(3)) + int64(rec.Field(1)) + int64(rec.Field(2))

		row++
	}

	if row != numRows {
		return &table.RowCountError{Declared: numRows, Yielded: row}
	}

	t.buf = buf
	t.numRows = numRows
	t.numCols = numCols
	t.values = values
	t.composite = composite
	t.rowSums = rowSums
	t.updatedRowSums = updatedRowSums
	t.updated = rowset.New()

	return nil
}

// GetIntField returns the stored cell value at (rowID, colID). Column 3
// reads are not update-aware: a row marked by PredicatedUpdate keeps
// returning its load-time value here. PredicatedAllColumnsSum is the only
// update-aware reader.
func (t *Table) GetIntField(rowID, colID int) int32 {
	table.MustContain(rowID, colID, t.numRows, t.numCols)
	return t.buf.Get(rowID, colID)
}

// PutIntField overwrites the stored cell value at (rowID, colID). The
// write bypasses every derived structure: indexes, row-sum caches and the
// update set keep their load-time view.
func (t *Table) PutIntField(rowID, colID int, v int32) {
	table.MustContain(rowID, colID, t.numRows, t.numCols)
	t.buf.Put(rowID, colID, v)
}

// IndexStats reports both load-time indexes and their distinct-key counts.
func (t *Table) IndexStats() []table.IndexStat {
	if t.values == nil {
		return nil
	}

	return []table.IndexStat{
		{
			Name:         fmt.Sprintf("value(col%d)", t.plan.ValueColumn),
			DistinctKeys: t.values.Len(),
		},
		{
			Name:         fmt.Sprintf("sum(col%d,col%d)", t.plan.CompositeOuter, t.plan.CompositeInner),
			DistinctKeys: t.composite.Len(),
		},
	}
}

// ColumnSum answers from the value index alone, one visit per distinct
// value, without touching the stored cells.
func (t *Table) ColumnSum() int64 {
	var sum int64

	t.values.Scan(func(v int32, rows *rowset.Set) bool {
		sum += int64(v) * int64(rows.Cardinality())
		return true
	})

	return sum
}

// PredicatedColumnSum answers from the composite index: the precomputed
// partial sums of every (outer, inner) bucket inside the bounds, with
// early exit in both dimensions.
func (t *Table) PredicatedColumnSum(t1, t2 int32) int64 {
	return t.composite.RangeSum(t1, t2)
}

// PredicatedAllColumnsSum walks the value index downwards while the key
// passes the strict bound and adds the cached sum of each selected row:
// the updated one when the row is marked, the plain one otherwise. No
// cell is re-read at query time.
func (t *Table) PredicatedAllColumnsSum(threshold int32) int64 {
	var sum int64

	t.values.DescendGreater(threshold, func(_ int32, rows *rowset.Set) bool {
		for row := range rows.Iterator() {
			if t.updated.Contains(row) {
				sum += t.updatedRowSums[row]
			} else {
				sum += t.rowSums[row]
			}
		}
		return true
	})

	return sum
}

// PredicatedUpdate marks every qualifying row in the update set and
// returns the number of qualifying rows. Marking is one-way and
// idempotent: repeated calls with the same threshold return the same
// count. The stored column 3 is left untouched.
func (t *Table) PredicatedUpdate(threshold int32) int32 {
	var updated int32

	t.values.AscendLess(threshold, func(_ int32, rows *rowset.Set) bool {
		t.updated.Union(rows)
		updated += int32(rows.Cardinality())
		return true
	})

	return updated
}

// NumRows returns the number of loaded rows.
func (t *Table) NumRows() int { return t.numRows }

// NumCols returns the number of loaded columns.
func (t *Table) NumCols() int { return t.numCols }
