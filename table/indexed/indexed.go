// Package indexed provides the tree-indexed table variant: the row-major
// layout of the baseline plus one ordered index over a configurable
// column, built during the load pass.
//
// Only predicates over the indexed column are served from the tree;
// everything else falls back to the baseline scans. The index keeps its
// load-time buckets: neither PutIntField nor PredicatedUpdate refreshes it.
package indexed

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

// Options represents the options for configuring the indexed variant.
type Options struct {
	// IndexColumn is the column the ordered index is built over. An index
	// on column 1 or 2 accelerates PredicatedColumnSum, an index on
	// column 0 accelerates PredicatedAllColumnsSum and PredicatedUpdate.
	// Any other column leaves every operation on the scan fallback.
	IndexColumn int
}

var DefaultOptions = Options{
	IndexColumn: 0,
}

// Table stores data row-major and keeps an ordered index mapping each
// distinct value of the index column to the set of rows holding it.
type Table struct {
	buf     *colbuf.Buffer
	index   *treeindex.ValueIndex
	numRows int
	numCols int

	opts Options
}

// New creates an empty indexed table with the given options. Load must
// complete before any other method is called.
func New(optFns ...func(o *Options)) *Table {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.IndexColumn < 0 {
		// A negative column cannot be loaded; fall back to the default.
		opts.IndexColumn = 0
	}

	return &Table{opts: opts}
}

// IndexColumn returns the column the index is built over.
func (t *Table) IndexColumn() int {
	return t.opts.IndexColumn
}

// IndexStats reports the ordered index and its distinct-key count.
func (t *Table) IndexStats() []table.IndexStat {
	if t.index == nil {
		return nil
	}

	return []table.IndexStat{
		{Name: fmt.Sprintf("value(col%d)", t.opts.IndexColumn), DistinctKeys: t.index.Len()},
	}
}

// Load reads every record into a fresh row-major buffer and fills the
// index in the same pass. On error the table keeps its previous state.
func (t *Table) Load(src rowsource.Source) error {
	minCols := table.MinColumns
	if t.opts.IndexColumn >= minCols {
		minCols = t.opts.IndexColumn + 1
	}

	if err := table.ValidateSchema(src, minCols); err != nil {
		return err
	}

	numRows := src.NumRows()
	numCols := src.NumCols()
	buf := colbuf.New(colbuf.RowMajor, numRows, numCols)
	index := treeindex.NewValueIndex()

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
		index.Insert(rec.Field(t.opts.IndexColumn), row)
		row++
	}

	if row != numRows {
		return &table.RowCountError{Declared: numRows, Yielded: row}
	}

	t.buf = buf
	t.index = index
	t.numRows = numRows
	t.numCols = numCols

	return nil
}

// GetIntField returns the physical cell value at (rowID, colID).
func (t *Table) GetIntField(rowID, colID int) int32 {
	table.MustContain(rowID, colID, t.numRows, t.numCols)
	return t.buf.Get(rowID, colID)
}

// PutIntField overwrites the physical cell value at (rowID, colID). The
// index is not refreshed: a write to the indexed column shifts what the
// accelerated paths return until the next Load.
func (t *Table) PutIntField(rowID, colID int, v int32) {
	table.MustContain(rowID, colID, t.numRows, t.numCols)
	t.buf.Put(rowID, colID, v)
}

// ColumnSum returns the sum of column 0 over all rows. With the index on
// column 0 the walk visits one bucket per distinct value; otherwise every
// row is scanned.
func (t *Table) ColumnSum() int64 {
	var sum int64

	if t.opts.IndexColumn == 0 {
		t.index.Scan(func(v int32, rows *rowset.Set) bool {
			sum += int64(v) * int64(rows.Cardinality())
			return true
		})

		return sum
	}

	for row := range t.numRows {
		sum += int64(t.buf.Get(row, 0))
	}

	return sum
}

// PredicatedColumnSum returns the sum of column 0 over rows with col1 > t1
// and col2 < t2. An index on column 1 or 2 narrows the walk to the rows
// passing that half of the predicate; the other half is checked per row.
func (t *Table) PredicatedColumnSum(t1, t2 int32) int64 {
	var sum int64

	switch t.opts.IndexColumn {
	case 1:
		t.index.AscendGreater(t1, func(_ int32, rows *rowset.Set) bool {
			for row := range rows.Iterator() {
				if t.buf.Get(row, 2) < t2 {
					sum += int64(t.buf.Get(row, 0))
				}
			}
			return true
		})
	case 2:
		t.index.AscendLess(t2, func(_ int32, rows *rowset.Set) bool {
			for row := range rows.Iterator() {
				if t.buf.Get(row, 1) > t1 {
					sum += int64(t.buf.Get(row, 0))
				}
			}
			return true
		})
	default:
		for row := range t.numRows {
			if t.buf.Get(row, 1) > t1 && t.buf.Get(row, 2) < t2 {
				sum += int64(t.buf.Get(row, 0))
			}
		}
	}

	return sum
}

// PredicatedAllColumnsSum returns the sum of every column over rows with
// col0 > threshold, served from the index when it covers column 0.
// Updates were written physically, so the stored column 3 is always
// current.
func (t *Table) PredicatedAllColumnsSum(threshold int32) int64 {
	var sum int64

	if t.opts.IndexColumn == 0 {
		t.index.AscendGreater(threshold, func(_ int32, rows *rowset.Set) bool {
			for row := range rows.Iterator() {
				for col := range t.numCols {
					sum += int64(t.buf.Get(row, col))
				}
			}
			return true
		})

		return sum
	}

	for row := range t.numRows {
		if t.buf.Get(row, 0) <= threshold {
			continue
		}
		for col := range t.numCols {
			sum += int64(t.buf.Get(row, col))
		}
	}

	return sum
}

// PredicatedUpdate writes col1 + col2 into column 3 of rows with
// col0 < threshold and returns the number of qualifying rows, served from
// the index when it covers column 0. The write is physical; an index on
// column 3 goes stale, but no query path consults one.
func (t *Table) PredicatedUpdate(threshold int32) int32 {
	var updated int32

	if t.opts.IndexColumn == 0 {
		t.index.AscendLess(threshold, func(_ int32, rows *rowset.Set) bool {
			for row := range rows.Iterator() {
				t.buf.Put(row, 3, t.buf.Get(row, 1)+t.buf.Get(row, 2))
				updated++
			}
			return true
		})

		return updated
	}

	for row := range t.numRows {
		if t.buf.Get(row, 0) >= threshold {
			continue
		}
		t.buf.Put(row, 3, t.buf.Get(row, 1)+t.buf.Get(row, 2))
		updated++
	}

	return updated
}

// NumRows returns the number of loaded rows.
func (t *Table) NumRows() int { return t.numRows }

// NumCols returns the number of loaded columns.
func (t *Table) NumCols() int { return t.numCols }
