package rowsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// CSV streams comma-separated integer rows from a file. Files ending in .gz
// are decompressed transparently.
//
// The file is scanned once at construction to fix the source shape; Records
// then re-reads it on every call, keeping memory flat regardless of row
// count.
type CSV struct {
	path    string
	numRows int
	numCols int
}

// NewCSV opens path, determines the row and column counts and returns the
// source. The file must parse as comma-separated records of equal length.
func NewCSV(path string) (*CSV, error) {
	src := &CSV{path: path}

	rc, err := src.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cr := newCSVReader(rc)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}

		if src.numRows == 0 {
			src.numCols = len(fields)
		}
		src.numRows++
	}

	return src, nil
}

// NumRows returns the number of rows counted at construction.
func (s *CSV) NumRows() int { return s.numRows }

// NumCols returns the number of fields per record.
func (s *CSV) NumCols() int { return s.numCols }

// Records re-opens the file and yields one record per line.
func (s *CSV) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		rc, err := s.open()
		if err != nil {
			yield(nil, err)
			return
		}
		defer rc.Close()

		cr := newCSVReader(rc)
		rec := make(Record, s.numCols*FieldWidth)
		for {
			fields, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}

			for col := range s.numCols {
				v, err := strconv.ParseInt(strings.TrimSpace(fields[col]), 10, 32)
				if err != nil {
					yield(nil, fmt.Errorf("column %d: %w", col, err))
					return
				}
				rec.PutField(col, int32(v))
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

func (s *CSV) open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(s.path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &gzipReadCloser{zr: zr, f: f}, nil
}

// ReadCSV parses all comma-separated integer rows from r into memory and
// returns them as a Slice source. Use it for readers that cannot be
// re-opened; NewCSV streams files instead.
func ReadCSV(r io.Reader) (*Slice, error) {
	cr := newCSVReader(r)

	var rows [][]int32
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make([]int32, len(fields))
		for col, field := range fields {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", len(rows), col, err)
			}
			row[col] = int32(v)
		}
		rows = append(rows, row)
	}

	return NewSlice(rows), nil
}

// newCSVReader applies the shared reader settings: the field count is fixed
// by the first record, leading whitespace is ignored.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return cr
}

// gzipReadCloser closes the gzip stream and the underlying file together.
type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

var _ Source = (*CSV)(nil)
