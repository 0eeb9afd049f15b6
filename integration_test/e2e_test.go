package integration_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/rowsource"
	"github.com/hupe1980/tabgo/testutil"
)

func writeCSV(t *testing.T, path string, rows [][]int32, compress bool) {
	t.Helper()

	var buf bytes.Buffer
	for _, row := range rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = strconv.Itoa(int(v))
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteByte('\n')
	}

	data := buf.Bytes()
	if compress {
		var gz bytes.Buffer
		w := gzip.NewWriter(&gz)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		data = gz.Bytes()
	}

	require.NoError(t, os.WriteFile(path, data, 0o600))
}

// TestCSVPipeline loads every variant from CSV files, plain and gzipped,
// and checks the full operation set against the brute-force reference.
func TestCSVPipeline(t *testing.T) {
	rows := testutil.NewRNG(1234).Rows(400, 5, 128)

	dir := t.TempDir()
	plain := filepath.Join(dir, "data.csv")
	zipped := filepath.Join(dir, "data.csv.gz")
	writeCSV(t, plain, rows, false)
	writeCSV(t, zipped, rows, true)

	factories := []struct {
		name  string
		build func() *tabgo.Store
	}{
		{"RowMajor", func() *tabgo.Store { return tabgo.RowMajor().MustBuild() }},
		{"Indexed", func() *tabgo.Store { return tabgo.Indexed(0).MustBuild() }},
		{"Columnar", func() *tabgo.Store { return tabgo.Columnar().MustBuild() }},
	}

	for _, file := range []struct{ name, path string }{
		{"Plain", plain},
		{"Gzip", zipped},
	} {
		t.Run(file.name, func(t *testing.T) {
			src, err := rowsource.NewCSV(file.path)
			require.NoError(t, err)
			require.Equal(t, 400, src.NumRows())
			require.Equal(t, 5, src.NumCols())

			for _, tc := range factories {
				t.Run(tc.name, func(t *testing.T) {
					store := tc.build()
					require.NoError(t, store.Load(src))

					ref := testutil.CloneRows(rows)

					assert.Equal(t, testutil.ColumnSum(ref), store.ColumnSum())
					assert.Equal(t, testutil.PredicatedColumnSum(ref, 40, 90), store.PredicatedColumnSum(40, 90))
					assert.Equal(t, testutil.PredicatedAllColumnsSum(ref, 64), store.PredicatedAllColumnsSum(64))

					wantUpdated := testutil.PredicatedUpdate(ref, 100)
					assert.Equal(t, wantUpdated, store.PredicatedUpdate(100))
					assert.Equal(t, testutil.PredicatedAllColumnsSum(ref, 10), store.PredicatedAllColumnsSum(10))

					// The stored cells still match the file
					for row := range 400 {
						require.Equal(t, rows[row][0], store.GetIntField(row, 0))
					}
				})
			}
		})
	}
}

// TestFullStack wires logging and metrics through a CSV load and the whole
// operation set.
func TestFullStack(t *testing.T) {
	rows := testutil.NewRNG(77).Rows(50, 4, 32)

	path := filepath.Join(t.TempDir(), "small.csv")
	writeCSV(t, path, rows, false)

	src, err := rowsource.NewCSV(path)
	require.NoError(t, err)

	var logBuf bytes.Buffer
	logger := tabgo.NewLogger(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	metrics := &tabgo.BasicMetricsCollector{}

	store, err := tabgo.Columnar().
		Logger(logger).
		Metrics(metrics).
		Open(src)
	require.NoError(t, err)

	store.ColumnSum()
	store.PredicatedColumnSum(4, 20)
	store.PredicatedUpdate(16)
	store.PredicatedAllColumnsSum(8)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, int64(50), stats.LoadRows)
	assert.Equal(t, int64(1), stats.ColumnSumCount)
	assert.Equal(t, int64(1), stats.PredColumnSumCount)
	assert.Equal(t, int64(1), stats.PredAllColumnsCount)
	assert.Equal(t, int64(1), stats.UpdateCount)

	logs := logBuf.String()
	assert.Contains(t, logs, "load completed")
	assert.Contains(t, logs, "variant=columnar")
	assert.Contains(t, logs, "predicated update completed")
}
