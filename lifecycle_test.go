package tabgo_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/rowsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLifecycle_Reload verifies that a reload fully replaces store state:
// row shape, query answers and any pending deferred updates from the
// previous load.
//
// This test ensures:
// 1. A loaded store can be reloaded from a different source
// 2. Queries after the reload see only the new data
// 3. Deferred update marks do not leak across reloads
func TestLifecycle_Reload(t *testing.T) {
	tests := []struct {
		name  string
		build func() *tabgo.Store
	}{
		{
			name:  "RowMajor",
			build: func() *tabgo.Store { return tabgo.RowMajor().MustBuild() },
		},
		{
			name:  "Indexed on column 0",
			build: func() *tabgo.Store { return tabgo.Indexed(0).MustBuild() },
		},
		{
			name:  "Indexed on column 2",
			build: func() *tabgo.Store { return tabgo.Indexed(2).MustBuild() },
		},
		{
			name:  "Columnar",
			build: func() *tabgo.Store { return tabgo.Columnar().MustBuild() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.build()

			require.NoError(t, store.Load(rowsource.NewSlice([][]int32{
				{5, 2, 1, 0},
				{10, 4, 0, 0},
				{1, 0, 9, 0},
			})))

			// Mutate so stale state would be visible after the reload
			assert.Equal(t, int32(2), store.PredicatedUpdate(6))
			assert.Equal(t, int64(44), store.PredicatedAllColumnsSum(0))

			require.NoError(t, store.Load(rowsource.NewSlice([][]int32{
				{2, 1, 1, 0},
				{4, 1, 1, 0},
			})))

			assert.Equal(t, 2, store.NumRows())
			assert.Equal(t, int64(6), store.ColumnSum())

			// No row qualifies yet and no mark survived the reload
			assert.Equal(t, int64(10), store.PredicatedAllColumnsSum(0))

			assert.Equal(t, int32(1), store.PredicatedUpdate(3))
			assert.Equal(t, int64(12), store.PredicatedAllColumnsSum(0))
		})
	}
}

// TestLifecycle_QueryMixAcrossVariants runs an interleaved query and update
// mix over identical generated data and requires every variant to stay in
// agreement at each step.
func TestLifecycle_QueryMixAcrossVariants(t *testing.T) {
	const (
		seed     = 99
		numRows  = 1_000
		numCols  = 5
		maxValue = 256
	)

	src := rowsource.NewRandom(seed, numRows, numCols, maxValue)

	baseline, err := tabgo.RowMajor().Open(src)
	require.NoError(t, err)

	others := []*tabgo.Store{
		tabgo.Indexed(0).MustBuild(),
		tabgo.Indexed(1).MustBuild(),
		tabgo.Columnar().MustBuild(),
	}
	for _, store := range others {
		require.NoError(t, store.Load(src))
	}

	thresholds := []int32{0, 17, 64, 100, 128, 200, 255, 256}

	for step, threshold := range thresholds {
		msg := fmt.Sprintf("step %d threshold %d", step, threshold)

		wantUpdated := baseline.PredicatedUpdate(threshold)
		wantColumn := baseline.ColumnSum()
		wantPred := baseline.PredicatedColumnSum(threshold, maxValue-threshold)
		wantAll := baseline.PredicatedAllColumnsSum(threshold)

		for _, store := range others {
			assert.Equal(t, wantUpdated, store.PredicatedUpdate(threshold), "%s: %s", store.Variant(), msg)
			assert.Equal(t, wantColumn, store.ColumnSum(), "%s: %s", store.Variant(), msg)
			assert.Equal(t, wantPred, store.PredicatedColumnSum(threshold, maxValue-threshold), "%s: %s", store.Variant(), msg)
			assert.Equal(t, wantAll, store.PredicatedAllColumnsSum(threshold), "%s: %s", store.Variant(), msg)
		}
	}
}
