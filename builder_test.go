package tabgo_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/rowsource"
)

func testRows() [][]int32 {
	return [][]int32{
		{5, 2, 1, 0},
		{10, 4, 0, 0},
		{1, 0, 9, 0},
	}
}

func TestBuilder_RowMajor_Basic(t *testing.T) {
	store, err := tabgo.RowMajor().
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := store.Load(rowsource.NewSlice(testRows())); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := store.ColumnSum(); got != 16 {
		t.Errorf("expected column sum 16, got %d", got)
	}
}

func TestBuilder_RowMajor_FullOptions(t *testing.T) {
	store, err := tabgo.RowMajor().
		Logger(tabgo.NoopLogger()).
		Metrics(&tabgo.BasicMetricsCollector{}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := store.Load(rowsource.NewSlice(testRows())); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

func TestBuilder_Indexed_Basic(t *testing.T) {
	store, err := tabgo.Indexed(0).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := store.Load(rowsource.NewSlice(testRows())); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := store.PredicatedAllColumnsSum(0); got != 32 {
		t.Errorf("expected all-columns sum 32, got %d", got)
	}
}

func TestBuilder_Indexed_NegativeColumn(t *testing.T) {
	_, err := tabgo.Indexed(-1).Build()
	if !errors.Is(err, tabgo.ErrInvalidIndexColumn) {
		t.Errorf("expected ErrInvalidIndexColumn, got %v", err)
	}
}

func TestBuilder_Columnar_Basic(t *testing.T) {
	store, err := tabgo.Columnar().
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := store.Load(rowsource.NewSlice(testRows())); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := store.PredicatedColumnSum(1, 5); got != 15 {
		t.Errorf("expected predicated sum 15, got %d", got)
	}
}

func TestBuilder_MustBuild_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustBuild to panic on invalid config")
		}
	}()

	// Negative index column should cause panic
	_ = tabgo.Indexed(-1).MustBuild()
}

func TestBuilder_Open(t *testing.T) {
	store, err := tabgo.Columnar().
		Open(rowsource.NewSlice(testRows()))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if store.NumRows() != 3 {
		t.Errorf("expected 3 rows, got %d", store.NumRows())
	}
}

func TestBuilder_Open_LoadError(t *testing.T) {
	// Too few columns for the workload
	_, err := tabgo.RowMajor().
		Open(rowsource.NewSlice([][]int32{{1, 2}}))
	if !errors.Is(err, tabgo.ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
}

func TestBuilder_Immutable(t *testing.T) {
	base := tabgo.Indexed(2)
	withLogger := base.Logger(tabgo.NoopLogger())

	// Configuring a derived builder must not touch the base
	s1, err := base.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s2, err := withLogger.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if s1.Variant() != s2.Variant() {
		t.Errorf("builders diverged: %q vs %q", s1.Variant(), s2.Variant())
	}
}

func TestBuilder_AllVariantsAgree(t *testing.T) {
	rows := testRows()

	stores := make([]*tabgo.Store, 0, 3)
	for _, open := range []func() (*tabgo.Store, error){
		func() (*tabgo.Store, error) { return tabgo.RowMajor().Open(rowsource.NewSlice(rows)) },
		func() (*tabgo.Store, error) { return tabgo.Indexed(0).Open(rowsource.NewSlice(rows)) },
		func() (*tabgo.Store, error) { return tabgo.Columnar().Open(rowsource.NewSlice(rows)) },
	} {
		store, err := open()
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		stores = append(stores, store)
	}

	for _, store := range stores {
		if got := store.ColumnSum(); got != 16 {
			t.Errorf("%s: expected column sum 16, got %d", store.Variant(), got)
		}
		if got := store.PredicatedUpdate(6); got != 2 {
			t.Errorf("%s: expected 2 updated rows, got %d", store.Variant(), got)
		}
		if got := store.PredicatedAllColumnsSum(0); got != 44 {
			t.Errorf("%s: expected all-columns sum 44, got %d", store.Variant(), got)
		}
	}
}
