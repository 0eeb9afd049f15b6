// Package workload replays the fixed query mix against a store and reports
// per-operation timings.
//
// One mix iteration issues, in order: PredicatedUpdate, ColumnSum,
// PredicatedColumnSum, PredicatedAllColumnsSum, with thresholds drawn from
// a stream seeded like the data generator. Every operation result folds
// into a final checksum, so two runs over the same Config are comparable
// by a single number.
package workload

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hupe1980/tabgo"
	"github.com/hupe1980/tabgo/rowsource"
)

// Runner replays the query mix described by a Config. Run may be called
// concurrently on distinct stores; the threshold stream restarts for every
// call.
type Runner struct {
	cfg *Config
}

// NewRunner validates cfg and returns a Runner for it.
func NewRunner(cfg *Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg}, nil
}

// Source returns the record stream for the configured shape. Every load
// from it sees identical rows.
func (r *Runner) Source() *rowsource.Random {
	return rowsource.NewRandom(r.cfg.Seed, r.cfg.Rows, r.cfg.Cols, r.cfg.MaxValue)
}

// Run replays the query mix on an already loaded store. The context is
// checked between iterations; a canceled run returns no report.
func (r *Runner) Run(ctx context.Context, store *tabgo.Store) (*Report, error) {
	// Thresholds restart from the data seed so runs are repeatable.
	rng := rand.New(rand.NewSource(r.cfg.Seed))

	report := &Report{
		Variant: store.Variant(),
		Seed:    r.cfg.Seed,
		Rows:    store.NumRows(),
		Cols:    store.NumCols(),
		Queries: r.cfg.Queries,
	}

	for range r.cfg.Queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t := r.threshold(rng)
		start := time.Now()
		count := store.PredicatedUpdate(t)
		report.Update.record(time.Since(start), int64(count))

		start = time.Now()
		sum := store.ColumnSum()
		report.ColumnSum.record(time.Since(start), sum)

		t1, t2 := r.threshold(rng), r.threshold(rng)
		start = time.Now()
		sum = store.PredicatedColumnSum(t1, t2)
		report.PredicatedColumnSum.record(time.Since(start), sum)

		t = r.threshold(rng)
		start = time.Now()
		sum = store.PredicatedAllColumnsSum(t)
		report.PredicatedAllColumnsSum.record(time.Since(start), sum)
	}

	report.FinalResult = report.Update.Sum +
		report.ColumnSum.Sum +
		report.PredicatedColumnSum.Sum +
		report.PredicatedAllColumnsSum.Sum

	return report, nil
}

func (r *Runner) threshold(rng *rand.Rand) int32 {
	return int32(rng.Intn(int(r.cfg.MaxValue)))
}

// NewStore creates the unloaded store variant cfg selects.
func NewStore(cfg *Config) (*tabgo.Store, error) {
	switch cfg.Variant {
	case tabgo.VariantRowMajor:
		return tabgo.RowMajor().Build()
	case tabgo.VariantIndexed:
		return tabgo.Indexed(cfg.IndexColumn).Build()
	case tabgo.VariantColumnar:
		return tabgo.Columnar().Build()
	default:
		return nil, fmt.Errorf("unknown variant: %q", cfg.Variant)
	}
}

// Run creates the configured store, loads it and replays the query mix.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	runner, err := NewRunner(cfg)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := store.Load(runner.Source()); err != nil {
		return nil, err
	}
	loadTime := time.Since(start)

	report, err := runner.Run(ctx, store)
	if err != nil {
		return nil, err
	}

	report.LoadTime = loadTime

	return report, nil
}

// Report holds the outcome of one workload run.
type Report struct {
	Variant string
	Seed    int64
	Rows    int
	Cols    int
	Queries int

	// LoadTime is the wall-clock time of the initial load. Zero when the
	// runner was handed an already loaded store.
	LoadTime time.Duration

	// FinalResult is the checksum of every operation result in the run.
	// Variants replaying the same Config must agree on it.
	FinalResult int64

	Update                  OpStats
	ColumnSum               OpStats
	PredicatedColumnSum     OpStats
	PredicatedAllColumnsSum OpStats
}

// OpStats aggregates wall-clock timings and results of one operation.
type OpStats struct {
	Calls int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration

	// Sum accumulates the operation results: update counts for the
	// update, sums for the queries.
	Sum int64
}

// Avg returns the mean duration per call.
func (s OpStats) Avg() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

func (s *OpStats) record(took time.Duration, result int64) {
	if s.Calls == 0 || took < s.Min {
		s.Min = took
	}
	if took > s.Max {
		s.Max = took
	}

	s.Calls++
	s.Total += took
	s.Sum += result
}
