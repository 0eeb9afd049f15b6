package workload

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tabgo"
)

// DivergenceError reports two variants disagreeing on the same query mix.
type DivergenceError struct {
	Op       string // Operation that diverged
	VariantA string
	VariantB string
	A, B     int64 // Accumulated results of the two variants
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s diverged: %s returned %d, %s returned %d",
		e.Op, e.VariantA, e.A, e.VariantB, e.B)
}

// Verify loads every variant from identical record streams, replays the
// configured query mix on each and returns the per-variant reports. A
// DivergenceError is returned alongside the reports if any two variants
// disagree on any operation.
//
// The variants load and run in parallel; cfg.Variant is ignored.
func Verify(ctx context.Context, cfg *Config) ([]*Report, error) {
	runner, err := NewRunner(cfg)
	if err != nil {
		return nil, err
	}

	variants := []string{tabgo.VariantRowMajor, tabgo.VariantIndexed, tabgo.VariantColumnar}
	reports := make([]*Report, len(variants))
	src := runner.Source()

	g, gctx := errgroup.WithContext(ctx)

	for i, variant := range variants {
		g.Go(func() error {
			vcfg := *cfg
			vcfg.Variant = variant

			store, err := NewStore(&vcfg)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := store.Load(src); err != nil {
				return fmt.Errorf("%s: %w", variant, err)
			}
			loadTime := time.Since(start)

			report, err := runner.Run(gctx, store)
			if err != nil {
				return fmt.Errorf("%s: %w", variant, err)
			}

			report.LoadTime = loadTime
			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	base := reports[0]
	for _, report := range reports[1:] {
		if err := compareReports(base, report); err != nil {
			return reports, err
		}
	}

	return reports, nil
}

func compareReports(a, b *Report) error {
	checks := []struct {
		op     string
		av, bv int64
	}{
		{"predicated update", a.Update.Sum, b.Update.Sum},
		{"column sum", a.ColumnSum.Sum, b.ColumnSum.Sum},
		{"predicated column sum", a.PredicatedColumnSum.Sum, b.PredicatedColumnSum.Sum},
		{"predicated all-columns sum", a.PredicatedAllColumnsSum.Sum, b.PredicatedAllColumnsSum.Sum},
	}

	for _, c := range checks {
		if c.av != c.bv {
			return &DivergenceError{
				Op:       c.op,
				VariantA: a.Variant,
				VariantB: b.Variant,
				A:        c.av,
				B:        c.bv,
			}
		}
	}

	return nil
}
