// Package tabgo provides an embedded tabular store for a fixed analytic workload.
//
// This file implements variant-specific fluent builder APIs for creating and configuring Store instances.
// Builders are immutable - each method returns a new builder with the updated configuration.
package tabgo

import (
	"fmt"

	"github.com/hupe1980/tabgo/rowsource"
	"github.com/hupe1980/tabgo/table/columnar"
	"github.com/hupe1980/tabgo/table/indexed"
	"github.com/hupe1980/tabgo/table/rowmajor"
)

// =============================================================================
// RowMajor Builder (Immutable)
// =============================================================================

// RowMajor creates a new builder for the baseline row-major variant.
// RowMajor answers every operation with a linear scan and materializes
// updates eagerly; it is the reference the other variants are checked
// against.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	store, err := tabgo.RowMajor().
//	    Logger(tabgo.NewTextLogger(slog.LevelInfo)).
//	    Open(src)
func RowMajor() RowMajorBuilder {
	return RowMajorBuilder{}
}

// RowMajorBuilder is an immutable fluent builder for creating row-major Store instances.
// Each method returns a new builder with the updated configuration.
type RowMajorBuilder struct {
	logger  *Logger
	metrics MetricsCollector
}

// Logger sets the structured logger for operation tracing.
func (b RowMajorBuilder) Logger(l *Logger) RowMajorBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b RowMajorBuilder) Metrics(mc MetricsCollector) RowMajorBuilder {
	b.metrics = mc
	return b
}

// Build creates the row-major Store instance.
func (b RowMajorBuilder) Build() (*Store, error) {
	return newStore(rowmajor.New(), VariantRowMajor, buildOptions(b.logger, b.metrics)), nil
}

// MustBuild creates the Store instance, panicking on error.
func (b RowMajorBuilder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Open creates the Store and loads it from src in one call.
func (b RowMajorBuilder) Open(src rowsource.Source) (*Store, error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := s.Load(src); err != nil {
		return nil, err
	}
	return s, nil
}

// =============================================================================
// Indexed Builder (Immutable)
// =============================================================================

// Indexed creates a new builder for the tree-indexed variant with an
// ordered index over the given column. The index accelerates the
// operations whose predicate it covers (column 0: the update and the
// all-columns sum; column 1 or 2: the two-sided sum); everything else
// falls back to scans.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	store, err := tabgo.Indexed(0).
//	    Metrics(&tabgo.BasicMetricsCollector{}).
//	    Open(src)
func Indexed(column int) IndexedBuilder {
	return IndexedBuilder{column: column}
}

// IndexedBuilder is an immutable fluent builder for creating indexed Store instances.
// Each method returns a new builder with the updated configuration.
type IndexedBuilder struct {
	column  int
	logger  *Logger
	metrics MetricsCollector
}

// Logger sets the structured logger for operation tracing.
func (b IndexedBuilder) Logger(l *Logger) IndexedBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b IndexedBuilder) Metrics(mc MetricsCollector) IndexedBuilder {
	b.metrics = mc
	return b
}

// Build creates the indexed Store instance.
func (b IndexedBuilder) Build() (*Store, error) {
	if b.column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndexColumn, b.column)
	}

	t := indexed.New(func(o *indexed.Options) {
		o.IndexColumn = b.column
	})

	return newStore(t, VariantIndexed, buildOptions(b.logger, b.metrics)), nil
}

// MustBuild creates the Store instance, panicking on error.
func (b IndexedBuilder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Open creates the Store and loads it from src in one call.
func (b IndexedBuilder) Open(src rowsource.Source) (*Store, error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := s.Load(src); err != nil {
		return nil, err
	}
	return s, nil
}

// =============================================================================
// Columnar Builder (Immutable)
// =============================================================================

// Columnar creates a new builder for the workload-specialized columnar
// variant. Every operation is answered from load-time structures; updates
// are deferred into a bitmap (see the package documentation for the
// column 3 read semantics this implies).
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	store, err := tabgo.Columnar().
//	    Logger(tabgo.NewJSONLogger(slog.LevelInfo)).
//	    Open(src)
func Columnar() ColumnarBuilder {
	return ColumnarBuilder{}
}

// ColumnarBuilder is an immutable fluent builder for creating columnar Store instances.
// Each method returns a new builder with the updated configuration.
type ColumnarBuilder struct {
	logger  *Logger
	metrics MetricsCollector
}

// Logger sets the structured logger for operation tracing.
func (b ColumnarBuilder) Logger(l *Logger) ColumnarBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b ColumnarBuilder) Metrics(mc MetricsCollector) ColumnarBuilder {
	b.metrics = mc
	return b
}

// Build creates the columnar Store instance.
func (b ColumnarBuilder) Build() (*Store, error) {
	return newStore(columnar.New(), VariantColumnar, buildOptions(b.logger, b.metrics)), nil
}

// MustBuild creates the Store instance, panicking on error.
func (b ColumnarBuilder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Open creates the Store and loads it from src in one call.
func (b ColumnarBuilder) Open(src rowsource.Source) (*Store, error) {
	s, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := s.Load(src); err != nil {
		return nil, err
	}
	return s, nil
}

// buildOptions converts builder settings into constructor options.
func buildOptions(logger *Logger, metrics MetricsCollector) []Option {
	var optFns []Option
	if logger != nil {
		optFns = append(optFns, WithLogger(logger))
	}
	if metrics != nil {
		optFns = append(optFns, WithMetricsCollector(metrics))
	}
	return optFns
}
