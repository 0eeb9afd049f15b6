package tabgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    loadCounter    prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordLoad(rows int, duration time.Duration, err error) {
//	    p.loadCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordLoad is called after each load operation.
	// rows is the number of rows loaded, duration is the total time taken,
	// err is nil if successful.
	RecordLoad(rows int, duration time.Duration, err error)

	// RecordColumnSum is called after each column sum.
	RecordColumnSum(duration time.Duration)

	// RecordPredicatedColumnSum is called after each predicated column sum.
	RecordPredicatedColumnSum(duration time.Duration)

	// RecordPredicatedAllColumnsSum is called after each predicated
	// all-columns sum.
	RecordPredicatedAllColumnsSum(duration time.Duration)

	// RecordPredicatedUpdate is called after each predicated update.
	// count is the number of qualifying rows.
	RecordPredicatedUpdate(count int32, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordColumnSum(time.Duration)               {}
func (NoopMetricsCollector) RecordPredicatedColumnSum(time.Duration)     {}
func (NoopMetricsCollector) RecordPredicatedAllColumnsSum(time.Duration) {}
func (NoopMetricsCollector) RecordPredicatedUpdate(int32, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount                atomic.Int64
	LoadErrors               atomic.Int64
	LoadRows                 atomic.Int64
	LoadTotalNanos           atomic.Int64
	ColumnSumCount           atomic.Int64
	ColumnSumTotalNanos      atomic.Int64
	PredColumnSumCount       atomic.Int64
	PredColumnSumTotalNanos  atomic.Int64
	PredAllColumnsCount      atomic.Int64
	PredAllColumnsTotalNanos atomic.Int64
	UpdateCount              atomic.Int64
	UpdateRows               atomic.Int64
	UpdateTotalNanos         atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	} else {
		b.LoadRows.Add(int64(rows))
	}
}

// RecordColumnSum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordColumnSum(duration time.Duration) {
	b.ColumnSumCount.Add(1)
	b.ColumnSumTotalNanos.Add(duration.Nanoseconds())
}

// RecordPredicatedColumnSum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredicatedColumnSum(duration time.Duration) {
	b.PredColumnSumCount.Add(1)
	b.PredColumnSumTotalNanos.Add(duration.Nanoseconds())
}

// RecordPredicatedAllColumnsSum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredicatedAllColumnsSum(duration time.Duration) {
	b.PredAllColumnsCount.Add(1)
	b.PredAllColumnsTotalNanos.Add(duration.Nanoseconds())
}

// RecordPredicatedUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredicatedUpdate(count int32, duration time.Duration) {
	b.UpdateCount.Add(1)
	b.UpdateRows.Add(int64(count))
	b.UpdateTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:              b.LoadCount.Load(),
		LoadErrors:             b.LoadErrors.Load(),
		LoadRows:               b.LoadRows.Load(),
		LoadAvgNanos:           avgNanos(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		ColumnSumCount:         b.ColumnSumCount.Load(),
		ColumnSumAvgNanos:      avgNanos(b.ColumnSumTotalNanos.Load(), b.ColumnSumCount.Load()),
		PredColumnSumCount:     b.PredColumnSumCount.Load(),
		PredColumnSumAvgNanos:  avgNanos(b.PredColumnSumTotalNanos.Load(), b.PredColumnSumCount.Load()),
		PredAllColumnsCount:    b.PredAllColumnsCount.Load(),
		PredAllColumnsAvgNanos: avgNanos(b.PredAllColumnsTotalNanos.Load(), b.PredAllColumnsCount.Load()),
		UpdateCount:            b.UpdateCount.Load(),
		UpdateRows:             b.UpdateRows.Load(),
		UpdateAvgNanos:         avgNanos(b.UpdateTotalNanos.Load(), b.UpdateCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount              int64
	LoadErrors             int64
	LoadRows               int64
	LoadAvgNanos           int64
	ColumnSumCount         int64
	ColumnSumAvgNanos      int64
	PredColumnSumCount     int64
	PredColumnSumAvgNanos  int64
	PredAllColumnsCount    int64
	PredAllColumnsAvgNanos int64
	UpdateCount            int64
	UpdateRows             int64
	UpdateAvgNanos         int64
}
