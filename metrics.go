package rbestore

import (
	"sync/atomic"
	"time"
)

// LookupKind identifies a store query.
type LookupKind int

const (
	// LookupByID is a single primary key lookup.
	LookupByID LookupKind = iota
	// LookupByIDs is a batch primary key lookup.
	LookupByIDs
	// LookupByNode is a reverse lookup by dependent node.
	LookupByNode
)

// String returns a string representation of the LookupKind.
func (k LookupKind) String() string {
	switch k {
	case LookupByID:
		return "by_id"
	case LookupByIDs:
		return "by_ids"
	case LookupByNode:
		return "by_node"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Lookups may run on many goroutines at once, so implementations must be
// safe for concurrent use.
type MetricsCollector interface {
	// RecordBuild is called once per Build.
	// count is the number of records ingested before success or failure.
	RecordBuild(count int, duration time.Duration, err error)

	// RecordLookup is called after each query.
	// results is the number of records returned, err is non-nil only for a
	// LookupByID miss.
	RecordLookup(kind LookupKind, results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)              {}
func (NoopMetricsCollector) RecordLookup(LookupKind, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildRecords    atomic.Int64
	BuildTotalNanos atomic.Int64

	ByIDCount     atomic.Int64
	ByIDMisses    atomic.Int64
	ByIDsCount    atomic.Int64
	ByNodeCount   atomic.Int64
	ByNodeEmpty   atomic.Int64
	ResultRecords atomic.Int64

	LookupCount      atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildRecords.Add(int64(count))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(kind LookupKind, results int, duration time.Duration, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	b.ResultRecords.Add(int64(results))

	switch kind {
	case LookupByID:
		b.ByIDCount.Add(1)
		if err != nil {
			b.ByIDMisses.Add(1)
		}
	case LookupByIDs:
		b.ByIDsCount.Add(1)
	case LookupByNode:
		b.ByNodeCount.Add(1)
		if results == 0 {
			b.ByNodeEmpty.Add(1)
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildRecords:   b.BuildRecords.Load(),
		BuildAvgNanos:  avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		ByIDCount:      b.ByIDCount.Load(),
		ByIDMisses:     b.ByIDMisses.Load(),
		ByIDsCount:     b.ByIDsCount.Load(),
		ByNodeCount:    b.ByNodeCount.Load(),
		ByNodeEmpty:    b.ByNodeEmpty.Load(),
		ResultRecords:  b.ResultRecords.Load(),
		LookupAvgNanos: avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildRecords   int64
	BuildAvgNanos  int64
	ByIDCount      int64
	ByIDMisses     int64
	ByIDsCount     int64
	ByNodeCount    int64
	ByNodeEmpty    int64
	ResultRecords  int64
	LookupAvgNanos int64
}
