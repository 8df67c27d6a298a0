package rbestore

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/model"
)

// maxReportedEmpty caps the ids listed in the empty-dependents warning.
const maxReportedEmpty = 8

// Store is an immutable, indexed collection of RBE2 records.
//
// A Store is built once by Build and never modified afterwards. Because
// nothing mutates it, any number of goroutines may call its lookup methods
// at the same time without locking. Records returned by a Store are copies;
// changing them does not affect the Store.
type Store struct {
	ix      index.Index
	layout  Layout
	logger  *Logger
	metrics MetricsCollector
}

// Build ingests records once and returns the built store.
//
// Build fails with *DuplicateIDError when an element id repeats, and, with
// WithStrictDependents, with *EmptyDependentsError when a record has no
// dependents. On failure no store is returned.
//
// records is consumed exactly once; Build never retains it.
func Build(records iter.Seq[model.Record], optFns ...Option) (*Store, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	ctx := context.Background()
	logger := o.logger.WithLayout(o.layout)

	build := o.layout.builder()
	if build == nil {
		return nil, &ErrUnknownLayout{Name: o.layout.String()}
	}
	if records == nil {
		records = func(func(model.Record) bool) {}
	}

	var (
		count    int
		empty    int
		emptyIDs []model.ElementID
		verr     error
	)

	checked := func(yield func(model.Record) bool) {
		for r := range records {
			count++
			if len(r.Dependents) == 0 {
				if o.strict {
					verr = &EmptyDependentsError{ID: r.ID}
					return
				}
				empty++
				if len(emptyIDs) < maxReportedEmpty {
					emptyIDs = append(emptyIDs, r.ID)
				}
			}
			if !yield(r) {
				return
			}
		}
	}

	start := time.Now()
	ix, err := build(checked)
	if err == nil && verr != nil {
		ix, err = nil, verr
	}
	elapsed := time.Since(start)

	o.metricsCollector.RecordBuild(count, elapsed, err)

	if err != nil {
		logger.LogBuild(ctx, count, index.Stats{}, elapsed, err)
		return nil, err
	}

	logger.LogBuild(ctx, count, ix.Stats(), elapsed, nil)
	if empty > 0 {
		logger.LogEmptyDependents(ctx, empty, emptyIDs)
	}

	return &Store{
		ix:      ix,
		layout:  o.layout,
		logger:  logger,
		metrics: o.metricsCollector,
	}, nil
}

// BuildSlice is Build over a slice of records.
func BuildSlice(records []model.Record, optFns ...Option) (*Store, error) {
	return Build(slices.Values(records), optFns...)
}

// LookupByID returns the record with the given id.
// It fails with *NotFoundError if no such record was built.
func (s *Store) LookupByID(id model.ElementID) (model.Record, error) {
	start := time.Now()
	rec, err := s.ix.LookupByID(id)

	results := 1
	if err != nil {
		results = 0
	}
	s.observe(LookupByID, uint32(id), results, start, err)

	return rec, err
}

// LookupByIDs returns the records for ids, skipping ids that were not built.
// Each record appears once, in build order.
func (s *Store) LookupByIDs(ids []model.ElementID) []model.Record {
	start := time.Now()
	recs := s.ix.LookupByIDs(ids)
	s.observe(LookupByIDs, uint32(len(ids)), len(recs), start, nil)
	return recs
}

// LookupByNode returns every record that lists node among its dependents,
// once per record, in build order. It returns an empty result, not an error,
// when no record references node.
func (s *Store) LookupByNode(node model.NodeID) []model.Record {
	start := time.Now()
	recs := s.ix.LookupByNode(node)
	s.observe(LookupByNode, uint32(node), len(recs), start, nil)
	return recs
}

// Len returns the number of records.
func (s *Store) Len() int {
	return s.ix.Len()
}

// Layout returns the layout the store was built with.
func (s *Store) Layout() Layout {
	return s.layout
}

// Stats describes the space used by the store's layout.
func (s *Store) Stats() index.Stats {
	return s.ix.Stats()
}

func (s *Store) observe(kind LookupKind, key uint32, results int, start time.Time, err error) {
	s.metrics.RecordLookup(kind, results, time.Since(start), err)
	s.logger.LogLookup(context.Background(), kind, key, results, err)
}
