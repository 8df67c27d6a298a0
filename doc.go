// Package rbestore provides an immutable, indexed in-memory store for RBE2
// rigid-constraint elements.
//
// An RBE2 element ties a list of dependent grid nodes to one driving node
// over a set of constrained components. rbestore ingests a batch of such
// records once and then answers two kinds of questions:
//
//   - which element has id X (primary key lookup)
//   - which elements constrain node N (reverse lookup)
//
// # Quick Start
//
//	store, err := rbestore.BuildSlice([]model.Record{
//	    model.NewRecord(1, 1, 123, 10, 11, 12),
//	    model.NewRecord(2, 2, 3, 14, 12),
//	})
//	if err != nil {
//	    var dup *rbestore.DuplicateIDError
//	    if errors.As(err, &dup) { ... }
//	}
//	rec, err := store.LookupByID(2)     // *NotFoundError on a miss
//	recs := store.LookupByNode(12)      // empty, never an error, on a miss
//
// Records may come from any source: Build accepts an iter.Seq so a parser or
// generator can stream records without materializing a slice first.
//
// # Layouts
//
// The same queries are served by four interchangeable layouts:
//
//	LayoutInverted   primary key map + node -> rows multi-map (default)
//	LayoutBitmap     primary key map + node -> Roaring bitmap of rows
//	LayoutPrimary    primary key map only, reverse lookups scan
//	LayoutLongTable  one row per dependent, every lookup scans (baseline)
//
// Every layout returns the same records for the same query; Equivalent checks
// this for a given set of probes.
//
// # Concurrency
//
// Build is single-threaded. A built Store is never modified, so its lookup
// methods may be called from any number of goroutines without locking.
// Nothing enforces this beyond the absence of mutating methods.
//
// # Configuration
//
// Build takes functional options (WithLayout, WithStrictDependents,
// WithLogger, WithMetricsCollector). LoadConfig reads the same settings from
// YAML.
package rbestore
