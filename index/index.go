package index

import (
	"iter"

	"github.com/hupe1980/rbestore/model"
)

// Index is a built, read-only record store.
//
// Implementations are immutable after their Builder returns, so any number of
// goroutines may query an Index at the same time without synchronization.
type Index interface {
	// LookupByID returns the record with the given id or a *NotFoundError.
	LookupByID(id model.ElementID) (model.Record, error)

	// LookupByIDs returns the records for ids in build order.
	// Unknown ids are skipped and repeated ids yield their record once.
	LookupByIDs(ids []model.ElementID) []model.Record

	// LookupByNode returns every record listing node among its dependents,
	// once per record and in build order. The result is empty, not an error,
	// when no record references node.
	LookupByNode(node model.NodeID) []model.Record

	// Len returns the number of records.
	Len() int

	// Stats describes the space used by the layout.
	Stats() Stats
}

// Builder ingests records once and returns the built index.
// It fails with *DuplicateIDError on a repeated element id.
type Builder func(records iter.Seq[model.Record]) (Index, error)

// Stats describes the shape of a built index.
type Stats struct {
	// Records is the number of distinct elements.
	Records int
	// Rows is the number of stored rows. It equals Records for every layout
	// except longtable, which stores one row per dependent.
	Rows int
	// Nodes is the number of distinct dependent nodes with a reverse-index
	// entry. Zero for layouts without a reverse index.
	Nodes int
	// Postings is the number of reverse-index entries.
	Postings int
	// PostingBytes is the in-memory size of compressed posting lists, if any.
	PostingBytes uint64
}
