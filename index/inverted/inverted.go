package inverted

import (
	"iter"
	"slices"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/internal/table"
	"github.com/hupe1980/rbestore/model"
)

// Compile time check to ensure Index satisfies the index.Index interface.
var _ index.Index = (*Index)(nil)

// Index is the primary key + reverse multi-map layout.
type Index struct {
	tbl      *table.Table
	postings map[model.NodeID][]model.RowID
}

// Build constructs the layout in one pass over records.
func Build(records iter.Seq[model.Record]) (*Index, error) {
	postings := make(map[model.NodeID][]model.RowID)

	tbl, err := table.Build(records, func(row model.RowID, deps []model.NodeID) {
		for _, n := range deps {
			postings[n] = append(postings[n], row)
		}
	})
	if err != nil {
		return nil, err
	}

	return &Index{tbl: tbl, postings: postings}, nil
}

// Builder adapts Build to index.Builder.
func Builder(records iter.Seq[model.Record]) (index.Index, error) {
	ix, err := Build(records)
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// LookupByID implements index.Index.
func (ix *Index) LookupByID(id model.ElementID) (model.Record, error) {
	return ix.tbl.LookupByID(id)
}

// LookupByIDs implements index.Index.
func (ix *Index) LookupByIDs(ids []model.ElementID) []model.Record {
	return ix.tbl.LookupByIDs(ids)
}

// LookupByNode implements index.Index.
func (ix *Index) LookupByNode(node model.NodeID) []model.Record {
	rows, ok := ix.postings[node]
	if !ok {
		return nil
	}
	return ix.tbl.Resolve(slices.Values(rows))
}

// NodeRefs returns the raw bucket for node: one element id per occurrence of
// node in a record's dependents, in build order.
func (ix *Index) NodeRefs(node model.NodeID) []model.ElementID {
	rows := ix.postings[node]
	if len(rows) == 0 {
		return nil
	}

	ids := make([]model.ElementID, len(rows))
	for i, row := range rows {
		ids[i] = ix.tbl.ID(row)
	}
	return ids
}

// Len implements index.Index.
func (ix *Index) Len() int {
	return ix.tbl.Len()
}

// Stats implements index.Index.
func (ix *Index) Stats() index.Stats {
	return index.Stats{
		Records:  ix.tbl.Len(),
		Rows:     ix.tbl.Len(),
		Nodes:    len(ix.postings),
		Postings: ix.tbl.Postings(),
	}
}
