// Package primary provides a record layout with a primary key map and no
// reverse index. LookupByNode scans the dependents of every record, trading
// query latency for a cheaper build. Use it when reverse lookups are rare.
package primary

import (
	"iter"
	"slices"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/internal/table"
	"github.com/hupe1980/rbestore/model"
)

var _ index.Index = (*Index)(nil)

// Index is the primary-key-only layout.
type Index struct {
	tbl *table.Table
}

// Build constructs the layout in one pass over records.
func Build(records iter.Seq[model.Record]) (*Index, error) {
	tbl, err := table.Build(records, nil)
	if err != nil {
		return nil, err
	}
	return &Index{tbl: tbl}, nil
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

// LookupByNode implements index.Index. It costs O(total dependents).
func (ix *Index) LookupByNode(node model.NodeID) []model.Record {
	return ix.tbl.Scan(func(deps []model.NodeID) bool {
		return slices.Contains(deps, node)
	})
}

// Len implements index.Index.
func (ix *Index) Len() int {
	return ix.tbl.Len()
}

// Stats implements index.Index.
func (ix *Index) Stats() index.Stats {
	return index.Stats{
		Records: ix.tbl.Len(),
		Rows:    ix.tbl.Len(),
	}
}
