package bitmap

import (
	"iter"

	"github.com/hupe1980/rbestore/index"
	ibitmap "github.com/hupe1980/rbestore/internal/bitmap"
	"github.com/hupe1980/rbestore/internal/table"
	"github.com/hupe1980/rbestore/model"
)

var _ index.Index = (*Index)(nil)

// Index is the primary key + bitmap postings layout.
type Index struct {
	tbl      *table.Table
	postings map[model.NodeID]*ibitmap.Bitmap
}

// Build constructs the layout in one pass over records.
func Build(records iter.Seq[model.Record]) (*Index, error) {
	postings := make(map[model.NodeID]*ibitmap.Bitmap)

	tbl, err := table.Build(records, func(row model.RowID, deps []model.NodeID) {
		for _, n := range deps {
			b, ok := postings[n]
			if !ok {
				b = ibitmap.New()
				postings[n] = b
			}
			b.Add(uint32(row))
		}
	})
	if err != nil {
		return nil, err
	}

	for _, b := range postings {
		b.Optimize()
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
	b, ok := ix.postings[node]
	if !ok {
		return nil
	}
	return ix.tbl.Resolve(func(yield func(model.RowID) bool) {
		for v := range b.Values() {
			if !yield(model.RowID(v)) {
				return
			}
		}
	})
}

// Len implements index.Index.
func (ix *Index) Len() int {
	return ix.tbl.Len()
}

// Stats implements index.Index.
func (ix *Index) Stats() index.Stats {
	s := index.Stats{
		Records: ix.tbl.Len(),
		Rows:    ix.tbl.Len(),
		Nodes:   len(ix.postings),
	}
	for _, b := range ix.postings {
		s.Postings += int(b.Cardinality())
		s.PostingBytes += b.GetSizeInBytes()
	}
	return s
}
