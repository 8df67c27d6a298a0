package table

import (
	"fmt"
	"iter"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/internal/arena"
	ibitmap "github.com/hupe1980/rbestore/internal/bitmap"
	"github.com/hupe1980/rbestore/internal/pk"
	"github.com/hupe1980/rbestore/model"
)

// VisitFunc is called once per stored record during Build.
// deps is a read-only view into the arena.
type VisitFunc func(row model.RowID, deps []model.NodeID)

// Table is an immutable arena of records indexed by element id.
type Table struct {
	arena *arena.Arena
	pk    *pk.Index
}

// Build ingests records in a single pass. It fails with *index.DuplicateIDError
// on the first repeated id; the partially built table is dropped.
func Build(records iter.Seq[model.Record], visit VisitFunc) (*Table, error) {
	t := &Table{
		arena: arena.New(0),
		pk:    pk.New(0),
	}

	for r := range records {
		if t.pk.Contains(r.ID) {
			return nil, &index.DuplicateIDError{ID: r.ID}
		}

		row, err := t.arena.Append(r)
		if err != nil {
			return nil, fmt.Errorf("table: element %d: %w", r.ID, err)
		}
		t.pk.Insert(r.ID, row)

		if visit != nil {
			visit(row, t.arena.Dependents(row))
		}
	}

	return t, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return t.arena.Len()
}

// Postings returns the number of dependents held, repeats included.
func (t *Table) Postings() int {
	return t.arena.NodeCount()
}

// LookupByID returns the record for id or an *index.NotFoundError.
func (t *Table) LookupByID(id model.ElementID) (model.Record, error) {
	row, ok := t.pk.Lookup(id)
	if !ok {
		return model.Record{}, &index.NotFoundError{ID: id}
	}
	return t.arena.Get(row), nil
}

// LookupByIDs returns the stored records among ids in build order.
func (t *Table) LookupByIDs(ids []model.ElementID) []model.Record {
	return t.Resolve(func(yield func(model.RowID) bool) {
		for _, id := range ids {
			row, ok := t.pk.Lookup(id)
			if !ok {
				continue
			}
			if !yield(row) {
				return
			}
		}
	})
}

// Resolve materializes rows in ascending row order, once per row.
// It returns nil when rows is empty.
func (t *Table) Resolve(rows iter.Seq[model.RowID]) []model.Record {
	set := ibitmap.New()
	for row := range rows {
		set.Add(uint32(row))
	}
	if set.IsEmpty() {
		return nil
	}

	out := make([]model.Record, 0, set.Cardinality())
	for v := range set.Values() {
		out = append(out, t.arena.Get(model.RowID(v)))
	}
	return out
}

// Scan returns every record whose dependents satisfy match, in build order.
func (t *Table) Scan(match func(deps []model.NodeID) bool) []model.Record {
	var out []model.Record
	for row := range t.arena.Rows() {
		if match(t.arena.Dependents(row)) {
			out = append(out, t.arena.Get(row))
		}
	}
	return out
}

// ID returns the element id stored at row.
func (t *Table) ID(row model.RowID) model.ElementID {
	return t.arena.ID(row)
}
