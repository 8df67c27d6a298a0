package longtable

import (
	"iter"

	"github.com/hupe1980/rbestore/index"
	ibitmap "github.com/hupe1980/rbestore/internal/bitmap"
	"github.com/hupe1980/rbestore/model"
)

var _ index.Index = (*Table)(nil)

type row struct {
	id        model.ElementID
	driver    model.NodeID
	mask      model.ComponentMask
	dependent model.NodeID
	// hasDep is false only for the placeholder row of a record without dependents.
	hasDep bool
}

// Table is the one-row-per-dependent layout.
type Table struct {
	rows    []row
	records int
}

// Build expands records into rows. Uniqueness of element ids is checked with
// a seen-set since the table itself has no key.
func Build(records iter.Seq[model.Record]) (*Table, error) {
	var rows []row
	seen := make(map[model.ElementID]struct{})

	for r := range records {
		if _, ok := seen[r.ID]; ok {
			return nil, &index.DuplicateIDError{ID: r.ID}
		}
		seen[r.ID] = struct{}{}

		if len(r.Dependents) == 0 {
			rows = append(rows, row{id: r.ID, driver: r.Driver, mask: r.Components})
			continue
		}
		for _, n := range r.Dependents {
			rows = append(rows, row{id: r.ID, driver: r.Driver, mask: r.Components, dependent: n, hasDep: true})
		}
	}

	return &Table{rows: rows, records: len(seen)}, nil
}

// Builder adapts Build to index.Builder.
func Builder(records iter.Seq[model.Record]) (index.Index, error) {
	t, err := Build(records)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LookupByID implements index.Index. It costs O(rows).
func (t *Table) LookupByID(id model.ElementID) (model.Record, error) {
	var (
		rec   model.Record
		found bool
	)
	for _, r := range t.rows {
		if r.id != id {
			continue
		}
		if !found {
			rec = model.Record{ID: r.id, Driver: r.driver, Components: r.mask}
			found = true
		}
		if r.hasDep {
			rec.Dependents = append(rec.Dependents, r.dependent)
		}
	}
	if !found {
		return model.Record{}, &index.NotFoundError{ID: id}
	}
	return rec, nil
}

// LookupByIDs implements index.Index. It scans all rows once, testing each
// against the requested id set.
func (t *Table) LookupByIDs(ids []model.ElementID) []model.Record {
	if len(ids) == 0 {
		return nil
	}

	want := ibitmap.New()
	for _, id := range ids {
		want.Add(uint32(id))
	}
	return t.collect(func(r *row) bool { return want.Contains(uint32(r.id)) })
}

// LookupByNode implements index.Index. It scans for rows holding node, then
// regroups the matching elements.
func (t *Table) LookupByNode(node model.NodeID) []model.Record {
	var ids []model.ElementID
	for i := range t.rows {
		r := &t.rows[i]
		if r.hasDep && r.dependent == node {
			ids = append(ids, r.id)
		}
	}
	return t.LookupByIDs(ids)
}

// collect regroups rows matching keep into records, in order of first row.
// Rows of one record are contiguous, so a change of id starts a new record.
func (t *Table) collect(keep func(r *row) bool) []model.Record {
	var out []model.Record
	for i := range t.rows {
		r := &t.rows[i]
		if !keep(r) {
			continue
		}
		if n := len(out); n == 0 || out[n-1].ID != r.id {
			out = append(out, model.Record{ID: r.id, Driver: r.driver, Components: r.mask})
		}
		if r.hasDep {
			last := &out[len(out)-1]
			last.Dependents = append(last.Dependents, r.dependent)
		}
	}
	return out
}

// Len implements index.Index.
func (t *Table) Len() int {
	return t.records
}

// Stats implements index.Index.
func (t *Table) Stats() index.Stats {
	return index.Stats{
		Records: t.records,
		Rows:    len(t.rows),
	}
}
