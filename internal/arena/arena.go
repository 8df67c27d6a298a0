package arena

import (
	"errors"
	"iter"
	"math"

	"github.com/hupe1980/rbestore/model"
)

var (
	// ErrArenaFull is returned when the arena cannot address another record or dependent.
	ErrArenaFull = errors.New("arena is full")
)

// header is the fixed-size part of a record. off/n address its dependents in the slab.
type header struct {
	id     model.ElementID
	driver model.NodeID
	mask   model.ComponentMask
	off    uint32
	n      uint32
}

// Arena stores records contiguously.
type Arena struct {
	headers []header
	slab    []model.NodeID
}

// New creates an arena with room for records records without growing.
func New(records int) *Arena {
	if records < 0 {
		records = 0
	}
	return &Arena{
		headers: make([]header, 0, records),
	}
}

// Append copies r into the arena and returns its handle.
func (a *Arena) Append(r model.Record) (model.RowID, error) {
	if uint64(len(a.headers)) >= math.MaxUint32 || uint64(len(a.slab)+len(r.Dependents)) > math.MaxUint32 {
		return 0, ErrArenaFull
	}

	row := model.RowID(len(a.headers))
	a.headers = append(a.headers, header{
		id:     r.ID,
		driver: r.Driver,
		mask:   r.Components,
		off:    uint32(len(a.slab)),
		n:      uint32(len(r.Dependents)),
	})
	a.slab = append(a.slab, r.Dependents...)

	return row, nil
}

// Len returns the number of records in the arena.
func (a *Arena) Len() int {
	return len(a.headers)
}

// NodeCount returns the total number of dependents held, repeats included.
func (a *Arena) NodeCount() int {
	return len(a.slab)
}

// Valid reports whether row addresses a record.
func (a *Arena) Valid(row model.RowID) bool {
	return int(row) < len(a.headers)
}

// ID returns the element id stored at row.
func (a *Arena) ID(row model.RowID) model.ElementID {
	return a.headers[row].id
}

// Dependents returns a read-only view of the dependents stored at row.
// The view is capacity-clipped so appending to it never touches the slab.
func (a *Arena) Dependents(row model.RowID) []model.NodeID {
	h := a.headers[row]
	return a.slab[h.off : h.off+h.n : h.off+h.n]
}

// Get materializes the record stored at row. The result owns its dependents.
func (a *Arena) Get(row model.RowID) model.Record {
	h := a.headers[row]

	var deps []model.NodeID
	if h.n > 0 {
		deps = make([]model.NodeID, h.n)
		copy(deps, a.slab[h.off:h.off+h.n])
	}

	return model.Record{
		ID:         h.id,
		Driver:     h.driver,
		Components: h.mask,
		Dependents: deps,
	}
}

// Rows iterates all handles in append order.
func (a *Arena) Rows() iter.Seq[model.RowID] {
	return func(yield func(model.RowID) bool) {
		for i := range a.headers {
			if !yield(model.RowID(i)) {
				return
			}
		}
	}
}
