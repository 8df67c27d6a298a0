package pk

import (
	"github.com/hupe1980/rbestore/model"
)

// Index maps primary keys to rows.
type Index struct {
	m map[model.ElementID]model.RowID
}

// New creates an empty index with room for size keys.
func New(size int) *Index {
	if size < 0 {
		size = 0
	}
	return &Index{
		m: make(map[model.ElementID]model.RowID, size),
	}
}

// Insert adds id -> row. It returns the row already stored for id and false
// if the key is present, leaving the index unchanged.
func (idx *Index) Insert(id model.ElementID, row model.RowID) (model.RowID, bool) {
	if prev, ok := idx.m[id]; ok {
		return prev, false
	}
	idx.m[id] = row
	return row, true
}

// Lookup returns the row for the given primary key.
func (idx *Index) Lookup(id model.ElementID) (model.RowID, bool) {
	row, ok := idx.m[id]
	return row, ok
}

// Contains reports whether id is indexed.
func (idx *Index) Contains(id model.ElementID) bool {
	_, ok := idx.m[id]
	return ok
}

// Len returns the number of keys.
func (idx *Index) Len() int {
	return len(idx.m)
}
