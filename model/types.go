package model

import (
	"fmt"
	"slices"
)

// ElementID is the unique identifier of an RBE2 element.
type ElementID uint32

// NodeID references a grid node.
type NodeID uint32

// RowID is a dense, store-local identifier for a record.
// It is assigned in build order and has no meaning outside the store that assigned it.
type RowID uint32

// ComponentMask encodes the constrained degrees of freedom as decimal digits,
// one digit per component (1..6). The store treats it as opaque.
type ComponentMask uint32

// Components returns the component digits in the order they appear in the mask.
func (m ComponentMask) Components() []int {
	if m == 0 {
		return nil
	}

	var digits []int
	for v := uint32(m); v > 0; v /= 10 {
		digits = append(digits, int(v%10))
	}
	slices.Reverse(digits)

	return digits
}

// Has reports whether the degree of freedom dof is constrained.
func (m ComponentMask) Has(dof int) bool {
	return slices.Contains(m.Components(), dof)
}

// Valid reports whether every digit is a component in 1..6 and no component repeats.
func (m ComponentMask) Valid() bool {
	if m == 0 {
		return false
	}

	var seen [7]bool
	for _, c := range m.Components() {
		if c < 1 || c > 6 || seen[c] {
			return false
		}
		seen[c] = true
	}

	return true
}

// Record is one RBE2 rigid element: a driving node, the constrained
// components and the dependent nodes tied to it.
//
// Dependents may repeat a node; the repetition is kept as given.
type Record struct {
	ID         ElementID
	Driver     NodeID
	Components ComponentMask
	Dependents []NodeID
}

// NewRecord creates a record.
func NewRecord(id ElementID, driver NodeID, components ComponentMask, dependents ...NodeID) Record {
	return Record{
		ID:         id,
		Driver:     driver,
		Components: components,
		Dependents: dependents,
	}
}

// Equal reports whether r and other identify the same element.
// Records are identified by ID; use Same to compare every field.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID
}

// Same reports whether r and other agree in every field, including the
// order of dependents.
func (r Record) Same(other Record) bool {
	return r.ID == other.ID &&
		r.Driver == other.Driver &&
		r.Components == other.Components &&
		slices.Equal(r.Dependents, other.Dependents)
}

// References reports whether node is one of the record's dependents.
func (r Record) References(node NodeID) bool {
	return slices.Contains(r.Dependents, node)
}

// Clone returns a copy of r that shares no memory with it.
func (r Record) Clone() Record {
	r.Dependents = slices.Clone(r.Dependents)
	return r
}

// String returns a string representation of the Record.
func (r Record) String() string {
	return fmt.Sprintf("RBE2(eid=%d,gd=%d,ci=%d,gis=%v)", r.ID, r.Driver, r.Components, r.Dependents)
}
