package rbestore

import (
	"fmt"

	"github.com/hupe1980/rbestore/index"
)

var (
	// ErrDuplicateID is matched by every *DuplicateIDError.
	ErrDuplicateID = index.ErrDuplicateID

	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = index.ErrNotFound

	// ErrEmptyDependents is matched by every *EmptyDependentsError.
	ErrEmptyDependents = index.ErrEmptyDependents
)

// DuplicateIDError is returned by Build when an element id repeats.
// No store is returned alongside it.
type DuplicateIDError = index.DuplicateIDError

// NotFoundError is returned by Store.LookupByID for an unknown id.
type NotFoundError = index.NotFoundError

// EmptyDependentsError is returned by Build in strict mode for a record
// without dependents.
type EmptyDependentsError = index.EmptyDependentsError

// ErrUnknownLayout indicates a layout name or value that is not supported.
type ErrUnknownLayout struct {
	Name string
}

func (e *ErrUnknownLayout) Error() string {
	return fmt.Sprintf("unknown layout: %q", e.Name)
}

// MismatchError reports the first query on which two stores disagree.
type MismatchError struct {
	Kind  LookupKind
	Key   uint32
	Left  Layout
	Right Layout
	// Detail describes the difference.
	Detail string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s(%d): %s and %s disagree: %s", e.Kind, e.Key, e.Left, e.Right, e.Detail)
}
