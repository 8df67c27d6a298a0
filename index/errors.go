package index

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rbestore/model"
)

var (
	// ErrDuplicateID is matched by every *DuplicateIDError.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("element not found")

	// ErrEmptyDependents is matched by every *EmptyDependentsError.
	ErrEmptyDependents = errors.New("element has no dependents")
)

// DuplicateIDError indicates that an element id appeared twice while building.
type DuplicateIDError struct {
	ID model.ElementID
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate element id: %d", e.ID)
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// NotFoundError indicates a lookup for an element id that is not stored.
type NotFoundError struct {
	ID model.ElementID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element %d not found", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// EmptyDependentsError indicates a record without dependents in strict builds.
type EmptyDependentsError struct {
	ID model.ElementID
}

func (e *EmptyDependentsError) Error() string {
	return fmt.Sprintf("element %d has no dependents", e.ID)
}

// Is reports whether target is ErrEmptyDependents.
func (e *EmptyDependentsError) Is(target error) bool { return target == ErrEmptyDependents }
