package arena

import (
	"slices"
	"testing"

	"github.com/hupe1980/rbestore/model"
)

func TestArena_AppendGet(t *testing.T) {
	a := New(2)

	r1, err := a.Append(model.NewRecord(1, 1, 123, 10, 11, 12))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	r2, err := a.Append(model.NewRecord(2, 2, 3, 14, 12))
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if r1 != 0 || r2 != 1 {
		t.Fatalf("expected rows 0,1 got %d,%d", r1, r2)
	}
	if a.Len() != 2 {
		t.Errorf("expected len 2, got %d", a.Len())
	}
	if a.NodeCount() != 5 {
		t.Errorf("expected 5 dependents, got %d", a.NodeCount())
	}

	got := a.Get(r2)
	if !got.Same(model.NewRecord(2, 2, 3, 14, 12)) {
		t.Errorf("unexpected record %v", got)
	}
	if a.ID(r1) != 1 {
		t.Errorf("expected id 1, got %d", a.ID(r1))
	}
}

func TestArena_CopiesInput(t *testing.T) {
	a := New(0)

	deps := []model.NodeID{10, 11}
	row, err := a.Append(model.NewRecord(1, 1, 123, deps...))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	deps[0] = 99

	if got := a.Dependents(row); !slices.Equal(got, []model.NodeID{10, 11}) {
		t.Errorf("arena shares memory with caller: %v", got)
	}

	rec := a.Get(row)
	rec.Dependents[1] = 77
	if got := a.Dependents(row); got[1] != 11 {
		t.Errorf("Get result shares memory with arena: %v", got)
	}
}

func TestArena_DependentsViewIsClipped(t *testing.T) {
	a := New(0)
	r1, _ := a.Append(model.NewRecord(1, 1, 1, 10))
	r2, _ := a.Append(model.NewRecord(2, 2, 1, 20))

	view := a.Dependents(r1)
	_ = append(view, 55)

	if got := a.Dependents(r2); got[0] != 20 {
		t.Errorf("append on view overwrote neighbour: %v", got)
	}
}

func TestArena_EmptyDependents(t *testing.T) {
	a := New(0)
	row, _ := a.Append(model.NewRecord(4, 4, 1))

	if got := a.Get(row); got.Dependents != nil {
		t.Errorf("expected nil dependents, got %v", got.Dependents)
	}
	if len(a.Dependents(row)) != 0 {
		t.Error("expected empty view")
	}
}

func TestArena_Rows(t *testing.T) {
	a := New(3)
	for i := 1; i <= 3; i++ {
		if _, err := a.Append(model.NewRecord(model.ElementID(i*10), 0, 1, 1)); err != nil {
			t.Fatal(err)
		}
	}

	var ids []model.ElementID
	for row := range a.Rows() {
		ids = append(ids, a.ID(row))
	}
	if !slices.Equal(ids, []model.ElementID{10, 20, 30}) {
		t.Errorf("unexpected order %v", ids)
	}

	if a.Valid(3) {
		t.Error("row 3 should be invalid")
	}
	if !a.Valid(2) {
		t.Error("row 2 should be valid")
	}
}
