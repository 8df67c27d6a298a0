package rbestore

import (
	"slices"
	"testing"

	"github.com/hupe1980/rbestore/model"
	"github.com/hupe1980/rbestore/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAll(t *testing.T, records []model.Record, optFns ...Option) map[Layout]*Store {
	t.Helper()

	stores := make(map[Layout]*Store, len(Layouts()))
	for _, l := range Layouts() {
		s, err := BuildSlice(records, append([]Option{WithLayout(l)}, optFns...)...)
		require.NoError(t, err, l.String())
		require.Equal(t, l, s.Layout())
		stores[l] = s
	}
	return stores
}

func TestStore_Scenario(t *testing.T) {
	for l, s := range buildAll(t, testutil.Scenario()) {
		t.Run(l.String(), func(t *testing.T) {
			rec, err := s.LookupByID(2)
			require.NoError(t, err)
			assert.Equal(t, model.NewRecord(2, 2, 3, 14, 12), rec)

			got := s.LookupByNode(12)
			assert.ElementsMatch(t, []model.ElementID{1, 2}, testutil.IDs(got))

			assert.Empty(t, s.LookupByNode(99))

			_, err = s.LookupByID(99)
			assert.ErrorIs(t, err, ErrNotFound)

			assert.Equal(t, 3, s.Len())
		})
	}
}

func TestStore_DuplicateID(t *testing.T) {
	records := append(testutil.Scenario(), model.NewRecord(2, 7, 1, 20))

	for _, l := range Layouts() {
		t.Run(l.String(), func(t *testing.T) {
			s, err := BuildSlice(records, WithLayout(l))
			assert.Nil(t, s)

			var dup *DuplicateIDError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, model.ElementID(2), dup.ID)
			assert.ErrorIs(t, err, ErrDuplicateID)
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	records := testutil.NewRNG(4711).RecordSlice(500, testutil.RecordSpec{MaxNode: 60})

	for l, s := range buildAll(t, records) {
		t.Run(l.String(), func(t *testing.T) {
			for _, r := range records {
				got, err := s.LookupByID(r.ID)
				require.NoError(t, err)
				require.True(t, r.Same(got), "%v != %v", r, got)
			}
		})
	}
}

func TestStore_ReverseIndexCompleteness(t *testing.T) {
	records := testutil.NewRNG(99).RecordSlice(300, testutil.RecordSpec{MaxNode: 40, Dependents: 4, Skew: 1.1})
	byID := make(map[model.ElementID]model.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	for l, s := range buildAll(t, records) {
		t.Run(l.String(), func(t *testing.T) {
			// Every (record, dependent) pair is reachable from the node.
			for _, r := range records {
				for _, n := range r.Dependents {
					require.Contains(t, testutil.IDs(s.LookupByNode(n)), r.ID)
				}
			}

			// Every returned record really references the node, once.
			for _, n := range testutil.ReferencedNodes(records) {
				got := s.LookupByNode(n)
				ids := testutil.IDs(got)
				require.Len(t, slices.Compact(slices.Sorted(slices.Values(ids))), len(ids))
				for _, rec := range got {
					require.True(t, byID[rec.ID].References(n))
				}
			}
		})
	}
}

func TestStore_LookupByIDs(t *testing.T) {
	for l, s := range buildAll(t, testutil.Scenario()) {
		t.Run(l.String(), func(t *testing.T) {
			got := s.LookupByIDs([]model.ElementID{3, 42, 1, 3})
			assert.ElementsMatch(t, []model.ElementID{1, 3}, testutil.IDs(got))
			assert.Empty(t, s.LookupByIDs(nil))
			assert.Empty(t, s.LookupByIDs([]model.ElementID{42}))
		})
	}
}

// A record naming the same node twice is returned once by reverse lookups
// in every layout, and keeps its repeated dependents.
func TestStore_DuplicateDependents(t *testing.T) {
	records := []model.Record{
		model.NewRecord(1, 1, 123, 10, 10, 11),
		model.NewRecord(2, 2, 123, 10),
	}

	for l, s := range buildAll(t, records) {
		t.Run(l.String(), func(t *testing.T) {
			got := s.LookupByNode(10)
			require.Len(t, got, 2)
			assert.ElementsMatch(t, []model.ElementID{1, 2}, testutil.IDs(got))

			rec, err := s.LookupByID(1)
			require.NoError(t, err)
			assert.Equal(t, []model.NodeID{10, 10, 11}, rec.Dependents)
		})
	}
}

func TestStore_EmptyDependents(t *testing.T) {
	records := append(testutil.Scenario(), model.NewRecord(4, 4, 1))

	t.Run("lenient", func(t *testing.T) {
		for l, s := range buildAll(t, records) {
			rec, err := s.LookupByID(4)
			require.NoError(t, err, l.String())
			assert.Empty(t, rec.Dependents)
			assert.Equal(t, 4, s.Len())
		}
	})

	t.Run("strict", func(t *testing.T) {
		for _, l := range Layouts() {
			s, err := BuildSlice(records, WithLayout(l), WithStrictDependents(true))
			assert.Nil(t, s)

			var empty *EmptyDependentsError
			require.ErrorAs(t, err, &empty)
			assert.Equal(t, model.ElementID(4), empty.ID)
		}
	})
}

func TestStore_Isolation(t *testing.T) {
	records := testutil.Scenario()
	s, err := BuildSlice(records)
	require.NoError(t, err)

	// Caller mutation after build.
	records[0].Dependents[0] = 999

	rec, err := s.LookupByID(1)
	require.NoError(t, err)
	assert.Equal(t, []model.NodeID{10, 11, 12}, rec.Dependents)

	// Consumer mutation of a result.
	rec.Dependents[0] = 555
	again, err := s.LookupByID(1)
	require.NoError(t, err)
	assert.Equal(t, model.NodeID(10), again.Dependents[0])

	for _, r := range s.LookupByNode(12) {
		r.Dependents[0] = 0
	}
	assert.Len(t, s.LookupByNode(10), 1)
}

func TestBuild_EmptyAndNilSource(t *testing.T) {
	s, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.LookupByNode(1))

	s, err = BuildSlice(nil, WithLayout(LayoutLongTable))
	require.NoError(t, err)
	_, err = s.LookupByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuild_UnknownLayout(t *testing.T) {
	_, err := BuildSlice(testutil.Scenario(), WithLayout(Layout(42)))

	var unknown *ErrUnknownLayout
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown", unknown.Name)
}

func TestBuild_StreamedSource(t *testing.T) {
	rng := testutil.NewRNG(5)

	s, err := Build(rng.Records(1000, testutil.RecordSpec{FirstID: 100}), WithLayout(LayoutBitmap))
	require.NoError(t, err)
	assert.Equal(t, 1000, s.Len())

	_, err = s.LookupByID(100)
	assert.NoError(t, err)
	_, err = s.LookupByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Stats(t *testing.T) {
	stores := buildAll(t, testutil.Scenario())

	assert.Equal(t, 8, stores[LayoutInverted].Stats().Postings)
	assert.Equal(t, 5, stores[LayoutBitmap].Stats().Nodes)
	assert.Equal(t, 0, stores[LayoutPrimary].Stats().Nodes)
	assert.Equal(t, 8, stores[LayoutLongTable].Stats().Rows)
}
