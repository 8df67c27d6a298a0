package bitmap

import (
	"slices"
	"testing"

	"github.com/hupe1980/rbestore/index"
	"github.com/hupe1980/rbestore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Scenario(t *testing.T) {
	ix, err := Build(slices.Values([]model.Record{
		model.NewRecord(1, 1, 123, 10, 11, 12),
		model.NewRecord(2, 2, 3, 14, 12),
		model.NewRecord(3, 3, 123, 15, 11, 14),
	}))
	require.NoError(t, err)

	rec, err := ix.LookupByID(2)
	require.NoError(t, err)
	assert.Equal(t, model.NewRecord(2, 2, 3, 14, 12), rec)

	got := ix.LookupByNode(12)
	require.Len(t, got, 2)
	assert.Equal(t, model.ElementID(1), got[0].ID)
	assert.Equal(t, model.ElementID(2), got[1].ID)

	assert.Empty(t, ix.LookupByNode(99))

	s := ix.Stats()
	assert.Equal(t, 3, s.Records)
	assert.Equal(t, 5, s.Nodes)
	assert.Equal(t, 8, s.Postings)
	assert.Positive(t, s.PostingBytes)
}

// Repeated dependents collapse at build time.
func TestIndex_DuplicateDependentFanOut(t *testing.T) {
	ix, err := Build(slices.Values([]model.Record{
		model.NewRecord(1, 1, 123, 10, 10, 11),
	}))
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Stats().Postings)
	require.Len(t, ix.LookupByNode(10), 1)
}

func TestIndex_Duplicate(t *testing.T) {
	ix, err := Builder(slices.Values([]model.Record{
		model.NewRecord(5, 1, 123, 10),
		model.NewRecord(5, 1, 123, 10),
	}))
	assert.Nil(t, ix)
	assert.ErrorIs(t, err, index.ErrDuplicateID)
}
