package rbestore

import (
	"testing"

	"github.com/hupe1980/rbestore/model"
	"github.com/hupe1980/rbestore/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	s, err := BuildSlice(testutil.Scenario(), WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, _ = s.LookupByID(1)
	_, _ = s.LookupByID(99)
	s.LookupByIDs([]model.ElementID{1, 2})
	s.LookupByNode(12)
	s.LookupByNode(99)

	_, err = BuildSlice(append(testutil.Scenario(), testutil.Scenario()[2]), WithMetricsCollector(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BuildCount)
	assert.Equal(t, int64(1), stats.BuildErrors)
	assert.Equal(t, int64(3), stats.BuildRecords)
	assert.Equal(t, int64(2), stats.ByIDCount)
	assert.Equal(t, int64(1), stats.ByIDMisses)
	assert.Equal(t, int64(1), stats.ByIDsCount)
	assert.Equal(t, int64(2), stats.ByNodeCount)
	assert.Equal(t, int64(1), stats.ByNodeEmpty)
	assert.Equal(t, int64(1+2+2), stats.ResultRecords)
	assert.GreaterOrEqual(t, stats.LookupAvgNanos, int64(0))
}

func TestNoopMetricsCollector(t *testing.T) {
	s, err := BuildSlice(testutil.Scenario(), WithMetricsCollector(nil))
	require.NoError(t, err)
	assert.Len(t, s.LookupByNode(11), 2)
}

func TestLookupKind_String(t *testing.T) {
	assert.Equal(t, "by_id", LookupByID.String())
	assert.Equal(t, "by_ids", LookupByIDs.String())
	assert.Equal(t, "by_node", LookupByNode.String())
	assert.Equal(t, "unknown", LookupKind(9).String())
}
