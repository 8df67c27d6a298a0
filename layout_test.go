package rbestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Names(t *testing.T) {
	for _, l := range Layouts() {
		parsed, err := ParseLayout(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}

	l, err := ParseLayout("LongTable")
	require.NoError(t, err)
	assert.Equal(t, LayoutLongTable, l)

	_, err = ParseLayout("btree")
	assert.EqualError(t, err, `unknown layout: "btree"`)

	assert.Equal(t, "unknown", Layout(-1).String())
}

func TestLayout_Text(t *testing.T) {
	text, err := LayoutBitmap.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "bitmap", string(text))

	var l Layout
	require.NoError(t, l.UnmarshalText([]byte("primary")))
	assert.Equal(t, LayoutPrimary, l)

	assert.Error(t, l.UnmarshalText([]byte("nope")))
	assert.Equal(t, LayoutPrimary, l)

	_, err = Layout(9).MarshalText()
	assert.Error(t, err)
}
