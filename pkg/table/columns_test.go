package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() *ColumnSet {
	return NewColumnSet([]Column{
		{ID: "x", Label: "X Col", Required: true, Group: "Identity"},
		{ID: "y", Label: "Y Col", Group: "Counts"},
		{ID: "z", Label: "Z Col", Numeric: true, Group: "Counts"},
	})
}

func TestColumnVisibility(t *testing.T) {

	cs := testColumns()

	// Required columns are visible with an empty set
	assert.True(t, cs.IsVisible("x"))
	assert.False(t, cs.IsVisible("y"))

	cs.Toggle("y")
	assert.True(t, cs.IsVisible("y"))

	cs.Toggle("y")
	assert.False(t, cs.IsVisible("y"))

	// Toggling a required column is a no-op
	cs.Toggle("x")
	assert.True(t, cs.IsVisible("x"))

	// Unknown columns are never visible and never error
	cs.Toggle("nope")
	assert.False(t, cs.IsVisible("nope"))
}

func TestColumnToggleGroupAndAll(t *testing.T) {

	cs := testColumns()

	cs.ToggleGroup([]string{"x", "y", "z", "nope"}, true)
	assert.True(t, cs.IsVisible("y"))
	assert.True(t, cs.IsVisible("z"))

	cs.ToggleAll(false)
	assert.False(t, cs.IsVisible("y"))
	assert.False(t, cs.IsVisible("z"))
	assert.True(t, cs.IsVisible("x")) // Required survives hide-all

	cs.ToggleAll(true)
	assert.True(t, cs.IsVisible("y"))
}

func TestColumnVisibleOrder(t *testing.T) {

	cs := testColumns()
	cs.Toggle("z")
	cs.Toggle("y")

	// Config order, not toggle order
	visible := cs.VisibleColumns()
	require.Len(t, visible, 3)
	assert.Equal(t, "x", visible[0].ID)
	assert.Equal(t, "y", visible[1].ID)
	assert.Equal(t, "z", visible[2].ID)
}

func TestColumnParamRoundTrip(t *testing.T) {

	cs := testColumns()
	cs.Toggle("z")
	cs.Toggle("y")

	assert.Equal(t, "y,z", cs.EncodeParam())

	// Stale IDs from an old URL are dropped silently
	cs2 := testColumns()
	cs2.DecodeParam("z,removed-col,y")
	assert.True(t, cs2.IsVisible("y"))
	assert.True(t, cs2.IsVisible("z"))
	assert.Equal(t, "y,z", cs2.EncodeParam())

	// Required IDs are implied, not encoded
	cs3 := testColumns()
	cs3.DecodeParam("x")
	assert.Equal(t, "", cs3.EncodeParam())
	assert.True(t, cs3.IsVisible("x"))
}

func TestColumnSearch(t *testing.T) {

	cs := testColumns()

	assert.Len(t, cs.SearchColumns(""), 3)
	assert.Len(t, cs.SearchColumns("y col"), 1)
	assert.Len(t, cs.SearchColumns("counts"), 2) // Group label matches too
	assert.Len(t, cs.SearchColumns("zzz"), 0)

	// Search narrows the picker only; visibility is untouched
	assert.False(t, cs.IsVisible("y"))
}
