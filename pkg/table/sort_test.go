package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numericTotals = map[string]bool{"total": true, "budget_spent": true}

func TestSortNumericDesc(t *testing.T) {

	records := []Record{
		{"field": "A", "total": 10.0, "budget_spent": 95.0},
		{"field": "B", "total": 5.0, "budget_spent": 40.0},
	}

	sorted := Sort{{Column: "total", Desc: true}}.Apply(records, numericTotals)

	require.Len(t, sorted, 2)
	assert.Equal(t, "A", sorted[0].StringValue("field"))
	assert.Equal(t, "B", sorted[1].StringValue("field"))

	// Ascending flips it
	sorted = Sort{{Column: "total"}}.Apply(records, numericTotals)
	assert.Equal(t, "B", sorted[0].StringValue("field"))
}

func TestSortNumericNotLexicographic(t *testing.T) {

	records := []Record{
		{"field": "A", "total": 9.0},
		{"field": "B", "total": 100.0},
	}

	sorted := Sort{{Column: "total"}}.Apply(records, numericTotals)
	assert.Equal(t, "A", sorted[0].StringValue("field")) // 9 < 100, not "9" > "100"
}

func TestSortStability(t *testing.T) {

	records := []Record{
		{"field": "first", "group": "x"},
		{"field": "second", "group": "x"},
		{"field": "third", "group": "x"},
	}

	sorted := Sort{{Column: "group"}}.Apply(records, nil)

	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].StringValue("field"))
	assert.Equal(t, "second", sorted[1].StringValue("field"))
	assert.Equal(t, "third", sorted[2].StringValue("field"))
}

func TestSortDeterminism(t *testing.T) {

	records := []Record{
		{"field": "c", "total": 1.0},
		{"field": "a", "total": 3.0},
		{"field": "b", "total": 3.0},
		{"field": "d", "total": 2.0},
	}

	s := Sort{{Column: "total", Desc: true}, {Column: "field"}}

	first := s.Apply(records, numericTotals)
	second := s.Apply(records, numericTotals)

	assert.Equal(t, first, second)
}

func TestSortMultiKey(t *testing.T) {

	records := []Record{
		{"dataset": "b", "total": 1.0},
		{"dataset": "a", "total": 2.0},
		{"dataset": "a", "total": 1.0},
	}

	sorted := Sort{{Column: "dataset"}, {Column: "total", Desc: true}}.Apply(records, numericTotals)

	assert.Equal(t, 2.0, sorted[0]["total"])
	assert.Equal(t, "a", sorted[0].StringValue("dataset"))
	assert.Equal(t, 1.0, sorted[1]["total"])
	assert.Equal(t, "b", sorted[2].StringValue("dataset"))
}

func TestSortNilPolicy(t *testing.T) {

	records := []Record{
		{"field": "x", "total": 1.0},
		{"field": "y"},
		{"field": "z", "total": nil},
	}

	// Nils first ascending
	sorted := Sort{{Column: "total"}}.Apply(records, numericTotals)
	assert.Equal(t, "y", sorted[0].StringValue("field"))
	assert.Equal(t, "z", sorted[1].StringValue("field"))
	assert.Equal(t, "x", sorted[2].StringValue("field"))

	// Nils last descending, still tied with each other in input order
	sorted = Sort{{Column: "total", Desc: true}}.Apply(records, numericTotals)
	assert.Equal(t, "x", sorted[0].StringValue("field"))
	assert.Equal(t, "y", sorted[1].StringValue("field"))
	assert.Equal(t, "z", sorted[2].StringValue("field"))
}

func TestSortDoesNotMutateCaller(t *testing.T) {

	records := []Record{
		{"field": "b"},
		{"field": "a"},
	}

	_ = Sort{{Column: "field"}}.Apply(records, nil)

	assert.Equal(t, "b", records[0].StringValue("field"))
}

func TestSortToggle(t *testing.T) {

	var s Sort

	s = s.SingleColumn("total")
	assert.Equal(t, Sort{{Column: "total"}}, s)

	// Clicking the same column flips direction
	s = s.SingleColumn("total")
	assert.Equal(t, Sort{{Column: "total", Desc: true}}, s)

	// Clicking another column replaces
	s = s.SingleColumn("field")
	assert.Equal(t, Sort{{Column: "field"}}, s)

	// Shift-click appends
	s = s.ShiftColumn("total")
	assert.Equal(t, Sort{{Column: "field"}, {Column: "total"}}, s)

	// Shift-click on a present column flips it in place
	s = s.ShiftColumn("field")
	assert.Equal(t, Sort{{Column: "field", Desc: true}, {Column: "total"}}, s)
}
