package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{"dataset": "acute-care", "sequencing_type": "genome", "has_stripy": true, "total": 10.0},
		{"dataset": "acute-care", "sequencing_type": "exome", "has_stripy": false, "total": 5.0},
		{"dataset": "seqr", "sequencing_type": "genome", "has_stripy": true, "total": 7.0},
		{"dataset": "seqr", "sequencing_type": "transcriptome", "has_stripy": false, "total": 2.0},
	}
}

func TestFilterApply(t *testing.T) {

	records := testRecords()

	// No active filters accepts everything
	assert.Len(t, Filter{}.Apply(records), 4)
	assert.Len(t, Filter{"dataset": {}}.Apply(records), 4)

	// OR within a column
	f := Filter{"sequencing_type": {"genome", "exome"}}
	assert.Len(t, f.Apply(records), 3)

	// AND across columns
	f = Filter{"dataset": {"acute-care"}, "sequencing_type": {"genome"}}
	filtered := f.Apply(records)
	require.Len(t, filtered, 1)
	assert.Equal(t, "acute-care", filtered[0].StringValue("dataset"))

	// A column no record carries coerces to "" and never matches a value set
	f = Filter{"nope": {"x"}}
	assert.Len(t, f.Apply(records), 0)
}

func TestFilterBooleanNormalisation(t *testing.T) {

	records := testRecords()

	f := Filter{"has_stripy": {"Yes"}}
	assert.Len(t, f.Apply(records), 2)

	f = Filter{"has_stripy": {"No"}}
	assert.Len(t, f.Apply(records), 2)
}

func TestFilterIdempotence(t *testing.T) {

	records := testRecords()

	f := Filter{"dataset": {"seqr"}}

	once := f.Apply(records)
	twice := f.Apply(once)

	assert.Equal(t, once, twice)
}

func TestFilterMonotonicity(t *testing.T) {

	records := testRecords()

	f1 := Filter{"dataset": {"acute-care", "seqr"}}
	f2 := f1.With("sequencing_type", "genome")

	wide := f1.Apply(records)
	narrow := f2.Apply(records)

	assert.True(t, len(narrow) <= len(wide))

	for _, r := range narrow {
		assert.Contains(t, wide, r)
	}
}

func TestFilterOptions(t *testing.T) {

	records := testRecords()

	// No other filters: all distinct values, sorted
	opts := Filter{}.Options(records, "sequencing_type")
	assert.Equal(t, []string{"exome", "genome", "transcriptome"}, opts)

	// The column's own filter is excluded from the context
	f := Filter{"sequencing_type": {"genome"}, "dataset": {"seqr"}}
	opts = f.Options(records, "sequencing_type")
	assert.Equal(t, []string{"genome", "transcriptome"}, opts)

	// Choosing a dataset narrows what sequencing types are offered
	f = Filter{"dataset": {"acute-care"}}
	opts = f.Options(records, "sequencing_type")
	assert.Equal(t, []string{"exome", "genome"}, opts)

	// Boolean columns offer their Yes/No domain
	opts = Filter{}.Options(records, "has_stripy")
	assert.Equal(t, []string{"No", "Yes"}, opts)
}

func TestFilterWith(t *testing.T) {

	f := Filter{"a": {"1"}}

	f2 := f.With("b", "2")
	assert.Len(t, f, 1) // Original untouched
	assert.Len(t, f2, 2)

	f3 := f2.Without("a")
	assert.False(t, f3.IsEmpty())
	assert.True(t, f3.Without("b").IsEmpty())
}
