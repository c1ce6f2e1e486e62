package table

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeCSV(t *testing.T) {

	records := []Record{
		{"name": "p1", "done": true},
		{"name": "p2", "done": false},
	}

	columns := []Column{
		{ID: "name", Label: "name"},
		{ID: "done", Label: "done"},
	}

	out, err := Serialize(records, columns, ExportCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,done", lines[0])
	assert.Equal(t, "p1,TRUE", lines[1])
	assert.Equal(t, "p2,FALSE", lines[2])
}

func TestSerializeTSV(t *testing.T) {

	records := []Record{{"a": "1", "b": "2"}}
	columns := []Column{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}

	out, err := Serialize(records, columns, ExportTSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "A\tB", lines[0])
	assert.Equal(t, "1\t2", lines[1])
}

func TestSerializeCompleteness(t *testing.T) {

	var records []Record
	for i := 0; i < 25; i++ {
		records = append(records, Record{"a": float64(i), "b": "x", "hidden": "y"})
	}

	columns := []Column{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}

	out, err := Serialize(records, columns, ExportCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 26) // Header + one line per record

	for _, line := range lines {
		assert.Len(t, strings.Split(line, ","), 2) // Only visible columns
	}
}

func TestSerializeQuoting(t *testing.T) {

	records := []Record{
		{"name": `says "hi", sometimes`, "note": "line\nbreak"},
	}
	columns := []Column{{ID: "name", Label: "name"}, {ID: "note", Label: "note"}}

	out, err := Serialize(records, columns, ExportCSV)
	require.NoError(t, err)

	assert.Contains(t, out, `"says ""hi"", sometimes"`)
	assert.Contains(t, out, "\"line\nbreak\"")
}

func TestSerializeLinksAndNils(t *testing.T) {

	records := []Record{
		{"invoice": Link{Text: "Invoice", URL: "https://example.com/inv/1"}, "missing": nil},
	}
	columns := []Column{{ID: "invoice", Label: "Invoice"}, {ID: "missing", Label: "Missing"}}

	out, err := Serialize(records, columns, ExportCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "https://example.com/inv/1,", lines[1])
}

func TestExportFilename(t *testing.T) {

	at := time.Date(2026, 8, 31, 9, 30, 1, 0, time.UTC)

	assert.Equal(t, "billing-costs_2026-08-31T09-30-01.csv", ExportFilename("billing-costs", ExportCSV, at))
	assert.Equal(t, "sgs_2026-08-31T09-30-01.tsv", ExportFilename("sgs", ExportTSV, at))
}
