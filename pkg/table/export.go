package table

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"
)

type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportTSV ExportFormat = "tsv"
)

func (f ExportFormat) Delimiter() rune {
	if f == ExportTSV {
		return '\t'
	}
	return ','
}

func (f ExportFormat) ContentType() string {
	if f == ExportTSV {
		return "text/tab-separated-values"
	}
	return "text/csv"
}

// Serialize renders the filtered/sorted records as delimited text: a header
// row of visible column labels, then one row per record in the same column
// order. Cells embedding delimiters, quotes or newlines are quoted per
// RFC 4180.
func Serialize(records []Record, columns []Column, format ExportFormat) (string, error) {

	buf := &bytes.Buffer{}

	writer := csv.NewWriter(buf)
	writer.Comma = format.Delimiter()

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Label
	}

	err := writer.Write(header)
	if err != nil {
		return "", err
	}

	row := make([]string, len(columns))
	for _, r := range records {

		for i, c := range columns {
			row[i] = exportValue(r.Value(c.ID))
		}

		err = writer.Write(row)
		if err != nil {
			return "", err
		}
	}

	writer.Flush()

	return buf.String(), writer.Error()
}

// exportValue differs from the display domain: booleans become TRUE/FALSE
// markers and links become their target URL.
func exportValue(val interface{}) string {

	switch v := val.(type) {
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case Link:
		return v.URL
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return stringValue(val)
	}
}

// ExportFilename builds `<dataset>_<ISO-timestamp>.<ext>` for the download.
func ExportFilename(dataset string, format ExportFormat, at time.Time) string {
	return dataset + "_" + at.UTC().Format("2006-01-02T15-04-05") + "." + string(format)
}
