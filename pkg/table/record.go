package table

import (
	"strconv"
)

// Record is one row of fetched data, keyed by column ID. Values are whatever
// the upstream JSON decoded to: string, float64, bool, nil, or a small nested
// map for things like latest-analysis summaries. Records are never mutated
// after a fetch; a new fetch replaces the whole set.
type Record map[string]interface{}

// Link is a cell that displays as text but exports as its target URL.
type Link struct {
	Text string
	URL  string
}

func (r Record) Value(col string) interface{} {
	return r[col]
}

// StringValue coerces a cell to the string domain used by filtering and
// sorting. Booleans map to Yes/No so they line up with filter dropdowns.
func (r Record) StringValue(col string) string {
	return stringValue(r[col])
}

func stringValue(val interface{}) string {

	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case Link:
		return v.Text
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// NumericValue returns the cell as a float, with ok=false for nil, missing
// and non-numeric cells.
func (r Record) NumericValue(col string) (f float64, ok bool) {

	switch v := r[col].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Nested digs one level into a nested cell, defaulting to zero values rather
// than erroring when the object or key is missing.
func (r Record) Nested(col string, key string) interface{} {

	m, ok := r[col].(map[string]interface{})
	if !ok {
		return nil
	}

	return m[key]
}

func (r Record) NestedFloat(col string, key string) float64 {

	f, _ := toFloat(r.Nested(col, key))
	return f
}

func toFloat(val interface{}) (f float64, ok bool) {

	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
