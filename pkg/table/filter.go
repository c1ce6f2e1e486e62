package table

import (
	"sort"
)

// Filter maps a column ID to the set of accepted values for that column.
// An absent column, or a column with no values, accepts everything.
type Filter map[string][]string

func (f Filter) IsEmpty() bool {
	return !f.hasActive()
}

func (f Filter) hasActive() bool {

	for _, vals := range f {
		if len(vals) > 0 {
			return true
		}
	}

	return false
}

// With returns a copy with the given column's accepted values replaced.
// Passing no values clears the column's filter.
func (f Filter) With(col string, vals ...string) Filter {

	out := Filter{}
	for k, v := range f {
		out[k] = v
	}

	if len(vals) == 0 {
		delete(out, col)
	} else {
		out[col] = vals
	}

	return out
}

// Without returns a copy with the given column's filter removed.
func (f Filter) Without(col string) Filter {
	return f.With(col)
}

// Match tests one record: AND across columns, OR within a column's values.
func (f Filter) Match(r Record) bool {

	for col, accepted := range f {

		if len(accepted) == 0 {
			continue
		}

		val := r.StringValue(col)

		var hit bool
		for _, v := range accepted {
			if v == val {
				hit = true
				break
			}
		}

		if !hit {
			return false
		}
	}

	return true
}

// Apply returns the records passing every active column filter. The input
// slice is not modified.
func (f Filter) Apply(records []Record) (out []Record) {

	if !f.hasActive() {
		return records
	}

	out = make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}

	return out
}

// Options returns the distinct values offered for a column's filter dropdown,
// computed against all *other* active filters so that choosing a value in one
// column narrows what the others offer. Sorted lexicographically.
func (f Filter) Options(records []Record, col string) (out []string) {

	others := f.Without(col)

	seen := map[string]bool{}
	for _, r := range others.Apply(records) {

		val := r.StringValue(col)
		if !seen[val] {
			seen[val] = true
			out = append(out, val)
		}
	}

	sort.Strings(out)

	return out
}
