package table

import (
	"sort"
	"strings"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type SortField struct {
	Column string
	Desc   bool
}

// Sort is an ordered list of (column, direction) pairs. A column appears at
// most once.
type Sort []SortField

// SingleColumn replaces the whole sort with one column, flipping direction
// when that column was already the primary key.
func (s Sort) SingleColumn(col string) Sort {

	if len(s) > 0 && s[0].Column == col {
		return Sort{{Column: col, Desc: !s[0].Desc}}
	}

	return Sort{{Column: col}}
}

// ShiftColumn appends a column to a multi-column sort, or flips its direction
// when already present.
func (s Sort) ShiftColumn(col string) Sort {

	out := make(Sort, len(s))
	copy(out, s)

	for i, f := range out {
		if f.Column == col {
			out[i].Desc = !f.Desc
			return out
		}
	}

	return append(out, SortField{Column: col})
}

// Apply orders the records by walking the sort fields until two records
// differ. The sort is stable: fully tied records keep their fetch order. The
// caller's slice is not modified.
//
// Nil and missing cells order before every non-nil value ascending (after,
// descending); two nil cells tie.
func (s Sort) Apply(records []Record, numeric map[string]bool) []Record {

	if len(s) == 0 {
		return records
	}

	out := make([]Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {

		for _, field := range s {

			c := compareField(out[i], out[j], field.Column, numeric[field.Column])
			if c == 0 {
				continue
			}

			if field.Desc {
				return c > 0
			}
			return c < 0
		}

		return false
	})

	return out
}

func compareField(a Record, b Record, col string, numeric bool) int {

	aNil := a.Value(col) == nil
	bNil := b.Value(col) == nil

	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	if numeric {

		af, aOK := a.NumericValue(col)
		bf, bOK := b.NumericValue(col)

		if aOK && bOK {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	as := a.StringValue(col)
	bs := b.StringValue(col)

	if c := strings.Compare(strings.ToLower(as), strings.ToLower(bs)); c != 0 {
		return c
	}

	return strings.Compare(as, bs)
}
