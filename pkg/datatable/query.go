package datatable

import (
	"net/http"
	"strconv"

	"github.com/derekstavis/go-qs"
	"github.com/seqdash/seqdash/pkg/helpers"
	"github.com/seqdash/seqdash/pkg/log"
	"github.com/seqdash/seqdash/pkg/table"
)

const maxRowsPerDraw = 1000

// DataTablesQuery
func NewDataTableQuery(r *http.Request) (query DataTablesQuery) {

	// Convert string into map
	queryMap, err := qs.Unmarshal(r.URL.Query().Encode())
	if err != nil {
		log.ErrS(err)
		return
	}

	// Convert map into struct
	err = helpers.MarshalUnmarshal(queryMap, &query)
	if err != nil {
		log.ErrS(err)
	}

	return query
}

type DataTablesQuery struct {
	Draw   string                            `json:"draw"`
	Order  map[string]map[string]interface{} `json:"order"`
	Start  string                            `json:"start"`
	Length string                            `json:"length"`
	Search map[string]interface{}            `json:"search"`
}

func (q DataTablesQuery) GetSearchString(k string) (search string) {

	if val, ok := q.Search[k]; ok {
		if val, ok := val.(string); ok {
			return val
		}
	}

	return ""
}

func (q DataTablesQuery) GetSearchSlice(k string) (search []string) {

	if val, ok := q.Search[k]; ok {

		if val, ok := val.([]interface{}); ok {
			for k, v := range val {
				if val2, ok2 := v.(string); ok2 {
					if k < 10 { // Limit to 10 items
						search = append(search, val2)
					}
				}
			}
		}
	}

	return search
}

// GetFilter builds the filter state from the search params, keeping only
// known column IDs.
func (q DataTablesQuery) GetFilter(cols *table.ColumnSet) table.Filter {

	filter := table.Filter{}

	for _, c := range cols.Columns() {

		vals := q.GetSearchSlice(c.ID)

		if len(vals) == 0 {
			if val := q.GetSearchString(c.ID); val != "" {
				vals = []string{val}
			}
		}

		if len(vals) > 0 {
			filter = filter.With(c.ID, vals...)
		}
	}

	return filter
}

// GetSort builds the sort state from the order params. DataTables sends
// column indexes, so callers supply the index -> column ID mapping. Unknown
// columns fall back to the default. A column keeps its first position only.
func (q DataTablesQuery) GetSort(columns map[string]string, defaultCol string) (sort table.Sort) {

	seen := map[string]bool{}

	for i := 0; i < len(q.Order); i++ {

		v, ok := q.Order[strconv.Itoa(i)]
		if !ok {
			continue
		}

		col, _ := v["column"].(string)
		dir, _ := v["dir"].(string)

		id, ok := columns[col]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		sort = append(sort, table.SortField{Column: id, Desc: dir == table.SortDesc})
	}

	if len(sort) == 0 && defaultCol != "" {
		sort = table.Sort{{Column: defaultCol, Desc: true}}
	}

	return sort
}

func (q DataTablesQuery) GetOffset() int {
	i, _ := strconv.Atoi(q.Start)
	if i < 0 {
		i = 0
	}
	return i
}

func (q DataTablesQuery) GetLength(fallback int) int {

	i, _ := strconv.Atoi(q.Length)

	if i <= 0 {
		return fallback
	}
	if i > maxRowsPerDraw {
		return maxRowsPerDraw
	}

	return i
}

func (q DataTablesQuery) GetPage(perPage int) int {

	i, _ := strconv.Atoi(q.Start)

	if i == 0 {
		return 1
	}

	return (i / perPage) + 1
}
