package datatable

func NewDataTablesResponse(query DataTablesQuery, count int64, countFiltered int64) (ret *DataTablesResponse) {

	ret = &DataTablesResponse{}
	ret.Draw = query.Draw
	ret.Data = make([][]interface{}, 0)
	ret.RecordsTotal = count
	ret.RecordsFiltered = countFiltered

	return ret
}

// DataTablesResponse
type DataTablesResponse struct {
	Draw            string          `json:"draw"`
	RecordsTotal    int64           `json:"recordsTotal,string"`
	RecordsFiltered int64           `json:"recordsFiltered,string"`
	Data            [][]interface{} `json:"data"`
}

func (t *DataTablesResponse) AddRow(row []interface{}) {
	t.Data = append(t.Data, row)
}
