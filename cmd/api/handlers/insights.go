package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/seqdash/seqdash/pkg/datatable"
	"github.com/seqdash/seqdash/pkg/insights"
	"github.com/seqdash/seqdash/pkg/log"
	"github.com/seqdash/seqdash/pkg/session"
	"github.com/seqdash/seqdash/pkg/source"
	"github.com/seqdash/seqdash/pkg/table"
)

const (
	insightsSummaryPath = "/insights/sequencing-groups"
	insightsDetailsPath = "/insights/sequencing-group-details"
)

func InsightsRouter() http.Handler {

	r := chi.NewRouter()

	r.Get("/summary.json", insightsSummaryHandler)
	r.Get("/details.json", insightsDetailsHandler)
	r.Get("/rows.json", insightsRowsHandler)
	r.Get("/options.json", insightsOptionsHandler)
	r.Get("/stats.json", insightsStatsHandler)
	r.Get("/export", insightsExportHandler)

	return r
}

func insightsQuery(r *http.Request, path string) source.Query {

	q := r.URL.Query()

	return source.Query{
		Path: path,
		Selected: map[string][]string{
			"dataset":         q["dataset"],
			"sequencing_type": q["sequencing_type"],
		},
	}
}

func insightsSummaryHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := recordSource.Fetch(r.Context(), insightsQuery(r, insightsSummaryPath))
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := insights.Columns()
	if param := r.URL.Query().Get("columns"); param != "" {
		cols.DecodeParam(param)
	}

	visible := cols.VisibleColumns()

	orderCols := map[string]string{}
	for i, c := range visible {
		orderCols[strconv.Itoa(i)] = c.ID
	}

	filtered := query.GetFilter(cols).Apply(records)
	sorted := query.GetSort(orderCols, insights.ColDataset).Apply(filtered, cols.NumericColumns())

	offset := query.GetOffset()
	length := query.GetLength(session.GetRowsPerPage(r))
	if offset > len(sorted) {
		offset = len(sorted)
	}
	end := offset + length
	if end > len(sorted) {
		end = len(sorted)
	}

	response := datatable.NewDataTablesResponse(query, int64(len(records)), int64(len(sorted)))
	for _, record := range sorted[offset:end] {

		row := make([]interface{}, 0, len(visible)+2)
		for _, c := range visible {
			row = append(row, record.Value(c.ID))
		}
		row = append(row, insights.RowKey(record))
		row = append(row, insights.PercentInLatest(record, insights.ColLatestAnnotate))

		response.AddRow(row)
	}

	returnJSON(w, r, response)
}

// insightsDetailsHandler serves page-based windowing: detail records are
// partitioned by dataset and only the requested page's partition is returned.
func insightsDetailsHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := recordSource.Fetch(r.Context(), insightsQuery(r, insightsDetailsPath))
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := insights.Columns()
	filtered := query.GetFilter(cols).Apply(records)
	sorted := query.GetSort(map[string]string{"0": insights.ColDataset}, insights.ColDataset).Apply(filtered, cols.NumericColumns())

	pages := table.Paginate(sorted, func(rec table.Record) string {
		return rec.StringValue(insights.ColDataset)
	})

	pageIndex, _ := strconv.Atoi(r.URL.Query().Get("page"))

	returnJSON(w, r, map[string]interface{}{
		"totalPages": pages.TotalPages(),
		"keys":       pages.Keys(),
		"page":       pageIndex,
		"records":    pages.Page(pageIndex),
	})
}

// insightsRowsHandler serves scroll-offset windowing for the virtualized
// details grid: materialized rows plus spacer sizes either side.
func insightsRowsHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := recordSource.Fetch(r.Context(), insightsQuery(r, insightsDetailsPath))
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := insights.Columns()
	filtered := query.GetFilter(cols).Apply(records)
	sorted := query.GetSort(map[string]string{"0": insights.ColDataset}, insights.ColDataset).Apply(filtered, cols.NumericColumns())

	q := r.URL.Query()

	rowHeight, _ := strconv.Atoi(q.Get("row_height"))
	if rowHeight <= 0 {
		rowHeight = 40
	}

	visibleRows, _ := strconv.Atoi(q.Get("visible_rows"))
	if visibleRows <= 0 {
		visibleRows = 25
	}

	scroll, _ := strconv.Atoi(q.Get("scroll"))

	window := table.ScrollWindow{RowHeight: rowHeight, VisibleRows: visibleRows, Buffer: 5}
	slice := window.Slice(len(sorted), scroll)

	returnJSON(w, r, map[string]interface{}{
		"total":        len(sorted),
		"spacerBefore": slice.SpacerBefore(rowHeight),
		"spacerAfter":  slice.SpacerAfter(rowHeight),
		"start":        slice.Start,
		"records":      slice.Materialize(sorted),
	})
}

func insightsOptionsHandler(w http.ResponseWriter, r *http.Request) {

	col := r.URL.Query().Get("column")
	if col == "" {
		http.Error(w, "missing column", http.StatusBadRequest)
		return
	}

	query := datatable.NewDataTableQuery(r)

	records, err := recordSource.Fetch(r.Context(), insightsQuery(r, insightsSummaryPath))
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	options := query.GetFilter(insights.Columns()).Options(records, col)

	returnJSON(w, r, map[string]interface{}{"column": col, "options": options})
}

func insightsStatsHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := recordSource.Fetch(r.Context(), insightsQuery(r, insightsSummaryPath))
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	filtered := query.GetFilter(insights.Columns()).Apply(records)

	returnJSON(w, r, map[string]interface{}{
		"sequencingGroups": insights.SummariseColumn(filtered, insights.ColSGCount),
		"crams":            insights.SummariseColumn(filtered, insights.ColCRAMCount),
	})
}

func insightsExportHandler(w http.ResponseWriter, r *http.Request) {

	format := table.ExportCSV
	if r.URL.Query().Get("format") == string(table.ExportTSV) {
		format = table.ExportTSV
	}

	query := datatable.NewDataTableQuery(r)

	records, err := recordSource.Fetch(r.Context(), insightsQuery(r, insightsSummaryPath))
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := insights.Columns()
	if param := r.URL.Query().Get("columns"); param != "" {
		cols.DecodeParam(param)
	}

	visible := cols.VisibleColumns()

	orderCols := map[string]string{}
	for i, c := range visible {
		orderCols[strconv.Itoa(i)] = c.ID
	}

	filtered := query.GetFilter(cols).Apply(records)
	sorted := query.GetSort(orderCols, insights.ColDataset).Apply(filtered, cols.NumericColumns())

	out, err := table.Serialize(sorted, visible, format)
	if err != nil {
		log.ErrS(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filename := table.ExportFilename("sequencing-groups", format, time.Now())

	setHeaders(w, format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	_, err = w.Write([]byte(out))
	if err != nil {
		log.ErrS(err)
	}
}
