package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/seqdash/seqdash/pkg/billing"
	"github.com/seqdash/seqdash/pkg/datatable"
	"github.com/seqdash/seqdash/pkg/log"
	"github.com/seqdash/seqdash/pkg/source"
	"github.com/seqdash/seqdash/pkg/table"
)

const billingPath = "/billing/cost-by-project"

func BillingRouter() http.Handler {

	r := chi.NewRouter()

	r.Get("/costs.json", billingCostsHandler)
	r.Get("/options.json", billingOptionsHandler)
	r.Get("/series.json", billingSeriesHandler)
	r.Get("/breakdown.json", billingBreakdownHandler)
	r.Get("/export", billingExportHandler)

	return r
}

// billingDateRange reads the date window from the URL: an explicit start/end
// pair, an invoice month, or the default of the last 30 days.
func billingDateRange(r *http.Request) billing.DateRange {

	q := r.URL.Query()

	if start, end := q.Get("start"), q.Get("end"); start != "" && end != "" {

		s, err1 := time.Parse("2006-01-02", start)
		e, err2 := time.Parse("2006-01-02", end)
		if err1 == nil && err2 == nil {
			return billing.DateRange{Start: s, End: e}
		}
	}

	if month := q.Get("month"); month != "" {

		m, err := time.Parse("2006-01", month)
		if err == nil {
			return billing.InvoiceMonth(m)
		}
	}

	return billing.LastNDays(time.Now(), 30)
}

func billingSourceQuery(r *http.Request) source.Query {

	dates := billingDateRange(r)

	return source.Query{
		Path:    billingPath,
		Start:   dates.StartParam(),
		End:     dates.EndParam(),
		GroupBy: r.URL.Query().Get("group_by"),
	}
}

// billingRecords fetches and normalises the record set for the current view.
func billingRecords(r *http.Request) ([]table.Record, error) {

	records, err := recordSource.Fetch(r.Context(), billingSourceQuery(r))
	if err != nil {
		return nil, err
	}

	return billing.Normalise(records), nil
}

func billingCostsHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := billingRecords(r)
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := billing.Columns()
	if param := r.URL.Query().Get("columns"); param != "" {
		cols.DecodeParam(param)
	}

	visible := cols.VisibleColumns()

	orderCols := map[string]string{}
	for i, c := range visible {
		orderCols[strconv.Itoa(i)] = c.ID
	}

	filtered := query.GetFilter(cols).Apply(records)
	sorted := query.GetSort(orderCols, billing.ColTotal).Apply(filtered, cols.NumericColumns())

	// Window
	offset := query.GetOffset()
	length := query.GetLength(100)
	if offset > len(sorted) {
		offset = len(sorted)
	}
	end := offset + length
	if end > len(sorted) {
		end = len(sorted)
	}

	response := datatable.NewDataTablesResponse(query, int64(len(records)), int64(len(sorted)))
	for _, record := range sorted[offset:end] {

		row := make([]interface{}, 0, len(visible)+1)
		for _, c := range visible {
			row = append(row, record.Value(c.ID))
		}
		row = append(row, billing.Classify(record))

		response.AddRow(row)
	}

	returnJSON(w, r, response)
}

// billingOptionsHandler powers dependent filter dropdowns: the offered values
// for a column respect every other active filter.
func billingOptionsHandler(w http.ResponseWriter, r *http.Request) {

	col := r.URL.Query().Get("column")
	if col == "" {
		http.Error(w, "missing column", http.StatusBadRequest)
		return
	}

	query := datatable.NewDataTableQuery(r)

	records, err := billingRecords(r)
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := billing.Columns()
	options := query.GetFilter(cols).Options(records, col)

	returnJSON(w, r, map[string]interface{}{"column": col, "options": options})
}

func billingSeriesHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := billingRecords(r)
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	groupBy := r.URL.Query().Get("group_by")
	if groupBy == "" {
		groupBy = billing.ColProject
	}

	filtered := query.GetFilter(billing.Columns()).Apply(records)
	cumulative := r.URL.Query().Get("cumulative") == "1"

	returnJSON(w, r, billing.StackedSeries(filtered, groupBy, cumulative))
}

func billingBreakdownHandler(w http.ResponseWriter, r *http.Request) {

	query := datatable.NewDataTableQuery(r)

	records, err := billingRecords(r)
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	groupBy := r.URL.Query().Get("group_by")
	if groupBy == "" {
		groupBy = billing.ColProject
	}

	filtered := query.GetFilter(billing.Columns()).Apply(records)

	returnJSON(w, r, billing.Breakdown(filtered, groupBy))
}

// billingExportHandler downloads the full filtered/sorted set, not just the
// current window, serialized from the data model rather than anything
// rendered.
func billingExportHandler(w http.ResponseWriter, r *http.Request) {

	format := table.ExportCSV
	if r.URL.Query().Get("format") == string(table.ExportTSV) {
		format = table.ExportTSV
	}

	query := datatable.NewDataTableQuery(r)

	records, err := billingRecords(r)
	if err != nil {
		returnFetchError(w, r, err)
		return
	}

	cols := billing.Columns()
	if param := r.URL.Query().Get("columns"); param != "" {
		cols.DecodeParam(param)
	}

	visible := cols.VisibleColumns()

	orderCols := map[string]string{}
	for i, c := range visible {
		orderCols[strconv.Itoa(i)] = c.ID
	}

	filtered := query.GetFilter(cols).Apply(records)
	sorted := query.GetSort(orderCols, billing.ColTotal).Apply(filtered, cols.NumericColumns())

	out, err := table.Serialize(sorted, visible, format)
	if err != nil {
		log.ErrS(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filename := table.ExportFilename("billing-costs", format, time.Now())

	setHeaders(w, format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	_, err = w.Write([]byte(out))
	if err != nil {
		log.ErrS(err)
	}
}
