// Package billing models the cost-by-project dashboard pages: column
// configs, budget classification, and invoice-month date windows.
package billing

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/seqdash/seqdash/pkg/table"
)

const (
	ColProject     = "field"
	ColTopic       = "topic"
	ColCostCat     = "cost_category"
	ColDay         = "day"
	ColTotal       = "total"
	ColBudget      = "budget"
	ColBudgetSpent = "budget_spent"
	ColInvoiceURL  = "invoice_url"
)

const (
	ClassOverBudget  = "over-budget"
	ClassHalfBudget  = "half-budget"
	ClassUnderBudget = "under-budget"
)

// Columns returns the cost-by-project table config. Project and total cannot
// be hidden.
func Columns() *table.ColumnSet {

	return table.NewColumnSet([]table.Column{
		{ID: ColProject, Label: "Project", Required: true, Group: "General"},
		{ID: ColTopic, Label: "Topic", Group: "General"},
		{ID: ColCostCat, Label: "Cost Category", Group: "General"},
		{ID: ColDay, Label: "Day", Group: "General"},
		{ID: ColTotal, Label: "Total Cost", Required: true, Numeric: true, Group: "Cost"},
		{ID: ColBudget, Label: "Budget", Numeric: true, Group: "Cost"},
		{ID: ColBudgetSpent, Label: "Budget Spent %", Numeric: true, Group: "Cost"},
		{ID: ColInvoiceURL, Label: "Invoice", Group: "General"},
	}, ColTopic, ColBudgetSpent)
}

// Normalise turns raw upstream cells into their table forms: invoice URLs
// become links so they display as text but export as the URL. Records are
// copied, not mutated.
func Normalise(records []table.Record) (out []table.Record) {

	out = make([]table.Record, 0, len(records))

	for _, r := range records {

		url, ok := r[ColInvoiceURL].(string)
		if !ok || url == "" {
			out = append(out, r)
			continue
		}

		copied := table.Record{}
		for k, v := range r {
			copied[k] = v
		}
		copied[ColInvoiceURL] = table.Link{Text: "Invoice", URL: url}

		out = append(out, copied)
	}

	return out
}

// Classify buckets a record by how much of its budget is spent, for row
// colouring: >90% over, >50% half, else under.
func Classify(r table.Record) string {

	spent, _ := r.NumericValue(ColBudgetSpent)

	switch {
	case spent > 90:
		return ClassOverBudget
	case spent > 50:
		return ClassHalfBudget
	default:
		return ClassUnderBudget
	}
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// InvoiceMonth returns the [start, end) range for the invoice month
// containing t.
func InvoiceMonth(t time.Time) DateRange {

	n := now.With(t)

	return DateRange{
		Start: n.BeginningOfMonth(),
		End:   n.EndOfMonth().Add(time.Nanosecond), // Exclusive end
	}
}

// LastNDays returns the [start, end) range covering the n days up to and
// including today.
func LastNDays(t time.Time, n int) DateRange {

	end := now.With(t).EndOfDay().Add(time.Nanosecond)

	return DateRange{
		Start: end.AddDate(0, 0, -n),
		End:   end,
	}
}

func (d DateRange) StartParam() string {
	return d.Start.Format("2006-01-02")
}

func (d DateRange) EndParam() string {
	return d.End.Format("2006-01-02")
}
