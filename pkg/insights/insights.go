// Package insights models the sequencing-group summary and details pages:
// per-dataset pipeline progress, latest-analysis fields, and cost
// distribution stats.
package insights

import (
	"github.com/montanaflynn/stats"
	"github.com/seqdash/seqdash/pkg/helpers"
	"github.com/seqdash/seqdash/pkg/table"
)

const (
	ColDataset        = "dataset"
	ColSeqType        = "sequencing_type"
	ColSeqTech        = "sequencing_technology"
	ColSGCount        = "total_sgs"
	ColCRAMCount      = "total_crams"
	ColLatestAnnotate = "latest_annotate_dataset"
	ColLatestES       = "latest_es_index"
	ColHasStripy      = "has_stripy"
	ColHasMito        = "has_mito"
	ColPercentAligned = "percent_aligned"
)

// Columns returns the sequencing-group summary table config. Dataset and
// sequencing type identify a row, so neither can be hidden.
func Columns() *table.ColumnSet {

	return table.NewColumnSet([]table.Column{
		{ID: ColDataset, Label: "Dataset", Required: true, Group: "Identity"},
		{ID: ColSeqType, Label: "Sequencing Type", Required: true, Group: "Identity"},
		{ID: ColSeqTech, Label: "Technology", Group: "Identity"},
		{ID: ColSGCount, Label: "Sequencing Groups", Numeric: true, Group: "Counts"},
		{ID: ColCRAMCount, Label: "CRAMs", Numeric: true, Group: "Counts"},
		{ID: ColPercentAligned, Label: "% Aligned", Numeric: true, Group: "Counts"},
		{ID: ColLatestAnnotate, Label: "Latest AnnotateDataset", Group: "Analyses"},
		{ID: ColLatestES, Label: "Latest ES Index", Group: "Analyses"},
		{ID: ColHasStripy, Label: "Stripy Report", Group: "Reports"},
		{ID: ColHasMito, Label: "Mito Report", Group: "Reports"},
	}, ColSeqTech, ColSGCount, ColCRAMCount, ColPercentAligned)
}

// RowKey is the derived identity of a summary row: there is no stable primary
// key across fetches, so dataset + sequencing type stands in for one.
func RowKey(r table.Record) string {
	return r.StringValue(ColDataset) + "/" + r.StringValue(ColSeqType)
}

// PercentInLatest computes how much of a row's sequencing groups made it into
// the latest analysis. A missing latest-analysis object degrades to 0 rather
// than erroring.
func PercentInLatest(r table.Record, analysisCol string) float64 {

	total, _ := r.NumericValue(ColSGCount)
	inLatest := r.NestedFloat(analysisCol, "sg_count")

	return helpers.RoundFloatTo2DP(helpers.Percent(inLatest, total))
}

// CostStats summarises a numeric column's distribution across records.
type CostStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
	Max    float64 `json:"max"`
}

func SummariseColumn(records []table.Record, col string) (cs CostStats) {

	var vals []float64
	for _, r := range records {
		if v, ok := r.NumericValue(col); ok {
			vals = append(vals, v)
		}
	}

	if len(vals) == 0 {
		return cs
	}

	cs.Mean, _ = stats.Mean(vals)
	cs.Median, _ = stats.Median(vals)
	cs.P90, _ = stats.Percentile(vals, 90)
	cs.Max, _ = stats.Max(vals)

	cs.Mean = helpers.RoundFloatTo2DP(cs.Mean)
	cs.Median = helpers.RoundFloatTo2DP(cs.Median)
	cs.P90 = helpers.RoundFloatTo2DP(cs.P90)
	cs.Max = helpers.RoundFloatTo2DP(cs.Max)

	return cs
}
