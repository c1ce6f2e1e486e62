package billing

import (
	"sort"

	"github.com/seqdash/seqdash/pkg/helpers"
	"github.com/seqdash/seqdash/pkg/table"
)

// SeriesPoint is one (day, value) sample in a chart series.
type SeriesPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// Series is one band of a stacked-area chart.
type Series struct {
	Key    string        `json:"key"`
	Points []SeriesPoint `json:"points"`
}

// StackedSeries groups records by a key column and sums the total column per
// day, producing one series per key. Days missing from a key are filled with
// zero so the bands stack cleanly. Keys and days are sorted.
func StackedSeries(records []table.Record, keyCol string, cumulative bool) []Series {

	sums := map[string]map[string]float64{}
	daySet := map[string]bool{}

	for _, r := range records {

		key := r.StringValue(keyCol)
		day := r.StringValue(ColDay)
		total, _ := r.NumericValue(ColTotal)

		if sums[key] == nil {
			sums[key] = map[string]float64{}
		}

		sums[key][day] += total
		daySet[day] = true
	}

	var days []string
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	var keys []string
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Series, 0, len(keys))
	for _, key := range keys {

		s := Series{Key: key, Points: make([]SeriesPoint, 0, len(days))}

		var running float64
		for _, day := range days {

			val := sums[key][day]
			if cumulative {
				running += val
				val = running
			}

			s.Points = append(s.Points, SeriesPoint{Day: day, Value: val})
		}

		out = append(out, s)
	}

	return out
}

// Share is one slice of a proportional breakdown chart.
type Share struct {
	Key     string  `json:"key"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Display string  `json:"display"` // Money-formatted value for tooltips
}

// Breakdown sums the total column per key and computes each key's share of
// the grand total. A zero grand total yields zero percentages, not NaN.
func Breakdown(records []table.Record, keyCol string) []Share {

	sums := map[string]float64{}
	var grand float64

	for _, r := range records {

		total, _ := r.NumericValue(ColTotal)
		sums[r.StringValue(keyCol)] += total
		grand += total
	}

	var keys []string
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Share, 0, len(keys))
	for _, key := range keys {
		out = append(out, Share{
			Key:     key,
			Value:   sums[key],
			Percent: helpers.RoundFloatTo2DP(helpers.Percent(sums[key], grand)),
			Display: helpers.CurrencyFormat(sums[key]),
		})
	}

	// Largest slice first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})

	return out
}
