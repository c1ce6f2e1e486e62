package helpers

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

func RoundFloatTo2DP(f float64) float64 {
	return math.Round(f*100) / 100
}

func FloatToString(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// Percent guards against a zero denominator, returning 0 instead of NaN/Inf.
func Percent(part float64, total float64) float64 {

	if total == 0 {
		return 0
	}

	return part / total * 100
}

func CurrencyFormat(f float64) string {
	return "$" + humanize.CommafWithDigits(f, 2)
}
