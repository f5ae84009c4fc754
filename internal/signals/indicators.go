// Package signals provides technical indicator calculations over newest-first series
package signals

import (
	"github.com/bobmcallan/tickerview/internal/models"
)

// SMA calculates the Simple Moving Average of closes over the most recent
// period bars. When the series is shorter than period, all available bars
// are averaged. Returns 0 for an empty series or non-positive period.
func SMA(series models.Series, period int) float64 {
	if period <= 0 || len(series) == 0 {
		return 0
	}
	if period > len(series) {
		period = len(series)
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += series[i].Close
	}
	return sum / float64(period)
}

// AverageVolume returns the mean volume across the whole series
func AverageVolume(series models.Series) float64 {
	if len(series) == 0 {
		return 0
	}

	var total int64
	for _, b := range series {
		total += b.Volume
	}
	return float64(total) / float64(len(series))
}
