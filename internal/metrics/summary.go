package metrics

import (
	"math"

	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
)

// Summarize computes the scalar statistics for one series: latest close,
// percent change over the range (first to last close in range order,
// independent of gaps), average volume, min/max close, and the volatility of
// daily returns.
//
// It fails with ErrCodeEmptySeries when the series is empty. A single-record
// series has a percent change of zero.
func Summarize(series types.Series) (types.Summary, error) {
	if series.Empty() {
		return types.Summary{}, errors.Newf(errors.ErrCodeEmptySeries, "no data in range for ticker %s", series.Ticker)
	}

	bars := series.Bars
	first := bars[0].Close
	last := bars[len(bars)-1].Close

	minClose := first
	maxClose := first

	var volumeSum int64

	for _, b := range bars {
		if b.Close < minClose {
			minClose = b.Close
		}

		if b.Close > maxClose {
			maxClose = b.Close
		}

		volumeSum += b.Volume
	}

	return types.Summary{
		LatestClose:   last,
		PercentChange: (last - first) / first * 100,
		AvgVolume:     float64(volumeSum) / float64(len(bars)),
		MinClose:      minClose,
		MaxClose:      maxClose,
		Volatility:    volatility(series.Closes()),
	}, nil
}

// volatility is the sample standard deviation of daily percent returns, in
// percent. Fewer than two returns yield zero.
func volatility(closes []float64) float64 {
	if len(closes) < 3 {
		return 0
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}

	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}

	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * 100
}

// Performance computes the normalized return relative to the first close,
// in percent, for multi-ticker comparison charts. Series with fewer than two
// bars produce an empty sequence, mirroring how the comparison chart skips
// tickers it cannot draw a line for.
func Performance(series types.Series) []types.PerformancePoint {
	if series.Len() < 2 {
		return []types.PerformancePoint{}
	}

	first := series.Bars[0].Close

	points := make([]types.PerformancePoint, series.Len())
	for i, b := range series.Bars {
		points[i] = types.PerformancePoint{
			Date: b.Date,
			Pct:  (b.Close/first - 1) * 100,
		}
	}

	return points
}
