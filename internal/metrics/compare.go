package metrics

import (
	"github.com/moznion/go-optional"

	"github.com/ShafqaatMalik/financial-data-project/internal/types"
)

// Compare applies RollingAverage and Summarize independently to each
// ticker's series. Failures stay isolated in the failing ticker's slot:
// a fetch error, an invalid window, or an empty series never prevents the
// remaining tickers from producing full results, so a comparison chart can
// render whatever is renderable and flag the rest inline.
//
// Tickers with an empty series get a None summary rather than an error,
// since an empty range may be legitimate.
func Compare(results map[string]types.SeriesResult, window int) map[string]types.MetricResult {
	out := make(map[string]types.MetricResult, len(results))

	for ticker, res := range results {
		out[ticker] = compareOne(ticker, res, window)
	}

	return out
}

func compareOne(ticker string, res types.SeriesResult, window int) types.MetricResult {
	if res.Err != nil {
		return types.MetricResult{
			Ticker:  ticker,
			Summary: optional.None[types.Summary](),
			Err:     res.Err,
		}
	}

	series := res.Series

	if series.Empty() {
		return types.MetricResult{
			Ticker:      ticker,
			Rolling:     []types.RollingPoint{},
			Performance: []types.PerformancePoint{},
			Summary:     optional.None[types.Summary](),
		}
	}

	rolling, err := RollingAverage(series, window)
	if err != nil {
		return types.MetricResult{
			Ticker:  ticker,
			Summary: optional.None[types.Summary](),
			Err:     err,
		}
	}

	summary, err := Summarize(series)
	if err != nil {
		return types.MetricResult{
			Ticker:  ticker,
			Summary: optional.None[types.Summary](),
			Err:     err,
		}
	}

	return types.MetricResult{
		Ticker:      ticker,
		Rolling:     rolling,
		Performance: Performance(series),
		Summary:     optional.Some(summary),
	}
}
