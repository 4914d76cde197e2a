// Package metrics computes derived series and summary statistics over
// normalized price series. Every function is a pure request/response
// transform: results are recomputed fully on each call, never cached, and
// the input series is only ever read.
package metrics

import (
	"github.com/moznion/go-optional"

	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
)

// RollingAverage computes the simple moving average of close prices over a
// trailing window. The result has the same length as the series; the first
// window-1 points carry None so charting layers never plot a misleading zero
// before the window has filled.
//
// It fails with ErrCodeInvalidWindow when window <= 0 or window exceeds the
// series length. An empty series yields an empty sequence, not an error.
func RollingAverage(series types.Series, window int) ([]types.RollingPoint, error) {
	if series.Empty() {
		return []types.RollingPoint{}, nil
	}

	if window <= 0 || window > series.Len() {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window %d out of range for series of %d bars",
			window, series.Len())
	}

	points := make([]types.RollingPoint, series.Len())

	for i, bar := range series.Bars {
		if i < window-1 {
			points[i] = types.RollingPoint{
				Date:  bar.Date,
				Value: optional.None[float64](),
			}

			continue
		}

		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += series.Bars[j].Close
		}

		points[i] = types.RollingPoint{
			Date:  bar.Date,
			Value: optional.Some(sum / float64(window)),
		}
	}

	return points, nil
}
