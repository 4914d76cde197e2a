package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// Bar represents one normalized daily price record for a ticker.
// Date carries calendar-day granularity only (UTC midnight); bars are never
// mutated after creation.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series is a normalized, ordered daily price series for a single ticker.
// After normalization the bar dates are strictly increasing and unique.
// A series with no trading data in range is explicitly empty, not absent.
type Series struct {
	Ticker string `json:"ticker"`
	Bars   []Bar  `json:"bars"`
}

// Empty reports whether the series contains no bars.
func (s Series) Empty() bool {
	return len(s.Bars) == 0
}

// Len returns the number of bars in the series.
func (s Series) Len() int {
	return len(s.Bars)
}

// Closes returns the close prices of the series in range order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}

	return closes
}

// RollingPoint is one entry of a rolling-average sequence. Value is None for
// the leading entries where the window has not filled yet, so charting layers
// can distinguish "undefined" from zero. None marshals to JSON null.
type RollingPoint struct {
	Date  time.Time                `json:"date"`
	Value optional.Option[float64] `json:"value"`
}

// PerformancePoint is one entry of a normalized-return sequence used by
// multi-ticker comparison charts: percent gain relative to the first close.
type PerformancePoint struct {
	Date time.Time `json:"date"`
	Pct  float64   `json:"pct"`
}

// Summary holds the scalar statistics over one series.
type Summary struct {
	LatestClose   float64 `json:"latest_close"`
	PercentChange float64 `json:"percent_change"`
	AvgVolume     float64 `json:"avg_volume"`
	MinClose      float64 `json:"min_close"`
	MaxClose      float64 `json:"max_close"`
	Volatility    float64 `json:"volatility"`
}

// SeriesResult pairs a fetched series with the error that produced it, so a
// multi-ticker batch can isolate one ticker's failure in its own slot.
type SeriesResult struct {
	Series Series
	Err    error
}

// MetricResult is the derived, read-only view over one ticker's series.
// Summary is None when the series was empty; Err is set when the ticker's
// fetch or metric computation failed. It is recomputed fully on every
// request and never cached by the core.
type MetricResult struct {
	Ticker      string                   `json:"ticker"`
	Rolling     []RollingPoint           `json:"rolling"`
	Performance []PerformancePoint       `json:"performance,omitempty"`
	Summary     optional.Option[Summary] `json:"summary"`
	Err         error                    `json:"-"`
}
