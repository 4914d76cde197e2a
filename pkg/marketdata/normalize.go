package marketdata

import (
	"math"
	"sort"
	"time"

	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata/provider"
)

// NormalizeStats reports what Normalize discarded, so callers can log the
// clean-up instead of hiding it.
type NormalizeStats struct {
	// Malformed counts records dropped for a non-positive or NaN close
	// price or a negative volume.
	Malformed int
	// Duplicates counts records superseded by a later record for the same
	// calendar date.
	Duplicates int
}

// Normalize converts raw provider records into a clean daily series:
//
//   - timestamps are coerced to UTC calendar dates, discarding time-of-day
//     and timezone (daily granularity only)
//   - records with a non-positive close or negative volume are dropped
//     individually; a single malformed record never fails the whole fetch
//   - duplicate dates keep the last occurrence in provider order, treating
//     it as a correction of the earlier record
//   - bars are sorted ascending by date
//
// If every record is malformed the result is an explicitly empty series.
func Normalize(ticker string, raw []provider.RawBar) (types.Series, NormalizeStats) {
	var stats NormalizeStats

	byDate := make(map[time.Time]types.Bar, len(raw))

	for _, r := range raw {
		if malformed(r) {
			stats.Malformed++
			continue
		}

		date := truncateToDay(r.Time)
		if _, ok := byDate[date]; ok {
			stats.Duplicates++
		}

		byDate[date] = types.Bar{
			Date:   date,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: int64(r.Volume),
		}
	}

	bars := make([]types.Bar, 0, len(byDate))
	for _, b := range byDate {
		bars = append(bars, b)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Date.Before(bars[j].Date)
	})

	return types.Series{Ticker: ticker, Bars: bars}, stats
}

// malformed reports whether a raw record must be dropped. NaN prices fail the
// close check the same way non-positive ones do.
func malformed(r provider.RawBar) bool {
	if math.IsNaN(r.Close) || r.Close <= 0 {
		return true
	}

	if math.IsNaN(r.Volume) || r.Volume < 0 {
		return true
	}

	return false
}

// truncateToDay keeps the calendar day of the instant in UTC.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
