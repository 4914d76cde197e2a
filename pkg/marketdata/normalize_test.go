package marketdata

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata/provider"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func rawBar(ts time.Time, close float64, volume float64) provider.RawBar {
	return provider.RawBar{
		Time:   ts,
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: volume,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *NormalizeTestSuite) TestSortsAscendingWithUniqueDates() {
	raw := []provider.RawBar{
		rawBar(day(2024, 1, 3), 11, 1000),
		rawBar(day(2024, 1, 1), 10, 1000),
		rawBar(day(2024, 1, 2), 10.5, 1000),
	}

	series, stats := Normalize("AAPL", raw)

	suite.Equal("AAPL", series.Ticker)
	suite.Equal(3, series.Len())
	suite.Zero(stats.Malformed)
	suite.Zero(stats.Duplicates)

	for i := 1; i < series.Len(); i++ {
		suite.True(series.Bars[i-1].Date.Before(series.Bars[i].Date),
			"dates must be strictly increasing")
	}
}

func (suite *NormalizeTestSuite) TestDuplicateDateKeepsLastOccurrence() {
	raw := []provider.RawBar{
		rawBar(day(2024, 1, 1), 10, 1000),
		rawBar(day(2024, 1, 1), 12, 2000),
	}

	series, stats := Normalize("AAPL", raw)

	suite.Equal(1, series.Len())
	suite.Equal(12.0, series.Bars[0].Close)
	suite.Equal(int64(2000), series.Bars[0].Volume)
	suite.Equal(1, stats.Duplicates)
}

func (suite *NormalizeTestSuite) TestDropsMalformedRecordsAndContinues() {
	raw := []provider.RawBar{
		rawBar(day(2024, 1, 1), 10, 1000),
		rawBar(day(2024, 1, 2), -5, 1000),
		rawBar(day(2024, 1, 3), 11, 1000),
	}

	series, stats := Normalize("AAPL", raw)

	suite.Equal(2, series.Len())
	suite.Equal(day(2024, 1, 1), series.Bars[0].Date)
	suite.Equal(day(2024, 1, 3), series.Bars[1].Date)
	suite.Equal(1, stats.Malformed)
}

func (suite *NormalizeTestSuite) TestDropsNegativeVolumeAndNaNClose() {
	raw := []provider.RawBar{
		rawBar(day(2024, 1, 1), 10, -1),
		rawBar(day(2024, 1, 2), math.NaN(), 1000),
		rawBar(day(2024, 1, 3), 0, 1000),
	}

	series, stats := Normalize("AAPL", raw)

	suite.True(series.Empty())
	suite.Equal(3, stats.Malformed)
}

func (suite *NormalizeTestSuite) TestAllMalformedYieldsEmptySeriesNotError() {
	raw := []provider.RawBar{
		rawBar(day(2024, 1, 1), -1, 1000),
		rawBar(day(2024, 1, 2), -2, 1000),
	}

	series, _ := Normalize("AAPL", raw)

	suite.True(series.Empty())
	suite.NotNil(series.Bars)
}

func (suite *NormalizeTestSuite) TestCoercesTimestampsToUTCCalendarDates() {
	est := time.FixedZone("EST", -5*3600)

	raw := []provider.RawBar{
		// 2024-01-02 21:30 UTC, but still 2024-01-02 in UTC terms
		rawBar(time.Date(2024, 1, 2, 16, 30, 0, 0, est), 10, 1000),
		// Same calendar day as above once coerced: treated as a correction
		rawBar(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC), 11, 1100),
	}

	series, stats := Normalize("AAPL", raw)

	suite.Equal(1, series.Len())
	suite.Equal(day(2024, 1, 2), series.Bars[0].Date)
	suite.Equal(11.0, series.Bars[0].Close)
	suite.Equal(1, stats.Duplicates)
}

func (suite *NormalizeTestSuite) TestEmptyInputYieldsEmptySeries() {
	series, stats := Normalize("AAPL", nil)

	suite.True(series.Empty())
	suite.Zero(stats.Malformed)
	suite.Zero(stats.Duplicates)
}
