package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
)

type SummaryTestSuite struct {
	suite.Suite
}

func TestSummarySuite(t *testing.T) {
	suite.Run(t, new(SummaryTestSuite))
}

func (suite *SummaryTestSuite) TestEmptySeries() {
	_, err := Summarize(types.Series{Ticker: "TEST"})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeEmptySeries))
}

func (suite *SummaryTestSuite) TestSingleRecordPercentChangeIsZero() {
	summary, err := Summarize(seriesOf(42.5))
	suite.NoError(err)
	suite.Equal(0.0, summary.PercentChange)
	suite.Equal(42.5, summary.LatestClose)
	suite.Equal(42.5, summary.MinClose)
	suite.Equal(42.5, summary.MaxClose)
	suite.Equal(1000.0, summary.AvgVolume)
	suite.Equal(0.0, summary.Volatility)
}

func (suite *SummaryTestSuite) TestPercentChangeOverRange() {
	summary, err := Summarize(seriesOf(100, 120, 90, 110))
	suite.NoError(err)
	suite.Equal(110.0, summary.LatestClose)
	suite.InDelta(10.0, summary.PercentChange, 1e-9)
	suite.Equal(90.0, summary.MinClose)
	suite.Equal(120.0, summary.MaxClose)
}

func (suite *SummaryTestSuite) TestVolatilityIsSampleStdDevOfReturns() {
	summary, err := Summarize(seriesOf(100, 110, 99))
	suite.NoError(err)

	// Daily returns: +10% and -10%; sample std dev of {0.1, -0.1}
	r1, r2 := 0.1, -0.1
	mean := (r1 + r2) / 2
	variance := ((r1-mean)*(r1-mean) + (r2-mean)*(r2-mean)) / 1
	suite.InDelta(math.Sqrt(variance)*100, summary.Volatility, 1e-9)
}

func (suite *SummaryTestSuite) TestVolatilityZeroForTwoBars() {
	summary, err := Summarize(seriesOf(100, 105))
	suite.NoError(err)
	suite.Equal(0.0, summary.Volatility)
}

func (suite *SummaryTestSuite) TestAvgVolume() {
	series := seriesOf(10, 20)
	series.Bars[0].Volume = 1000
	series.Bars[1].Volume = 3000

	summary, err := Summarize(series)
	suite.NoError(err)
	suite.Equal(2000.0, summary.AvgVolume)
}

func (suite *SummaryTestSuite) TestPerformance() {
	points := Performance(seriesOf(100, 110, 95))
	suite.Len(points, 3)
	suite.Equal(0.0, points[0].Pct)
	suite.InDelta(10.0, points[1].Pct, 1e-9)
	suite.InDelta(-5.0, points[2].Pct, 1e-9)
}

func (suite *SummaryTestSuite) TestPerformanceSkipsShortSeries() {
	suite.Empty(Performance(seriesOf(100)))
	suite.Empty(Performance(types.Series{Ticker: "TEST"}))
}
