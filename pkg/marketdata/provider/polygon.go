package provider

import (
	"context"
	"net/http"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
)

// PolygonProvider fetches daily aggregates from the Polygon.io REST API.
type PolygonProvider struct {
	client *polygon.Client
}

// NewPolygonProvider creates a Polygon.io provider with the given API key.
func NewPolygonProvider(apiKey string) (*PolygonProvider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon api key is required")
	}

	return &PolygonProvider{
		client: polygon.New(apiKey),
	}, nil
}

// Name returns the provider name.
func (p *PolygonProvider) Name() string {
	return "polygon"
}

// RawFetch lists daily aggregates for the ticker. Polygon returns an empty
// result set both for unknown tickers and for ranges without trading days, so
// an empty response is followed by a ticker-details probe to tell the two
// apart.
func (p *PolygonProvider) RawFetch(ctx context.Context, ticker string, start, end time.Time) ([]RawBar, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithLimit(50000)

	iter := p.client.ListAggs(ctx, params)

	var bars []RawBar

	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, RawBar{
			Time:   time.Time(agg.Timestamp),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, mapPolygonError(ticker, err)
	}

	if len(bars) == 0 {
		if err := p.checkTickerExists(ctx, ticker); err != nil {
			return nil, err
		}
	}

	return bars, nil
}

// checkTickerExists probes the reference endpoint so that an unknown ticker
// surfaces as ErrCodeTickerNotFound instead of a silently empty series.
func (p *PolygonProvider) checkTickerExists(ctx context.Context, ticker string) error {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := &models.GetTickerDetailsParams{
		Ticker: ticker,
	}

	if _, err := p.client.GetTickerDetails(ctx, params); err != nil {
		return mapPolygonError(ticker, err)
	}

	return nil
}

// mapPolygonError converts a Polygon client error into a typed error. An HTTP
// 404 means the ticker is unknown; everything else is an opaque upstream
// failure that this layer does not retry.
func mapPolygonError(ticker string, err error) error {
	var errResp *models.ErrorResponse
	if errors.As(err, &errResp) && errResp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(errors.ErrCodeTickerNotFound, err, "ticker %s not found", ticker)
	}

	return errors.Wrapf(errors.ErrCodeProviderFailed, err, "polygon request failed for ticker %s", ticker)
}
