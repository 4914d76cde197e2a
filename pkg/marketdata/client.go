// Package marketdata acquires historical price series from an external
// provider and normalizes them into clean, chart-ready daily series.
package marketdata

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ShafqaatMalik/financial-data-project/internal/logger"
	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=polygon"`
	PolygonApiKey string                `validate:"required_if=ProviderType polygon"`
}

// FetchParams holds the parameters for a single-ticker fetch request.
type FetchParams struct {
	Ticker string    `validate:"required"`
	Start  time.Time `validate:"required"`
	End    time.Time `validate:"required"`
}

// Client fetches raw records from the configured provider and returns
// normalized series. It holds no state between requests and performs no
// caching or retries.
type Client struct {
	provider provider.Provider
	validate *validator.Validate
	log      *logger.Logger
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig, log *logger.Logger) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	marketProvider, err := provider.NewProvider(config.ProviderType, config.PolygonApiKey)
	if err != nil {
		return nil, err
	}

	return NewClientWithProvider(marketProvider, log), nil
}

// NewClientWithProvider wires an already-constructed provider. Useful for
// tests and for callers that decorate the provider.
func NewClientWithProvider(marketProvider provider.Provider, log *logger.Logger) *Client {
	return &Client{
		provider: marketProvider,
		validate: validator.New(),
		log:      log,
	}
}

// Fetch retrieves and normalizes the daily series for one ticker.
//
// It fails with ErrCodeInvalidDateRange when start is after end and with
// ErrCodeTickerNotFound when the provider does not recognize the ticker. A
// valid range with no trading days (holidays, weekends-only, delisted before
// range) returns an explicitly empty series, not an error.
func (c *Client) Fetch(ctx context.Context, params FetchParams) (types.Series, error) {
	if err := c.validate.Struct(params); err != nil {
		return types.Series{}, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid fetch parameters", err)
	}

	if params.Start.After(params.End) {
		return types.Series{}, errors.Newf(errors.ErrCodeInvalidDateRange, "start %s is after end %s",
			params.Start.Format("2006-01-02"), params.End.Format("2006-01-02"))
	}

	raw, err := c.provider.RawFetch(ctx, params.Ticker, params.Start, params.End)
	if err != nil {
		// Providers type their own errors; anything untyped is an opaque
		// upstream failure.
		if errors.GetCode(err) == errors.ErrCodeUnknown {
			err = errors.Wrapf(errors.ErrCodeProviderFailed, err, "provider %s failed for ticker %s",
				c.provider.Name(), params.Ticker)
		}

		return types.Series{}, err
	}

	series, stats := Normalize(params.Ticker, raw)

	if stats.Malformed > 0 || stats.Duplicates > 0 {
		c.log.Warn("discarded raw records during normalization",
			zap.String("ticker", params.Ticker),
			zap.Int("malformed", stats.Malformed),
			zap.Int("duplicate_dates", stats.Duplicates),
		)
	}

	c.log.Debug("fetched series",
		zap.String("ticker", params.Ticker),
		zap.String("provider", c.provider.Name()),
		zap.Int("bars", series.Len()),
	)

	return series, nil
}

// FetchAll fetches and normalizes each ticker independently over the same
// date range. One ticker's failure never aborts its siblings; each ticker's
// series or error lands in its own slot of the result map.
//
// Fetches run concurrently, which is a performance optimization only: the
// result is identical to fetching sequentially.
func (c *Client) FetchAll(ctx context.Context, tickers []string, start, end time.Time) map[string]types.SeriesResult {
	results := make([]types.SeriesResult, len(tickers))

	var g errgroup.Group

	for i, ticker := range tickers {
		i, ticker := i, ticker
		g.Go(func() error {
			series, err := c.Fetch(ctx, FetchParams{Ticker: ticker, Start: start, End: end})
			results[i] = types.SeriesResult{Series: series, Err: err}

			// Errors are isolated per ticker, never propagated to the group.
			return nil
		})
	}

	_ = g.Wait()

	out := make(map[string]types.SeriesResult, len(tickers))
	for i, ticker := range tickers {
		out[ticker] = results[i]
	}

	return out
}
