// Package provider contains market data provider implementations.
package provider

import (
	"context"
	"time"

	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
)

// RawBar is the raw daily record shape a provider emits before any
// normalization. Time is a provider-native instant and Volume keeps the
// provider's float representation; nothing here is trusted downstream until
// it has passed through Normalize.
type RawBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Provider is the black-box capability the acquisition layer depends on:
// fetch raw daily records for one ticker over a date range. Implementations
// surface upstream failures as typed errors and never retry; retry policy
// belongs to outer collaborators.
type Provider interface {
	// Name returns the provider name, e.g. "polygon".
	Name() string

	// RawFetch returns the provider's raw daily records for the ticker
	// between start and end (inclusive). An unknown ticker yields
	// ErrCodeTickerNotFound; a valid range with no trading days yields an
	// empty slice and no error.
	RawFetch(ctx context.Context, ticker string, start, end time.Time) ([]RawBar, error)
}

// NewProvider creates a market data provider based on the provider type.
func NewProvider(providerType ProviderType, apiKey string) (Provider, error) {
	switch providerType {
	case ProviderPolygon:
		return NewPolygonProvider(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "unsupported market data provider: %s", providerType)
	}
}
