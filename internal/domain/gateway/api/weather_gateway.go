package api

import (
	"context"

	"weather-relay/internal/domain/model/external"
)

// WeatherGateway defines the calls made to the weather provider.
// Implementations return *model.UpstreamError on every failure.
type WeatherGateway interface {
	// GetCurrent queries the current conditions for city, forwarded as received
	GetCurrent(ctx context.Context, city string) (*external.CurrentResponse, error)

	// GetForecast queries the forecast for city; days is forwarded as received
	GetForecast(ctx context.Context, city string, days string) (*external.ForecastResponse, error)

	// APIKeyConfigured reports whether requests carry a non-empty API key
	APIKeyConfigured() bool

	// BaseURL returns the provider base URL
	BaseURL() string
}
