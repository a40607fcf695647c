package weather

import (
	"context"

	"weather-relay/internal/domain/model"
)

type UseCase interface {
	// GetCurrentConditions maps a city to its current conditions with one provider call
	GetCurrentConditions(ctx context.Context, city string) (*model.CurrentConditions, error)

	// GetForecast maps a city and a raw day count to a multi-day forecast with one provider call
	GetForecast(ctx context.Context, city string, days string) (*model.Forecast, error)
}
