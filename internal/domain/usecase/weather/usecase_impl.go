package weather

import (
	"context"
	"fmt"

	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/model"
	"weather-relay/internal/domain/model/external"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{apiGateway: apiGateway}
}

// GetCurrentConditions copies the seven current-condition fields of the provider answer
func (uc *weatherUseCase) GetCurrentConditions(ctx context.Context, city string) (*model.CurrentConditions, error) {
	resp, err := uc.apiGateway.GetCurrent(ctx, city)
	if err != nil {
		return nil, err
	}

	return toCurrentConditions(resp)
}

// GetForecast copies the provider forecast days, keeping their order and count
func (uc *weatherUseCase) GetForecast(ctx context.Context, city string, days string) (*model.Forecast, error) {
	resp, err := uc.apiGateway.GetForecast(ctx, city, days)
	if err != nil {
		return nil, err
	}

	return toForecast(resp)
}

func toCurrentConditions(resp *external.CurrentResponse) (*model.CurrentConditions, error) {
	switch {
	case resp.Location == nil:
		return nil, model.NewPayloadError(api.OperationCurrent, "location")
	case resp.Current == nil:
		return nil, model.NewPayloadError(api.OperationCurrent, "current")
	case resp.Current.Condition == nil:
		return nil, model.NewPayloadError(api.OperationCurrent, "current.condition")
	}

	return &model.CurrentConditions{
		Location:  resp.Location.Name,
		Country:   resp.Location.Country,
		TempC:     resp.Current.TempC,
		TempF:     resp.Current.TempF,
		Condition: resp.Current.Condition.Text,
		WindMph:   resp.Current.WindMph,
		Humidity:  resp.Current.Humidity,
	}, nil
}

func toForecast(resp *external.ForecastResponse) (*model.Forecast, error) {
	switch {
	case resp.Location == nil:
		return nil, model.NewPayloadError(api.OperationForecast, "location")
	case resp.Forecast == nil:
		return nil, model.NewPayloadError(api.OperationForecast, "forecast")
	case resp.Forecast.ForecastDay == nil:
		return nil, model.NewPayloadError(api.OperationForecast, "forecast.forecastday")
	}

	days := make([]model.ForecastDay, 0, len(resp.Forecast.ForecastDay))
	for i, day := range resp.Forecast.ForecastDay {
		if day.Day == nil {
			return nil, model.NewPayloadError(api.OperationForecast, fmt.Sprintf("forecast.forecastday[%d].day", i))
		}
		if day.Day.Condition == nil {
			return nil, model.NewPayloadError(api.OperationForecast, fmt.Sprintf("forecast.forecastday[%d].day.condition", i))
		}

		days = append(days, model.ForecastDay{
			Date:      day.Date,
			MaxTempC:  day.Day.MaxTempC,
			MinTempC:  day.Day.MinTempC,
			Condition: day.Day.Condition.Text,
		})
	}

	return &model.Forecast{
		Location: resp.Location.Name,
		Forecast: days,
	}, nil
}
