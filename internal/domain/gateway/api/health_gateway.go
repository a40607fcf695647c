package api

import (
	"strconv"

	"weather-relay/internal/domain/model"
	"weather-relay/pkg/msg"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

// ProviderHealthGateway reports whether the provider can be queried. It makes no
// outbound call: a missing API key is the only condition known without one.
type ProviderHealthGateway struct {
	weatherGateway WeatherGateway
}

var _ HealthGateway = (*ProviderHealthGateway)(nil)

func NewProviderHealthGateway(weatherGateway WeatherGateway) *ProviderHealthGateway {
	return &ProviderHealthGateway{weatherGateway: weatherGateway}
}

func (gateway *ProviderHealthGateway) Health() model.ComponentHealthStatus {
	configured := gateway.weatherGateway.APIKeyConfigured()

	details := map[string]string{
		"base_url":           gateway.weatherGateway.BaseURL(),
		"api_key_configured": strconv.FormatBool(configured),
	}

	if !configured {
		details["message"] = msg.GetMessage("weather.provider.key-missing")
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["message"] = msg.GetMessage("weather.provider.key-configured")
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
