package api

import (
	"context"
	"errors"

	"weather-relay/internal/domain/model"
	"weather-relay/internal/domain/model/external"
	"weather-relay/pkg/http"
)

const (
	OperationCurrent  = "current"
	OperationForecast = "forecast"

	apiKeyParam = "key"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The API key is sent on every request; an empty key is not rejected here.
// Provider redirects are followed, only the final answer is judged.
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.FollowRedirect = true
	clientOptions.SensitiveParams = append(clientOptions.SensitiveParams, apiKeyParam)
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapLogger(clientOptions.SensitiveParams...)
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// GetCurrent calls GET /current.json?key=&q=
func (w *weatherGatewayImpl) GetCurrent(ctx context.Context, city string) (*external.CurrentResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/current.json").
		WithQueryParams(map[string]string{
			apiKeyParam: w.apiKey,
			"q":         city,
		}).
		WithSuccessResp(&external.CurrentResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toUpstreamError(OperationCurrent, status, errResp, err)
	}
	return successResp.(*external.CurrentResponse), nil
}

// GetForecast calls GET /forecast.json?key=&q=&days=
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, city string, days string) (*external.ForecastResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast.json").
		WithQueryParams(map[string]string{
			apiKeyParam: w.apiKey,
			"q":         city,
			"days":      days,
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toUpstreamError(OperationForecast, status, errResp, err)
	}
	return successResp.(*external.ForecastResponse), nil
}

func (w *weatherGatewayImpl) APIKeyConfigured() bool {
	return w.apiKey != ""
}

func (w *weatherGatewayImpl) BaseURL() string {
	return w.baseURL
}

// toUpstreamError classifies a failed call of the http client
func toUpstreamError(operation string, status int, errResp any, err error) *model.UpstreamError {
	upstreamErr := &model.UpstreamError{
		Operation:  operation,
		StatusCode: status,
		Err:        err,
	}

	var statusErr *http.StatusError
	switch {
	case errors.As(err, &statusErr):
		upstreamErr.Kind = model.KindStatus
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
			upstreamErr.Message = apiErr.Error.Message
		}
	case status >= 200 && status < 300:
		upstreamErr.Kind = model.KindDecode
	default:
		upstreamErr.Kind = model.KindTransport
	}

	return upstreamErr
}
