package controller

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-relay/internal/domain/model"
	"weather-relay/internal/domain/usecase/weather"
	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/:city", controller.GetCurrentConditions)
	controller.api.GET("/forecast/:city/:days", controller.GetForecast)
}

// GetCurrentConditions godoc
// @Summary Get current weather of a city
// @Description Query the weather provider for the current conditions of a city and return them in a simplified shape
// @Tags weather
// @Produce json
// @Param city path string true "City name, forwarded to the provider as received"
// @Success 200 {object} model.CurrentConditions "Current conditions"
// @Failure 500 {object} model.ErrorResponse "Failed to fetch weather data"
// @Router /weather/{city} [get]
func (controller *WeatherController) GetCurrentConditions(c echo.Context) error {
	city := pathParam(c, "city")

	current, err := controller.useCase.GetCurrentConditions(c.Request().Context(), city)
	if err != nil {
		logUpstreamFailure(c, msg.GetMessage("weather.current.log-fail", city), "current", err)
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("weather.current.fail")})
	}
	return c.JSON(http.StatusOK, current)
}

// GetForecast godoc
// @Summary Get the forecast of a city
// @Description Query the weather provider for a multi-day forecast and return the days in provider order
// @Tags weather
// @Produce json
// @Param city path string true "City name, forwarded to the provider as received"
// @Param days path string true "Number of days, forwarded to the provider as received"
// @Success 200 {object} model.Forecast "Forecast"
// @Failure 500 {object} model.ErrorResponse "Failed to fetch forecast data"
// @Router /forecast/{city}/{days} [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	city := pathParam(c, "city")
	days := pathParam(c, "days")

	forecast, err := controller.useCase.GetForecast(c.Request().Context(), city, days)
	if err != nil {
		logUpstreamFailure(c, msg.GetMessage("weather.forecast.log-fail", city, days), "forecast", err)
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("weather.forecast.fail")})
	}
	return c.JSON(http.StatusOK, forecast)
}

// pathParam returns the decoded value of a path parameter. Echo matches on the
// raw path when the request carries non-canonical escapes, leaving them encoded.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// logUpstreamFailure keeps the failure detail in the local log only
func logUpstreamFailure(c echo.Context, message string, operation string, err error) {
	upstreamErr := model.AsUpstreamError(operation, err)
	log.Error(message,
		zap.String("operation", upstreamErr.Operation),
		zap.String("kind", string(upstreamErr.Kind)),
		zap.Int("upstream_status", upstreamErr.StatusCode),
		zap.String("upstream_message", upstreamErr.Message),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
}
