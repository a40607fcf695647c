package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-relay/configs"
	"weather-relay/docs"
	"weather-relay/internal/application/controller"
	"weather-relay/internal/application/middleware"
	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/usecase/health"
	"weather-relay/internal/domain/usecase/weather"
	"weather-relay/pkg/http"
)

// New wires gateways, use cases and controllers into an echo server mounted
// under the configured context path.
func New(cfg *configs.AppConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupRecover(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	root := e.Group(cfg.ContextPath)

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(cfg.WeatherAPI.BaseURL, cfg.WeatherAPI.Key, http.ClientOptions{
		ConnectionTimeout: cfg.WeatherAPI.ConnectionTimeout,
		ReadTimeout:       cfg.WeatherAPI.ReadTimeout,
	})
	providerHealthGateway := api.NewProviderHealthGateway(weatherGateway)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway)
	healthUseCase := health.NewHealthUseCase(providerHealthGateway)

	// Init Controller
	pageController, err := controller.NewPageController(root, cfg.ContextPath)
	if err != nil {
		return nil, err
	}
	weatherController := controller.NewWeatherController(root, weatherUseCase)
	healthController := controller.NewHealthController(root, healthUseCase)

	// Init Routes
	pageController.InitPageRoutes()
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	docs.SwaggerInfo.BasePath = cfg.ContextPath
	root.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
