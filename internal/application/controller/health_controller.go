package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-relay/internal/domain/model"
	"weather-relay/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth)
}

// CheckHealth godoc
// @Summary Service health
// @Description Report whether the weather provider is configured. No provider call is made.
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Provider configured"
// @Failure 503 {object} model.HealthResponse "Provider not configured"
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth()

	status := http.StatusOK
	if healthResponse.Status != model.StatusUp {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResponse)
}
