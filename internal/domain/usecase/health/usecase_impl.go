package health

import (
	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/model"
)

type healthUseCase struct {
	providerGateway api.HealthGateway
}

func NewHealthUseCase(providerGateway api.HealthGateway) UseCase {
	return &healthUseCase{providerGateway: providerGateway}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	providerHealth := useCase.providerGateway.Health()

	overallStatus := model.StatusUp
	if providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Provider: providerHealth,
	}
}
