package health

import "weather-relay/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
