package health_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	provideHealthService,
	provideHealthController,
)

func provideHealthService(profileRepo repositories.ProfileRepository) services.HealthServiceInterface {
	return services.NewHealthService(profileRepo)
}

func provideHealthController(healthService services.HealthServiceInterface, logger *zap.Logger) *controllers.HealthController {
	return controllers.NewHealthController(healthService, logger)
}
