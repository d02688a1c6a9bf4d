package tracking_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	provideTrackingRepo,
	provideTrackingService,
	provideTrackingController,
)

func provideTrackingRepo(db *gorm.DB) repositories.TrackingRepository {
	return repositories.NewTrackingRepository(db)
}

func provideTrackingService(trackingRepo repositories.TrackingRepository, planRepo repositories.PlanRepository) services.TrackingServiceInterface {
	return services.NewTrackingService(trackingRepo, planRepo)
}

func provideTrackingController(trackingService services.TrackingServiceInterface, logger *zap.Logger) *controllers.TrackingController {
	return controllers.NewTrackingController(trackingService, logger)
}
