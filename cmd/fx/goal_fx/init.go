package goal_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	provideGoalRepo,
	provideGoalService,
	provideGoalController,
)

func provideGoalRepo(db *gorm.DB) repositories.GoalRepository {
	return repositories.NewGoalRepository(db)
}

func provideGoalService(goalRepo repositories.GoalRepository, catalogRepo repositories.CatalogRepository) services.GoalServiceInterface {
	return services.NewGoalService(goalRepo, catalogRepo)
}

func provideGoalController(goalService services.GoalServiceInterface, logger *zap.Logger) *controllers.GoalController {
	return controllers.NewGoalController(goalService, logger)
}
