package plan_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/llm"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	providePlanRepo,
	providePlanService,
	providePlanController,
)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	profileRepo repositories.ProfileRepository,
	planRepo repositories.PlanRepository,
	llmClient llm.ClientInterface,
	logger *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(profileRepo, planRepo, llmClient, logger)
}

func providePlanController(planService services.PlanServiceInterface, logger *zap.Logger) *controllers.PlanController {
	return controllers.NewPlanController(planService, logger)
}
