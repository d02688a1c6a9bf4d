package survey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo,
	provideSurveyService,
	provideSurveyController,
	provideRestrictionService,
	provideRestrictionController,
)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideSurveyService(profileRepo repositories.ProfileRepository, logger *zap.Logger) services.SurveyServiceInterface {
	return services.NewSurveyService(profileRepo, logger)
}

func provideSurveyController(surveyService services.SurveyServiceInterface, logger *zap.Logger) *controllers.SurveyController {
	return controllers.NewSurveyController(surveyService, logger)
}

func provideRestrictionService(profileRepo repositories.ProfileRepository, catalogRepo repositories.CatalogRepository) services.RestrictionServiceInterface {
	return services.NewRestrictionService(profileRepo, catalogRepo)
}

func provideRestrictionController(restrictionService services.RestrictionServiceInterface, logger *zap.Logger) *controllers.RestrictionController {
	return controllers.NewRestrictionController(restrictionService, logger)
}
