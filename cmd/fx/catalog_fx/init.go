package catalog_fx

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo,
	provideCatalogService,
	provideCatalogController,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository, logger *zap.Logger) services.CatalogServiceInterface {
	var suggestionProfileID uuid.UUID
	if raw := os.Getenv("SUGGESTION_PROFILE_ID"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("invalid SUGGESTION_PROFILE_ID, suggestions disabled", zap.String("value", raw))
		} else {
			suggestionProfileID = id
		}
	}
	return services.NewCatalogService(catalogRepo, suggestionProfileID, logger)
}

func provideCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService, logger)
}
