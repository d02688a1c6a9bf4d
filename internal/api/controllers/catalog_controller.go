package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evoluciona/internal/services"
	"evoluciona/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetCatalogs godoc
// @Summary Fetch lookup tables and survey pick-lists
// @Tags Catalogs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /catalogs [get]
func (cc *CatalogController) GetCatalogs(c *gin.Context) {
	catalogs, err := cc.catalogService.GetCatalogs(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, catalogs, "Catalogs fetched successfully")
}
