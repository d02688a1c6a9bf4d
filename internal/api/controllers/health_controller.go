package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evoluciona/internal/services"
	"evoluciona/pkg/middleware"
	"evoluciona/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
	logger        *zap.Logger
}

func NewHealthController(healthService services.HealthServiceInterface, logger *zap.Logger) *HealthController {
	return &HealthController{
		healthService: healthService,
		logger:        logger,
	}
}

// GetHealthMetrics godoc
// @Summary Derive health metrics from the stored profile
// @Description Returns BMR, ideal weight, max heart rate and BMI
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /health-metrics [get]
func (h *HealthController) GetHealthMetrics(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	metrics, err := h.healthService.GetHealthMetrics(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, h.logger, err)
		return
	}

	utils.RespondSuccess(c, metrics, "Health metrics calculated successfully")
}
