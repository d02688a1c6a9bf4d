package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evoluciona/internal/models/request_models"
	"evoluciona/internal/services"
	"evoluciona/pkg/middleware"
	"evoluciona/pkg/utils"
)

type TrackingController struct {
	trackingService services.TrackingServiceInterface
	logger          *zap.Logger
}

func NewTrackingController(trackingService services.TrackingServiceInterface, logger *zap.Logger) *TrackingController {
	return &TrackingController{
		trackingService: trackingService,
		logger:          logger,
	}
}

func (t *TrackingController) AddProgress(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.trackingService.AddProgress(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Progress saved successfully")
}

func (t *TrackingController) ListProgress(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := t.trackingService.ListProgress(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, records, "Progress fetched successfully")
}

func (t *TrackingController) AddMetric(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.trackingService.AddMetric(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Metric saved successfully")
}

// ListMetrics expects ?type=...&from=yyyy-mm-dd&to=yyyy-mm-dd.
func (t *TrackingController) ListMetrics(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var query request_models.MetricRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	records, err := t.trackingService.ListMetrics(c.Request.Context(), accountID, query)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, records, "Metrics fetched successfully")
}

func (t *TrackingController) AddMealTracking(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreatePlanTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.trackingService.AddMealTracking(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meal tracking saved successfully")
}

func (t *TrackingController) AddTrainingTracking(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreatePlanTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.trackingService.AddTrainingTracking(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Training tracking saved successfully")
}
