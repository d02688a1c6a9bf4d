package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"evoluciona/internal/models/request_models"
	"evoluciona/internal/services"
	"evoluciona/pkg/middleware"
	"evoluciona/pkg/utils"
)

type RestrictionController struct {
	restrictionService services.RestrictionServiceInterface
	logger             *zap.Logger
}

func NewRestrictionController(restrictionService services.RestrictionServiceInterface, logger *zap.Logger) *RestrictionController {
	return &RestrictionController{
		restrictionService: restrictionService,
		logger:             logger,
	}
}

func (r *RestrictionController) AddRestriction(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.AddRestrictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	restriction, err := r.restrictionService.AddRestriction(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, r.logger, err)
		return
	}

	utils.RespondSuccess(c, restriction, "Restriction added successfully")
}

func (r *RestrictionController) ListRestrictions(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	restrictions, err := r.restrictionService.ListRestrictions(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, r.logger, err)
		return
	}

	utils.RespondSuccess(c, restrictions, "Restrictions fetched successfully")
}

func (r *RestrictionController) DeleteRestriction(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	restrictionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid restriction id")
		return
	}

	if err := r.restrictionService.DeleteRestriction(c.Request.Context(), accountID, restrictionID); err != nil {
		utils.HandleServiceError(c, r.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Restriction deleted successfully")
}
