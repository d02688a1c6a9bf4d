package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evoluciona/internal/services"
	"evoluciona/pkg/middleware"
	"evoluciona/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
	logger      *zap.Logger
}

func NewPlanController(planService services.PlanServiceInterface, logger *zap.Logger) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      logger,
	}
}

// GenerateMealPlan godoc
// @Summary Generate a new 30-day meal plan
// @Description Builds a plan from the stored survey state and persists it
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate-meal-plan [post]
func (p *PlanController) GenerateMealPlan(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := p.planService.GenerateMealPlan(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Meal plan generated successfully")
}

// GenerateTrainingPlan godoc
// @Summary Generate a new 30-day training plan
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate-training-plan [post]
func (p *PlanController) GenerateTrainingPlan(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := p.planService.GenerateTrainingPlan(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Training plan generated successfully")
}

// GetMealPlan godoc
// @Summary Fetch the latest meal plan
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /meal-plan [get]
func (p *PlanController) GetMealPlan(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	plan, err := p.planService.GetMealPlan(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Meal plan fetched successfully")
}

// GetTrainingPlan godoc
// @Summary Fetch the latest training plan
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /training-plan [get]
func (p *PlanController) GetTrainingPlan(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	plan, err := p.planService.GetTrainingPlan(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Training plan fetched successfully")
}
