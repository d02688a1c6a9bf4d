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

type GoalController struct {
	goalService services.GoalServiceInterface
	logger      *zap.Logger
}

func NewGoalController(goalService services.GoalServiceInterface, logger *zap.Logger) *GoalController {
	return &GoalController{
		goalService: goalService,
		logger:      logger,
	}
}

func (g *GoalController) CreateGoal(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	goal, err := g.goalService.CreateGoal(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	utils.RespondSuccess(c, goal, "Goal created successfully")
}

func (g *GoalController) ListGoals(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := g.goalService.ListGoals(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	utils.RespondSuccess(c, goals, "Goals fetched successfully")
}

func (g *GoalController) DeleteGoal(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid goal id")
		return
	}

	if err := g.goalService.DeleteGoal(c.Request.Context(), accountID, goalID); err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Goal deleted successfully")
}

func (g *GoalController) AddTracking(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.CreateGoalTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := g.goalService.AddTracking(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Goal tracking saved successfully")
}

func (g *GoalController) ListTracking(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid goal id")
		return
	}

	entries, err := g.goalService.ListTracking(c.Request.Context(), accountID, goalID)
	if err != nil {
		utils.HandleServiceError(c, g.logger, err)
		return
	}

	utils.RespondSuccess(c, entries, "Goal tracking fetched successfully")
}
