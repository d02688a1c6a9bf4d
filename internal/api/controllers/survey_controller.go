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

type SurveyController struct {
	surveyService services.SurveyServiceInterface
	logger        *zap.Logger
}

func NewSurveyController(surveyService services.SurveyServiceInterface, logger *zap.Logger) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
		logger:        logger,
	}
}

// CompleteSurvey godoc
// @Summary Submit the onboarding survey
// @Description Replaces the stored survey state with the submitted payload
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.SurveyData true "Survey payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /survey/complete [post]
func (s *SurveyController) CompleteSurvey(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req request_models.SurveyData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.surveyService.SubmitSurvey(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey saved successfully")
}

// GetSurveyData godoc
// @Summary Fetch the stored survey state
// @Tags Survey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /survey-data [get]
func (s *SurveyController) GetSurveyData(c *gin.Context) {
	accountID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, err := s.surveyService.GetSurveyData(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, s.logger, err)
		return
	}

	utils.RespondSuccess(c, data, "Survey data fetched successfully")
}
