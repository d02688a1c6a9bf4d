package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evoluciona/internal/models/response_models"
	"evoluciona/internal/services"
	"evoluciona/pkg/utils"
)

type VideoController struct {
	videoService services.VideoServiceInterface
	logger       *zap.Logger
}

func NewVideoController(videoService services.VideoServiceInterface, logger *zap.Logger) *VideoController {
	return &VideoController{
		videoService: videoService,
		logger:       logger,
	}
}

// SearchVideos godoc
// @Summary Search tutorial videos
// @Description type=recipe searches healthy recipes, anything else exercise tutorials
// @Tags Videos
// @Produce json
// @Param q query string true "Dish or exercise to search for"
// @Param type query string false "recipe or exercise"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /videos/search [get]
func (v *VideoController) SearchVideos(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	var (
		results []response_models.VideoResult
		err     error
	)
	if c.Query("type") == "recipe" {
		results, err = v.videoService.SearchRecipeVideos(c.Request.Context(), query)
	} else {
		results, err = v.videoService.SearchExerciseVideos(c.Request.Context(), query)
	}
	if err != nil {
		utils.HandleServiceError(c, v.logger, err)
		return
	}

	utils.RespondSuccess(c, results, "Videos fetched successfully")
}
