package video_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/services"
)

var Module = fx.Provide(
	provideVideoService,
	provideVideoController,
)

func provideVideoService(logger *zap.Logger) services.VideoServiceInterface {
	return services.NewVideoService(os.Getenv("YOUTUBE_API_KEY"), logger)
}

func provideVideoController(videoService services.VideoServiceInterface, logger *zap.Logger) *controllers.VideoController {
	return controllers.NewVideoController(videoService, logger)
}
