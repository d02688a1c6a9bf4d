package services

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"evoluciona/internal/models/response_models"
	"evoluciona/pkg/utils"
)

const videoResultLimit = 12

type VideoServiceInterface interface {
	SearchRecipeVideos(ctx context.Context, query string) ([]response_models.VideoResult, error)
	SearchExerciseVideos(ctx context.Context, query string) ([]response_models.VideoResult, error)
}

type VideoService struct {
	apiKey string
	logger *zap.Logger
}

func NewVideoService(apiKey string, logger *zap.Logger) VideoServiceInterface {
	return &VideoService{apiKey: apiKey, logger: logger}
}

func (v *VideoService) SearchRecipeVideos(ctx context.Context, query string) ([]response_models.VideoResult, error) {
	return v.search(ctx, "receta saludable "+query)
}

func (v *VideoService) SearchExerciseVideos(ctx context.Context, query string) ([]response_models.VideoResult, error) {
	return v.search(ctx, "ejercicio tutorial "+query)
}

func (v *VideoService) search(ctx context.Context, query string) ([]response_models.VideoResult, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(v.apiKey))
	if err != nil {
		v.logger.Error("youtube client init failed", zap.Error(err))
		return nil, utils.ErrVideoSearch
	}

	call := service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		RelevanceLanguage("es").
		SafeSearch("strict").
		MaxResults(videoResultLimit)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		v.logger.Error("youtube search failed", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrVideoSearch
	}

	results := make([]response_models.VideoResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		result := response_models.VideoResult{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			result.Thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		results = append(results, result)
	}
	return results, nil
}
