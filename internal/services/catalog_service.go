package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/response_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

// activityLevels is fixed: the survey frontend and the prompt builder both
// key on these values, so they are not stored as a catalog table.
var activityLevels = []response_models.ActivityLevelEntry{
	{Key: "sedentary", Description: "Little or no exercise"},
	{Key: "light", Description: "Light exercise 1-3 days a week"},
	{Key: "moderate", Description: "Moderate exercise 3-5 days a week"},
	{Key: "active", Description: "Hard exercise 6-7 days a week"},
	{Key: "very_active", Description: "Intense daily exercise or physical job"},
}

type CatalogServiceInterface interface {
	GetCatalogs(ctx context.Context) (*response_models.CatalogsResponse, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository

	// suggestionProfileID points at the curated profile whose rows are
	// served as survey pick-lists. Zero means suggestions are disabled.
	suggestionProfileID uuid.UUID
	logger              *zap.Logger
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, suggestionProfileID uuid.UUID, logger *zap.Logger) CatalogServiceInterface {
	return &CatalogService{
		catalogRepo:         catalogRepo,
		suggestionProfileID: suggestionProfileID,
		logger:              logger,
	}
}

func (c *CatalogService) GetCatalogs(ctx context.Context) (*response_models.CatalogsResponse, error) {
	catalogs, err := c.catalogRepo.LoadCatalogs(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.CatalogsResponse{
		UserTypes: catalogEntries(catalogs.UserTypes, func(r db_models.UserType) (uuid.UUID, string) {
			return r.ID, r.Description
		}),
		GoalTypes: catalogEntries(catalogs.GoalTypes, func(r db_models.GoalType) (uuid.UUID, string) {
			return r.ID, r.Description
		}),
		GoalStates: catalogEntries(catalogs.GoalStates, func(r db_models.GoalState) (uuid.UUID, string) {
			return r.ID, r.Description
		}),
		PlanStates: catalogEntries(catalogs.PlanStates, func(r db_models.PlanState) (uuid.UUID, string) {
			return r.ID, r.Description
		}),
		RoutineStates: catalogEntries(catalogs.RoutineStates, func(r db_models.RoutineState) (uuid.UUID, string) {
			return r.ID, r.Description
		}),
		RestrictionTypes: catalogEntries(catalogs.RestrictionTypes, func(r db_models.RestrictionType) (uuid.UUID, string) {
			return r.ID, r.Description
		}),
		ActivityLevels: activityLevels,
	}

	if c.suggestionProfileID != uuid.Nil {
		suggestions, err := c.catalogRepo.LoadSuggestions(ctx, c.suggestionProfileID)
		if err != nil {
			// Catalogs are still usable without pick-lists.
			c.logger.Warn("failed to load suggestions", zap.Error(err))
			return resp, nil
		}
		for _, food := range suggestions.Foods {
			switch food.Kind {
			case foodKindDiet:
				resp.SuggestedDiets = append(resp.SuggestedDiets, food.Value)
			case foodKindAllergy:
				resp.SuggestedAllergies = append(resp.SuggestedAllergies, food.Value)
			case foodKindFavorite:
				resp.SuggestedFavorites = append(resp.SuggestedFavorites, food.Value)
			}
		}
		for _, ex := range suggestions.Exercises {
			resp.SuggestedExercises = append(resp.SuggestedExercises, ex.Kind)
		}
		for _, eq := range suggestions.Equipment {
			resp.SuggestedEquipment = append(resp.SuggestedEquipment, eq.Name)
		}
	}

	return resp, nil
}

func catalogEntries[T any](rows []T, fields func(T) (uuid.UUID, string)) []response_models.CatalogEntry {
	out := make([]response_models.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		id, description := fields(row)
		out = append(out, response_models.CatalogEntry{ID: id.String(), Description: description})
	}
	return out
}
