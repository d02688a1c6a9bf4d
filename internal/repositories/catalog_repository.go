package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evoluciona/internal/models/db_models"
)

// Catalogs is every lookup table loaded in one round of queries.
type Catalogs struct {
	UserTypes        []db_models.UserType
	GoalTypes        []db_models.GoalType
	GoalStates       []db_models.GoalState
	PlanStates       []db_models.PlanState
	RoutineStates    []db_models.RoutineState
	RestrictionTypes []db_models.RestrictionType
}

// Suggestions are the curated survey options: the dependent rows of a
// designated profile, maintained by hand and served as pick-lists.
type Suggestions struct {
	Foods     []db_models.FoodPreference
	Exercises []db_models.PreferredExercise
	Equipment []db_models.Equipment
}

type CatalogRepository interface {
	LoadCatalogs(ctx context.Context) (*Catalogs, error)
	LoadSuggestions(ctx context.Context, suggestionProfileID uuid.UUID) (*Suggestions, error)
	FindGoalTypeByID(ctx context.Context, id uuid.UUID) (*db_models.GoalType, error)
	FindRestrictionTypeByID(ctx context.Context, id uuid.UUID) (*db_models.RestrictionType, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) LoadCatalogs(ctx context.Context) (*Catalogs, error) {
	db := r.db.WithContext(ctx)
	var out Catalogs
	if err := db.Order("description ASC").Find(&out.UserTypes).Error; err != nil {
		return nil, err
	}
	if err := db.Order("description ASC").Find(&out.GoalTypes).Error; err != nil {
		return nil, err
	}
	if err := db.Order("description ASC").Find(&out.GoalStates).Error; err != nil {
		return nil, err
	}
	if err := db.Order("description ASC").Find(&out.PlanStates).Error; err != nil {
		return nil, err
	}
	if err := db.Order("description ASC").Find(&out.RoutineStates).Error; err != nil {
		return nil, err
	}
	if err := db.Order("description ASC").Find(&out.RestrictionTypes).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *catalogRepository) LoadSuggestions(ctx context.Context, suggestionProfileID uuid.UUID) (*Suggestions, error) {
	db := r.db.WithContext(ctx)
	var out Suggestions
	if err := db.Find(&out.Foods, "profile_id = ?", suggestionProfileID).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&out.Exercises, "profile_id = ?", suggestionProfileID).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&out.Equipment, "profile_id = ?", suggestionProfileID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *catalogRepository) FindGoalTypeByID(ctx context.Context, id uuid.UUID) (*db_models.GoalType, error) {
	var goalType db_models.GoalType
	err := r.db.WithContext(ctx).First(&goalType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goalType, nil
}

func (r *catalogRepository) FindRestrictionTypeByID(ctx context.Context, id uuid.UUID) (*db_models.RestrictionType, error) {
	var restrictionType db_models.RestrictionType
	err := r.db.WithContext(ctx).First(&restrictionType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restrictionType, nil
}
