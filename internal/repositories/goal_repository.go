package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evoluciona/internal/models/db_models"
)

type GoalRepository interface {
	Insert(ctx context.Context, goal *db_models.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Goal, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error

	InsertTracking(ctx context.Context, tracking *db_models.GoalTracking) error
	ListTracking(ctx context.Context, goalID uuid.UUID) ([]db_models.GoalTracking, error)
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (g *goalRepository) Insert(ctx context.Context, goal *db_models.Goal) error {
	return g.db.WithContext(ctx).Create(goal).Error
}

func (g *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Goal, error) {
	var goal db_models.Goal
	err := g.db.WithContext(ctx).Preload("GoalType").First(&goal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (g *goalRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Goal, error) {
	var goals []db_models.Goal
	err := g.db.WithContext(ctx).
		Preload("GoalType").
		Order("created_at DESC").
		Find(&goals, "account_id = ?", accountID).Error
	return goals, err
}

func (g *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return g.db.WithContext(ctx).Delete(&db_models.Goal{}, "id = ?", id).Error
}

func (g *goalRepository) InsertTracking(ctx context.Context, tracking *db_models.GoalTracking) error {
	return g.db.WithContext(ctx).Create(tracking).Error
}

func (g *goalRepository) ListTracking(ctx context.Context, goalID uuid.UUID) ([]db_models.GoalTracking, error) {
	var entries []db_models.GoalTracking
	err := g.db.WithContext(ctx).
		Order("date ASC").
		Find(&entries, "goal_id = ?", goalID).Error
	return entries, err
}
