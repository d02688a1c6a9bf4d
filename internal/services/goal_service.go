package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/request_models"
	"evoluciona/internal/models/response_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

const trackingDateLayout = "2006-01-02"

type GoalServiceInterface interface {
	CreateGoal(ctx context.Context, accountID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalView, error)
	ListGoals(ctx context.Context, accountID uuid.UUID) ([]response_models.GoalView, error)
	DeleteGoal(ctx context.Context, accountID uuid.UUID, goalID uuid.UUID) error
	AddTracking(ctx context.Context, accountID uuid.UUID, request request_models.CreateGoalTrackingRequest) error
	ListTracking(ctx context.Context, accountID uuid.UUID, goalID uuid.UUID) ([]response_models.GoalTrackingView, error)
}

type GoalService struct {
	goalRepo    repositories.GoalRepository
	catalogRepo repositories.CatalogRepository
}

func NewGoalService(goalRepo repositories.GoalRepository, catalogRepo repositories.CatalogRepository) GoalServiceInterface {
	return &GoalService{goalRepo: goalRepo, catalogRepo: catalogRepo}
}

func (g *GoalService) CreateGoal(ctx context.Context, accountID uuid.UUID, request request_models.CreateGoalRequest) (*response_models.GoalView, error) {
	goalTypeID, err := uuid.Parse(request.GoalTypeID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	goalType, err := g.catalogRepo.FindGoalTypeByID(ctx, goalTypeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if goalType == nil {
		return nil, utils.ErrInvalidInput
	}

	goal := &db_models.Goal{AccountID: accountID, GoalTypeID: goalTypeID}
	if err := g.goalRepo.Insert(ctx, goal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.GoalView{
		ID:       goal.ID.String(),
		GoalType: goalType.Description,
	}, nil
}

func (g *GoalService) ListGoals(ctx context.Context, accountID uuid.UUID) ([]response_models.GoalView, error) {
	goals, err := g.goalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.GoalView, 0, len(goals))
	for _, goal := range goals {
		view := response_models.GoalView{ID: goal.ID.String()}
		if goal.GoalType != nil {
			view.GoalType = goal.GoalType.Description
		}
		views = append(views, view)
	}
	return views, nil
}

func (g *GoalService) DeleteGoal(ctx context.Context, accountID uuid.UUID, goalID uuid.UUID) error {
	goal, err := g.ownedGoal(ctx, accountID, goalID)
	if err != nil {
		return err
	}
	if err := g.goalRepo.Delete(ctx, goal.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GoalService) AddTracking(ctx context.Context, accountID uuid.UUID, request request_models.CreateGoalTrackingRequest) error {
	goalID, err := uuid.Parse(request.GoalID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	date, err := time.Parse(trackingDateLayout, request.Date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if _, err := g.ownedGoal(ctx, accountID, goalID); err != nil {
		return err
	}

	tracking := &db_models.GoalTracking{
		GoalID:   goalID,
		Date:     date,
		Progress: request.Progress,
	}
	if err := g.goalRepo.InsertTracking(ctx, tracking); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GoalService) ListTracking(ctx context.Context, accountID uuid.UUID, goalID uuid.UUID) ([]response_models.GoalTrackingView, error) {
	if _, err := g.ownedGoal(ctx, accountID, goalID); err != nil {
		return nil, err
	}

	entries, err := g.goalRepo.ListTracking(ctx, goalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.GoalTrackingView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, response_models.GoalTrackingView{
			ID:       entry.ID.String(),
			Date:     entry.Date.Format(trackingDateLayout),
			Progress: entry.Progress,
		})
	}
	return views, nil
}

// ownedGoal loads the goal and rejects access by anyone but its owner.
func (g *GoalService) ownedGoal(ctx context.Context, accountID uuid.UUID, goalID uuid.UUID) (*db_models.Goal, error) {
	goal, err := g.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if goal == nil || goal.AccountID != accountID {
		return nil, utils.ErrGoalNotFound
	}
	return goal, nil
}
