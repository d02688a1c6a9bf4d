package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evoluciona/internal/models/db_models"
)

type PlanRepository interface {
	// InsertDietPlan persists the plan with its full day/meal graph in one
	// transaction. Child foreign keys are stamped here.
	InsertDietPlan(ctx context.Context, plan *db_models.DietPlan) error
	InsertRoutinePlan(ctx context.Context, plan *db_models.RoutinePlan) error

	// LatestDietPlan returns the newest plan for the account with days and
	// meals preloaded, days ordered by date. Nil when none exists.
	LatestDietPlan(ctx context.Context, accountID uuid.UUID) (*db_models.DietPlan, error)
	LatestRoutinePlan(ctx context.Context, accountID uuid.UUID) (*db_models.RoutinePlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) InsertDietPlan(ctx context.Context, plan *db_models.DietPlan) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := plan.Days
		plan.Days = nil
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range days {
			day := &days[i]
			day.DietPlanID = plan.ID
			meals := day.Meals
			day.Meals = nil
			if err := tx.Create(day).Error; err != nil {
				return err
			}
			for j := range meals {
				meals[j].MealDayID = day.ID
			}
			if len(meals) > 0 {
				if err := tx.Create(&meals).Error; err != nil {
					return err
				}
			}
			day.Meals = meals
		}
		plan.Days = days
		return nil
	})
}

func (p *planRepository) InsertRoutinePlan(ctx context.Context, plan *db_models.RoutinePlan) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := plan.Days
		plan.Days = nil
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range days {
			day := &days[i]
			day.RoutinePlanID = plan.ID
			exercises := day.Exercises
			day.Exercises = nil
			if err := tx.Create(day).Error; err != nil {
				return err
			}
			for j := range exercises {
				exercises[j].TrainingDayID = day.ID
			}
			if len(exercises) > 0 {
				if err := tx.Create(&exercises).Error; err != nil {
					return err
				}
			}
			day.Exercises = exercises
		}
		plan.Days = days
		return nil
	})
}

func (p *planRepository) LatestDietPlan(ctx context.Context, accountID uuid.UUID) (*db_models.DietPlan, error) {
	var plan db_models.DietPlan
	err := p.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Days.Meals").
		Order("created_at DESC").
		First(&plan, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *planRepository) LatestRoutinePlan(ctx context.Context, accountID uuid.UUID) (*db_models.RoutinePlan, error) {
	var plan db_models.RoutinePlan
	err := p.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Days.Exercises").
		Order("created_at DESC").
		First(&plan, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
