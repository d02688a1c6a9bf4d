package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/request_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

type TrackingServiceInterface interface {
	AddProgress(ctx context.Context, accountID uuid.UUID, request request_models.CreateProgressRequest) error
	ListProgress(ctx context.Context, accountID uuid.UUID) ([]db_models.ProgressRecord, error)

	AddMetric(ctx context.Context, accountID uuid.UUID, request request_models.CreateMetricRequest) error
	ListMetrics(ctx context.Context, accountID uuid.UUID, query request_models.MetricRangeQuery) ([]db_models.MetricRecord, error)

	// AddMealTracking and AddTrainingTracking attach an adherence note to
	// the account's latest plan of the matching kind.
	AddMealTracking(ctx context.Context, accountID uuid.UUID, request request_models.CreatePlanTrackingRequest) error
	AddTrainingTracking(ctx context.Context, accountID uuid.UUID, request request_models.CreatePlanTrackingRequest) error
}

type TrackingService struct {
	trackingRepo repositories.TrackingRepository
	planRepo     repositories.PlanRepository
}

func NewTrackingService(trackingRepo repositories.TrackingRepository, planRepo repositories.PlanRepository) TrackingServiceInterface {
	return &TrackingService{trackingRepo: trackingRepo, planRepo: planRepo}
}

func (t *TrackingService) AddProgress(ctx context.Context, accountID uuid.UUID, request request_models.CreateProgressRequest) error {
	date, err := time.Parse(trackingDateLayout, request.Date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	record := &db_models.ProgressRecord{
		AccountID:   accountID,
		Date:        date,
		Description: request.Description,
	}
	if err := t.trackingRepo.InsertProgress(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TrackingService) ListProgress(ctx context.Context, accountID uuid.UUID) ([]db_models.ProgressRecord, error) {
	records, err := t.trackingRepo.ListProgress(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}

func (t *TrackingService) AddMetric(ctx context.Context, accountID uuid.UUID, request request_models.CreateMetricRequest) error {
	date, err := time.Parse(trackingDateLayout, request.Date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	record := &db_models.MetricRecord{
		AccountID:  accountID,
		MetricType: request.MetricType,
		Date:       date,
		Value:      request.Value,
		Category:   request.Category,
	}
	if request.Details != nil {
		raw, err := json.Marshal(request.Details)
		if err != nil {
			return utils.ErrInvalidInput
		}
		record.Details = raw
	}

	if err := t.trackingRepo.InsertMetric(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TrackingService) ListMetrics(ctx context.Context, accountID uuid.UUID, query request_models.MetricRangeQuery) ([]db_models.MetricRecord, error) {
	from, err := time.Parse(trackingDateLayout, query.From)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	to, err := time.Parse(trackingDateLayout, query.To)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if to.Before(from) {
		return nil, utils.ErrInvalidInput
	}

	records, err := t.trackingRepo.ListMetrics(ctx, accountID, query.MetricType, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return records, nil
}

func (t *TrackingService) AddMealTracking(ctx context.Context, accountID uuid.UUID, request request_models.CreatePlanTrackingRequest) error {
	date, err := time.Parse(trackingDateLayout, request.Date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	plan, err := t.planRepo.LatestDietPlan(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	entry := &db_models.DietTracking{
		DietPlanID:  plan.ID,
		Date:        date,
		Description: request.Comment,
	}
	if err := t.trackingRepo.InsertDietTracking(ctx, entry); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (t *TrackingService) AddTrainingTracking(ctx context.Context, accountID uuid.UUID, request request_models.CreatePlanTrackingRequest) error {
	date, err := time.Parse(trackingDateLayout, request.Date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	plan, err := t.planRepo.LatestRoutinePlan(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	entry := &db_models.RoutineTracking{
		RoutinePlanID: plan.ID,
		Date:          date,
		Comments:      request.Comment,
	}
	if err := t.trackingRepo.InsertRoutineTracking(ctx, entry); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
