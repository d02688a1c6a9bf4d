package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evoluciona/internal/models/db_models"
)

type TrackingRepository interface {
	InsertProgress(ctx context.Context, record *db_models.ProgressRecord) error
	ListProgress(ctx context.Context, accountID uuid.UUID) ([]db_models.ProgressRecord, error)

	InsertMetric(ctx context.Context, record *db_models.MetricRecord) error
	// ListMetrics filters by metric type and an optional inclusive date
	// range; zero time bounds are ignored.
	ListMetrics(ctx context.Context, accountID uuid.UUID, metricType string, from, to time.Time) ([]db_models.MetricRecord, error)

	InsertDietTracking(ctx context.Context, entry *db_models.DietTracking) error
	ListDietTracking(ctx context.Context, dietPlanID uuid.UUID) ([]db_models.DietTracking, error)

	InsertRoutineTracking(ctx context.Context, entry *db_models.RoutineTracking) error
	ListRoutineTracking(ctx context.Context, routinePlanID uuid.UUID) ([]db_models.RoutineTracking, error)
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (t *trackingRepository) InsertProgress(ctx context.Context, record *db_models.ProgressRecord) error {
	return t.db.WithContext(ctx).Create(record).Error
}

func (t *trackingRepository) ListProgress(ctx context.Context, accountID uuid.UUID) ([]db_models.ProgressRecord, error) {
	var records []db_models.ProgressRecord
	err := t.db.WithContext(ctx).
		Order("date DESC").
		Find(&records, "account_id = ?", accountID).Error
	return records, err
}

func (t *trackingRepository) InsertMetric(ctx context.Context, record *db_models.MetricRecord) error {
	return t.db.WithContext(ctx).Create(record).Error
}

func (t *trackingRepository) ListMetrics(ctx context.Context, accountID uuid.UUID, metricType string, from, to time.Time) ([]db_models.MetricRecord, error) {
	query := t.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Where("metric_type = ?", metricType)
	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	var records []db_models.MetricRecord
	err := query.Order("date ASC").Find(&records).Error
	return records, err
}

func (t *trackingRepository) InsertDietTracking(ctx context.Context, entry *db_models.DietTracking) error {
	return t.db.WithContext(ctx).Create(entry).Error
}

func (t *trackingRepository) ListDietTracking(ctx context.Context, dietPlanID uuid.UUID) ([]db_models.DietTracking, error) {
	var entries []db_models.DietTracking
	err := t.db.WithContext(ctx).
		Order("date ASC").
		Find(&entries, "diet_plan_id = ?", dietPlanID).Error
	return entries, err
}

func (t *trackingRepository) InsertRoutineTracking(ctx context.Context, entry *db_models.RoutineTracking) error {
	return t.db.WithContext(ctx).Create(entry).Error
}

func (t *trackingRepository) ListRoutineTracking(ctx context.Context, routinePlanID uuid.UUID) ([]db_models.RoutineTracking, error) {
	var entries []db_models.RoutineTracking
	err := t.db.WithContext(ctx).
		Order("date ASC").
		Find(&entries, "routine_plan_id = ?", routinePlanID).Error
	return entries, err
}
