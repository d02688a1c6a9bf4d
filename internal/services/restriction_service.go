package services

import (
	"context"

	"github.com/google/uuid"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/request_models"
	"evoluciona/internal/models/response_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

type RestrictionServiceInterface interface {
	AddRestriction(ctx context.Context, accountID uuid.UUID, request request_models.AddRestrictionRequest) (*response_models.RestrictionView, error)
	ListRestrictions(ctx context.Context, accountID uuid.UUID) ([]response_models.RestrictionView, error)
	DeleteRestriction(ctx context.Context, accountID uuid.UUID, restrictionID uuid.UUID) error
}

// RestrictionService manages the profile's dietary/physical restrictions.
// They reference the restriction type catalog and, unlike the survey
// collections, are edited row by row.
type RestrictionService struct {
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository
}

func NewRestrictionService(profileRepo repositories.ProfileRepository, catalogRepo repositories.CatalogRepository) RestrictionServiceInterface {
	return &RestrictionService{profileRepo: profileRepo, catalogRepo: catalogRepo}
}

func (r *RestrictionService) AddRestriction(ctx context.Context, accountID uuid.UUID, request request_models.AddRestrictionRequest) (*response_models.RestrictionView, error) {
	profile, err := r.ownProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	restrictionTypeID, err := uuid.Parse(request.RestrictionTypeID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	restrictionType, err := r.catalogRepo.FindRestrictionTypeByID(ctx, restrictionTypeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restrictionType == nil {
		return nil, utils.ErrInvalidInput
	}

	restriction := &db_models.ProfileRestriction{
		ProfileID:         profile.ID,
		RestrictionTypeID: restrictionTypeID,
	}
	if err := r.profileRepo.InsertRestriction(ctx, restriction); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RestrictionView{
		ID:              restriction.ID.String(),
		RestrictionType: restrictionType.Description,
	}, nil
}

func (r *RestrictionService) ListRestrictions(ctx context.Context, accountID uuid.UUID) ([]response_models.RestrictionView, error) {
	profile, err := r.ownProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	restrictions, err := r.profileRepo.ListRestrictions(ctx, profile.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.RestrictionView, 0, len(restrictions))
	for _, restriction := range restrictions {
		view := response_models.RestrictionView{ID: restriction.ID.String()}
		if restriction.RestrictionType != nil {
			view.RestrictionType = restriction.RestrictionType.Description
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *RestrictionService) DeleteRestriction(ctx context.Context, accountID uuid.UUID, restrictionID uuid.UUID) error {
	profile, err := r.ownProfile(ctx, accountID)
	if err != nil {
		return err
	}

	restriction, err := r.profileRepo.FindRestrictionByID(ctx, restrictionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if restriction == nil || restriction.ProfileID != profile.ID {
		return utils.ErrRestrictionNotFound
	}

	if err := r.profileRepo.DeleteRestriction(ctx, restriction.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *RestrictionService) ownProfile(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	profile, err := r.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return profile, nil
}
