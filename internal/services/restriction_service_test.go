package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/request_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

type fakeCatalogRepo struct {
	restrictionTypes map[uuid.UUID]db_models.RestrictionType
}

func (f *fakeCatalogRepo) LoadCatalogs(ctx context.Context) (*repositories.Catalogs, error) {
	return &repositories.Catalogs{}, nil
}

func (f *fakeCatalogRepo) LoadSuggestions(ctx context.Context, suggestionProfileID uuid.UUID) (*repositories.Suggestions, error) {
	return &repositories.Suggestions{}, nil
}

func (f *fakeCatalogRepo) FindGoalTypeByID(ctx context.Context, id uuid.UUID) (*db_models.GoalType, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) FindRestrictionTypeByID(ctx context.Context, id uuid.UUID) (*db_models.RestrictionType, error) {
	rt, ok := f.restrictionTypes[id]
	if !ok {
		return nil, nil
	}
	return &rt, nil
}

func newRestrictionTestService() (RestrictionServiceInterface, *fakeProfileRepo, uuid.UUID, uuid.UUID) {
	accountID := uuid.New()
	profileID := uuid.New()
	glutenFree := uuid.New()

	profileRepo := &fakeProfileRepo{
		state: &repositories.SurveyState{
			Profile: db_models.Profile{
				BaseModel: db_models.BaseModel{ID: profileID},
				AccountID: accountID,
			},
		},
	}
	catalogRepo := &fakeCatalogRepo{
		restrictionTypes: map[uuid.UUID]db_models.RestrictionType{
			glutenFree: {
				BaseModel:   db_models.BaseModel{ID: glutenFree},
				Description: "Sin gluten",
			},
		},
	}
	return NewRestrictionService(profileRepo, catalogRepo), profileRepo, accountID, glutenFree
}

func TestAddRestrictionPersistsRow(t *testing.T) {
	svc, repo, accountID, glutenFree := newRestrictionTestService()

	view, err := svc.AddRestriction(context.Background(), accountID, request_models.AddRestrictionRequest{
		RestrictionTypeID: glutenFree.String(),
	})
	if err != nil {
		t.Fatalf("add restriction: %v", err)
	}
	if view.RestrictionType != "Sin gluten" {
		t.Errorf("restriction type = %q, want Sin gluten", view.RestrictionType)
	}
	if len(repo.restrictions) != 1 {
		t.Fatalf("expected 1 stored restriction, got %d", len(repo.restrictions))
	}
	if repo.restrictions[0].RestrictionTypeID != glutenFree {
		t.Errorf("stored wrong restriction type id: %v", repo.restrictions[0].RestrictionTypeID)
	}
}

func TestAddRestrictionUnknownTypeRejected(t *testing.T) {
	svc, repo, accountID, _ := newRestrictionTestService()

	_, err := svc.AddRestriction(context.Background(), accountID, request_models.AddRestrictionRequest{
		RestrictionTypeID: uuid.New().String(),
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
	if len(repo.restrictions) != 0 {
		t.Error("nothing must be stored for an unknown restriction type")
	}
}

func TestAddRestrictionWithoutProfile(t *testing.T) {
	svc := NewRestrictionService(&fakeProfileRepo{}, &fakeCatalogRepo{})

	_, err := svc.AddRestriction(context.Background(), uuid.New(), request_models.AddRestrictionRequest{
		RestrictionTypeID: uuid.New().String(),
	})
	if !errors.Is(err, utils.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestListRestrictionsReturnsOwnRows(t *testing.T) {
	svc, repo, accountID, glutenFree := newRestrictionTestService()

	for i := 0; i < 2; i++ {
		if _, err := svc.AddRestriction(context.Background(), accountID, request_models.AddRestrictionRequest{
			RestrictionTypeID: glutenFree.String(),
		}); err != nil {
			t.Fatalf("add restriction: %v", err)
		}
	}
	// A row belonging to another profile must not show up.
	repo.restrictions = append(repo.restrictions, db_models.ProfileRestriction{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		ProfileID: uuid.New(),
	})

	views, err := svc.ListRestrictions(context.Background(), accountID)
	if err != nil {
		t.Fatalf("list restrictions: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 restrictions, got %d", len(views))
	}
}

func TestDeleteRestriction(t *testing.T) {
	svc, repo, accountID, glutenFree := newRestrictionTestService()

	view, err := svc.AddRestriction(context.Background(), accountID, request_models.AddRestrictionRequest{
		RestrictionTypeID: glutenFree.String(),
	})
	if err != nil {
		t.Fatalf("add restriction: %v", err)
	}
	restrictionID := uuid.MustParse(view.ID)

	if err := svc.DeleteRestriction(context.Background(), accountID, restrictionID); err != nil {
		t.Fatalf("delete restriction: %v", err)
	}
	if len(repo.restrictions) != 0 {
		t.Error("restriction row must be gone after delete")
	}

	if err := svc.DeleteRestriction(context.Background(), accountID, restrictionID); !errors.Is(err, utils.ErrRestrictionNotFound) {
		t.Fatalf("expected ErrRestrictionNotFound on second delete, got %v", err)
	}
}

func TestDeleteRestrictionOwnedByAnotherProfile(t *testing.T) {
	svc, repo, accountID, _ := newRestrictionTestService()

	foreign := db_models.ProfileRestriction{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		ProfileID: uuid.New(),
	}
	repo.restrictions = append(repo.restrictions, foreign)

	err := svc.DeleteRestriction(context.Background(), accountID, foreign.ID)
	if !errors.Is(err, utils.ErrRestrictionNotFound) {
		t.Fatalf("expected ErrRestrictionNotFound for foreign row, got %v", err)
	}
	if len(repo.restrictions) != 1 {
		t.Error("foreign row must not be deleted")
	}
}
