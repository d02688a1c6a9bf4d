package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evoluciona/internal/models/db_models"
)

// SurveyRows is the materialized form of one survey submission: the profile
// scalars plus the full new contents of every dependent table.
type SurveyRows struct {
	Profile db_models.Profile

	FoodPreferences    []db_models.FoodPreference
	AvoidedFoods       []db_models.AvoidedFood
	FitnessConditions  []db_models.FitnessCondition
	PreferredExercises []db_models.PreferredExercise
	Equipment          []db_models.Equipment
	MedicalHistories   []db_models.MedicalHistory
	DailyHabits        []db_models.DailyHabit
}

// SurveyState is everything GET /survey-data needs, loaded in one call.
type SurveyState struct {
	Profile            db_models.Profile
	FoodPreferences    []db_models.FoodPreference
	AvoidedFoods       []db_models.AvoidedFood
	FitnessCondition   *db_models.FitnessCondition
	PreferredExercises []db_models.PreferredExercise
	Equipment          []db_models.Equipment
	MedicalHistory     *db_models.MedicalHistory
	DailyHabits        *db_models.DailyHabit
}

type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)

	// SyncSurvey converges the stored state for one account to rows:
	// upsert the profile scalars, then delete-all + insert-all for every
	// dependent table, inside one transaction.
	SyncSurvey(ctx context.Context, accountID uuid.UUID, rows SurveyRows) error

	LoadSurveyState(ctx context.Context, accountID uuid.UUID) (*SurveyState, error)

	// Dietary/physical restrictions are managed one row at a time, unlike
	// the survey collections, which are replaced wholesale.
	InsertRestriction(ctx context.Context, restriction *db_models.ProfileRestriction) error
	ListRestrictions(ctx context.Context, profileID uuid.UUID) ([]db_models.ProfileRestriction, error)
	FindRestrictionByID(ctx context.Context, id uuid.UUID) (*db_models.ProfileRestriction, error)
	DeleteRestriction(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) SyncSurvey(ctx context.Context, accountID uuid.UUID, rows SurveyRows) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Profile
		err := tx.First(&existing, "account_id = ?", accountID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rows.Profile.AccountID = accountID
			if err := tx.Create(&rows.Profile).Error; err != nil {
				return err
			}
			existing = rows.Profile
		case err != nil:
			return err
		default:
			existing.Gender = rows.Profile.Gender
			existing.Age = rows.Profile.Age
			existing.WeightKg = rows.Profile.WeightKg
			existing.HeightCm = rows.Profile.HeightCm
			existing.ActivityLevel = rows.Profile.ActivityLevel
			existing.PrimaryGoal = rows.Profile.PrimaryGoal
			existing.GoalTimeframe = rows.Profile.GoalTimeframe
			existing.CommitmentLevel = rows.Profile.CommitmentLevel
			existing.ProgressMetrics = rows.Profile.ProgressMetrics
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}

		profileID := existing.ID

		if err := replaceSet(tx, profileID, rows.FoodPreferences); err != nil {
			return err
		}
		if err := replaceSet(tx, profileID, rows.AvoidedFoods); err != nil {
			return err
		}
		if err := replaceSet(tx, profileID, rows.FitnessConditions); err != nil {
			return err
		}
		if err := replaceSet(tx, profileID, rows.PreferredExercises); err != nil {
			return err
		}
		if err := replaceSet(tx, profileID, rows.Equipment); err != nil {
			return err
		}
		if err := replaceSet(tx, profileID, rows.MedicalHistories); err != nil {
			return err
		}
		if err := replaceSet(tx, profileID, rows.DailyHabits); err != nil {
			return err
		}
		return nil
	})
}

// replaceSet atomically swaps all children of one type for a profile: hard
// delete every existing row scoped to the profile, then bulk insert the new
// set. Runs inside the caller's transaction. No history is kept.
func replaceSet[T any](tx *gorm.DB, profileID uuid.UUID, items []T) error {
	var model T
	if err := tx.Unscoped().Where("profile_id = ?", profileID).Delete(&model).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	setProfileID(items, profileID)
	return tx.Create(&items).Error
}

// setProfileID stamps the owning profile id on every row before insert.
func setProfileID[T any](items []T, profileID uuid.UUID) {
	for i := range items {
		switch row := any(&items[i]).(type) {
		case *db_models.FoodPreference:
			row.ProfileID = profileID
		case *db_models.AvoidedFood:
			row.ProfileID = profileID
		case *db_models.FitnessCondition:
			row.ProfileID = profileID
		case *db_models.PreferredExercise:
			row.ProfileID = profileID
		case *db_models.Equipment:
			row.ProfileID = profileID
		case *db_models.MedicalHistory:
			row.ProfileID = profileID
		case *db_models.DailyHabit:
			row.ProfileID = profileID
		}
	}
}

func (p *profileRepository) LoadSurveyState(ctx context.Context, accountID uuid.UUID) (*SurveyState, error) {
	profile, err := p.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	state := &SurveyState{Profile: *profile}
	db := p.db.WithContext(ctx)

	if err := db.Find(&state.FoodPreferences, "profile_id = ?", profile.ID).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&state.AvoidedFoods, "profile_id = ?", profile.ID).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&state.PreferredExercises, "profile_id = ?", profile.ID).Error; err != nil {
		return nil, err
	}
	if err := db.Find(&state.Equipment, "profile_id = ?", profile.ID).Error; err != nil {
		return nil, err
	}

	var condition db_models.FitnessCondition
	if err := db.First(&condition, "profile_id = ?", profile.ID).Error; err == nil {
		state.FitnessCondition = &condition
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var history db_models.MedicalHistory
	if err := db.First(&history, "profile_id = ?", profile.ID).Error; err == nil {
		state.MedicalHistory = &history
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var habits db_models.DailyHabit
	if err := db.First(&habits, "profile_id = ?", profile.ID).Error; err == nil {
		state.DailyHabits = &habits
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return state, nil
}

func (p *profileRepository) InsertRestriction(ctx context.Context, restriction *db_models.ProfileRestriction) error {
	return p.db.WithContext(ctx).Create(restriction).Error
}

func (p *profileRepository) ListRestrictions(ctx context.Context, profileID uuid.UUID) ([]db_models.ProfileRestriction, error) {
	var restrictions []db_models.ProfileRestriction
	err := p.db.WithContext(ctx).
		Preload("RestrictionType").
		Find(&restrictions, "profile_id = ?", profileID).Error
	if err != nil {
		return nil, err
	}
	return restrictions, nil
}

func (p *profileRepository) FindRestrictionByID(ctx context.Context, id uuid.UUID) (*db_models.ProfileRestriction, error) {
	var restriction db_models.ProfileRestriction
	err := p.db.WithContext(ctx).First(&restriction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &restriction, nil
}

func (p *profileRepository) DeleteRestriction(ctx context.Context, id uuid.UUID) error {
	return p.db.WithContext(ctx).Delete(&db_models.ProfileRestriction{}, "id = ?", id).Error
}
