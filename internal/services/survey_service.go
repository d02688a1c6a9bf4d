package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/request_models"
	"evoluciona/internal/models/response_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/utils"
)

// Column widths for the free-text survey lists. Values longer than these
// would be truncated by the database, so they are rejected up front.
const (
	maxFoodValueLen = 100
	maxExerciseLen  = 50
	maxEquipmentLen = 50
)

const (
	foodKindDiet     = "diet"
	foodKindAllergy  = "allergy"
	foodKindFavorite = "favorite"
)

type SurveyServiceInterface interface {
	// SubmitSurvey replaces the account's stored survey state with the
	// submitted payload. Re-submitting converges the rows exactly to the
	// new payload, nothing from earlier submissions survives.
	SubmitSurvey(ctx context.Context, accountID uuid.UUID, data request_models.SurveyData) error
	GetSurveyData(ctx context.Context, accountID uuid.UUID) (*response_models.SurveyDataResponse, error)
}

type SurveyService struct {
	profileRepo repositories.ProfileRepository
	logger      *zap.Logger
}

func NewSurveyService(profileRepo repositories.ProfileRepository, logger *zap.Logger) SurveyServiceInterface {
	return &SurveyService{profileRepo: profileRepo, logger: logger}
}

func (s *SurveyService) SubmitSurvey(ctx context.Context, accountID uuid.UUID, data request_models.SurveyData) error {
	if err := validateSurvey(data); err != nil {
		return err
	}

	rows := surveyToRows(data)
	if err := s.profileRepo.SyncSurvey(ctx, accountID, rows); err != nil {
		s.logger.Error("survey sync failed", zap.String("account_id", accountID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SurveyService) GetSurveyData(ctx context.Context, accountID uuid.UUID) (*response_models.SurveyDataResponse, error) {
	state, err := s.profileRepo.LoadSurveyState(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if state == nil {
		return nil, utils.ErrProfileNotFound
	}
	return stateToResponse(state), nil
}

func validateSurvey(data request_models.SurveyData) error {
	for _, list := range [][]string{data.FoodPrefs.DietTypes, data.FoodPrefs.Allergies, data.FoodPrefs.FavoriteFoods} {
		for _, v := range list {
			if len(v) > maxFoodValueLen {
				return utils.ErrValueTooLong
			}
		}
	}
	for _, v := range data.FitnessLevel.ExerciseTypes {
		if len(v) > maxExerciseLen {
			return utils.ErrValueTooLong
		}
	}
	for _, v := range data.FitnessLevel.Equipment {
		if len(v) > maxEquipmentLen {
			return utils.ErrValueTooLong
		}
	}
	return nil
}

func surveyToRows(data request_models.SurveyData) repositories.SurveyRows {
	rows := repositories.SurveyRows{
		Profile: db_models.Profile{
			Gender:          data.PersonalInfo.Gender,
			Age:             data.PersonalInfo.Age,
			WeightKg:        data.PersonalInfo.WeightKg,
			HeightCm:        data.PersonalInfo.HeightCm,
			ActivityLevel:   data.PersonalInfo.ActivityLevel,
			PrimaryGoal:     data.Goals.PrimaryGoal,
			GoalTimeframe:   data.Goals.GoalTimeframe,
			CommitmentLevel: data.Goals.CommitmentLevel,
			ProgressMetrics: data.Goals.ProgressMetrics,
		},
	}

	for _, v := range data.FoodPrefs.DietTypes {
		rows.FoodPreferences = append(rows.FoodPreferences, db_models.FoodPreference{Kind: foodKindDiet, Value: v})
	}
	allergies := data.FoodPrefs.Allergies
	if v := strings.TrimSpace(data.FoodPrefs.OtherAllergies); v != "" {
		allergies = append(allergies, v)
	}
	for _, v := range allergies {
		rows.FoodPreferences = append(rows.FoodPreferences, db_models.FoodPreference{Kind: foodKindAllergy, Value: v})
	}
	for _, v := range data.FoodPrefs.FavoriteFoods {
		rows.FoodPreferences = append(rows.FoodPreferences, db_models.FoodPreference{Kind: foodKindFavorite, Value: v})
	}

	if v := strings.TrimSpace(data.FoodPrefs.FoodsToAvoid); v != "" {
		rows.AvoidedFoods = append(rows.AvoidedFoods, db_models.AvoidedFood{Description: v})
	}

	rows.FitnessConditions = []db_models.FitnessCondition{{
		ExerciseFrequency: data.FitnessLevel.ExerciseFrequency,
		AvailableTime:     data.FitnessLevel.AvailableTime,
	}}
	for _, v := range data.FitnessLevel.ExerciseTypes {
		rows.PreferredExercises = append(rows.PreferredExercises, db_models.PreferredExercise{Kind: v})
	}
	for _, v := range data.FitnessLevel.Equipment {
		rows.Equipment = append(rows.Equipment, db_models.Equipment{Name: v})
	}

	rows.MedicalHistories = []db_models.MedicalHistory{{
		ChronicConditions: strings.Join(data.MedicalHistory.ChronicConditions, ", "),
		OtherConditions:   data.MedicalHistory.OtherConditions,
		Medications:       data.MedicalHistory.Medications,
		Injuries:          data.MedicalHistory.RecentInjuries,
		FamilyHistory:     data.MedicalHistory.FamilyHistory,
	}}

	rows.DailyHabits = []db_models.DailyHabit{{
		SleepHours:   data.DailyHabits.SleepHours,
		SleepQuality: data.DailyHabits.SleepQuality,
		StressLevel:  data.DailyHabits.StressLevel,
		WaterIntake:  data.DailyHabits.WaterIntake,
		MealsPerDay:  data.DailyHabits.MealsPerDay,
		SnackHabits:  data.DailyHabits.SnackHabits,
		ScreenHours:  data.DailyHabits.ScreenHours,
		WorkType:     data.DailyHabits.WorkType,
	}}

	return rows
}

func stateToResponse(state *repositories.SurveyState) *response_models.SurveyDataResponse {
	resp := &response_models.SurveyDataResponse{
		Profile: response_models.ProfileView{
			ID:              state.Profile.ID.String(),
			Gender:          state.Profile.Gender,
			Age:             state.Profile.Age,
			HeightCm:        state.Profile.HeightCm,
			WeightKg:        state.Profile.WeightKg,
			ActivityLevel:   state.Profile.ActivityLevel,
			PrimaryGoal:     state.Profile.PrimaryGoal,
			GoalTimeframe:   state.Profile.GoalTimeframe,
			CommitmentLevel: state.Profile.CommitmentLevel,
			ProgressMetrics: state.Profile.ProgressMetrics,
		},
	}

	for _, pref := range state.FoodPreferences {
		switch pref.Kind {
		case foodKindDiet:
			resp.FoodPrefs.DietTypes = append(resp.FoodPrefs.DietTypes, pref.Value)
		case foodKindAllergy:
			resp.FoodPrefs.Allergies = append(resp.FoodPrefs.Allergies, pref.Value)
		case foodKindFavorite:
			resp.FoodPrefs.FavoriteFoods = append(resp.FoodPrefs.FavoriteFoods, pref.Value)
		}
	}
	for _, avoided := range state.AvoidedFoods {
		resp.FoodPrefs.FoodsToAvoid = append(resp.FoodPrefs.FoodsToAvoid, avoided.Description)
	}

	if state.FitnessCondition != nil {
		resp.FitnessLevel.ExerciseFrequency = state.FitnessCondition.ExerciseFrequency
		resp.FitnessLevel.AvailableTime = state.FitnessCondition.AvailableTime
	}
	for _, ex := range state.PreferredExercises {
		resp.FitnessLevel.ExerciseTypes = append(resp.FitnessLevel.ExerciseTypes, ex.Kind)
	}
	for _, eq := range state.Equipment {
		resp.FitnessLevel.Equipment = append(resp.FitnessLevel.Equipment, eq.Name)
	}

	if state.MedicalHistory != nil {
		resp.MedicalHistory = &response_models.MedicalHistoryView{
			ChronicConditions: state.MedicalHistory.ChronicConditions,
			OtherConditions:   state.MedicalHistory.OtherConditions,
			Medications:       state.MedicalHistory.Medications,
			RecentInjuries:    state.MedicalHistory.Injuries,
			FamilyHistory:     state.MedicalHistory.FamilyHistory,
		}
	}
	if state.DailyHabits != nil {
		resp.DailyHabits = &response_models.DailyHabitsView{
			SleepHours:   state.DailyHabits.SleepHours,
			SleepQuality: state.DailyHabits.SleepQuality,
			StressLevel:  state.DailyHabits.StressLevel,
			WaterIntake:  state.DailyHabits.WaterIntake,
			MealsPerDay:  state.DailyHabits.MealsPerDay,
			SnackHabits:  state.DailyHabits.SnackHabits,
			ScreenHours:  state.DailyHabits.ScreenHours,
			WorkType:     state.DailyHabits.WorkType,
		}
	}

	return resp
}
