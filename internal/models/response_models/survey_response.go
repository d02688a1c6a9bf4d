package response_models

// SurveyDataResponse returns the persisted survey state, grouped the same
// way the survey payload is grouped so the client can prefill the form.
type SurveyDataResponse struct {
	Profile        ProfileView         `json:"profile"`
	FoodPrefs      FoodPreferencesView `json:"foodPreferences"`
	FitnessLevel   FitnessLevelView    `json:"fitnessLevel"`
	MedicalHistory *MedicalHistoryView `json:"medicalHistory,omitempty"`
	DailyHabits    *DailyHabitsView    `json:"dailyHabits,omitempty"`
}

type ProfileView struct {
	ID              string   `json:"id"`
	Gender          string   `json:"gender"`
	Age             int      `json:"age"`
	HeightCm        float64  `json:"heightCm"`
	WeightKg        float64  `json:"weightKg"`
	ActivityLevel   string   `json:"activityLevel"`
	PrimaryGoal     string   `json:"primaryGoal"`
	GoalTimeframe   string   `json:"goalTimeframe"`
	CommitmentLevel int      `json:"commitmentLevel"`
	ProgressMetrics []string `json:"progressMetrics"`
}

type FoodPreferencesView struct {
	DietTypes     []string `json:"dietTypes"`
	Allergies     []string `json:"allergies"`
	FavoriteFoods []string `json:"favoriteFoods"`
	FoodsToAvoid  []string `json:"foodsToAvoid"`
}

type FitnessLevelView struct {
	ExerciseFrequency string   `json:"exerciseFrequency"`
	AvailableTime     string   `json:"availableTime"`
	ExerciseTypes     []string `json:"exerciseTypes"`
	Equipment         []string `json:"equipment"`
}

type MedicalHistoryView struct {
	ChronicConditions string `json:"chronicConditions"`
	OtherConditions   string `json:"otherConditions"`
	Medications       string `json:"medications"`
	RecentInjuries    string `json:"recentInjuries"`
	FamilyHistory     string `json:"familyHistory"`
}

type DailyHabitsView struct {
	SleepHours   string `json:"sleepHours"`
	SleepQuality string `json:"sleepQuality"`
	StressLevel  string `json:"stressLevel"`
	WaterIntake  string `json:"waterIntake"`
	MealsPerDay  string `json:"mealsPerDay"`
	SnackHabits  string `json:"snackHabits"`
	ScreenHours  string `json:"screenHours"`
	WorkType     string `json:"workType"`
}
