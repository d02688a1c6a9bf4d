package request_models

// SurveyData mirrors the nested payload the survey frontend submits.
// JSON field names are part of the wire contract with the existing client.
type SurveyData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo" binding:"required"`
	FoodPrefs      FoodPreferences `json:"foodPreferences" binding:"required"`
	Goals          GoalsObjectives `json:"goalsObjectives" binding:"required"`
	FitnessLevel   FitnessLevel    `json:"fitnessLevel" binding:"required"`
	MedicalHistory MedicalHistory  `json:"medicalHistory" binding:"required"`
	DailyHabits    DailyHabits     `json:"dailyHabits" binding:"required"`
}

type PersonalInfo struct {
	Gender        string  `json:"gender" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	HeightCm      float64 `json:"heightCm" binding:"required"`
	WeightKg      float64 `json:"weightKg" binding:"required"`
	ActivityLevel string  `json:"activityLevel" binding:"required"`
}

type FoodPreferences struct {
	DietTypes      []string `json:"dietTypes"`
	Allergies      []string `json:"allergies"`
	OtherAllergies string   `json:"otherAllergies"`
	FavoriteFoods  []string `json:"favoriteFoods"`
	FoodsToAvoid   string   `json:"foodsToAvoid"`
}

type GoalsObjectives struct {
	PrimaryGoal     string   `json:"primaryGoal" binding:"required"`
	GoalTimeframe   string   `json:"goalTimeframe"`
	CommitmentLevel int      `json:"commitmentLevel"`
	ProgressMetrics []string `json:"progressMetrics"`
}

type FitnessLevel struct {
	ExerciseFrequency string   `json:"exerciseFrequency"`
	ExerciseTypes     []string `json:"exerciseTypes"`
	Equipment         []string `json:"equipment"`
	AvailableTime     string   `json:"availableTime"`
}

type MedicalHistory struct {
	ChronicConditions []string `json:"chronicConditions"`
	OtherConditions   string   `json:"otherConditions"`
	Medications       string   `json:"medications"`
	RecentInjuries    string   `json:"recentInjuries"`
	FamilyHistory     string   `json:"familyHistory"`
}

type DailyHabits struct {
	SleepHours   string `json:"sleepHours"`
	SleepQuality string `json:"sleepQuality"`
	StressLevel  string `json:"stressLevel"`
	WaterIntake  string `json:"waterIntake"`
	MealsPerDay  string `json:"mealsPerDay"`
	SnackHabits  string `json:"snackHabits"`
	ScreenHours  string `json:"screenHours"`
	WorkType     string `json:"workType"`
}
