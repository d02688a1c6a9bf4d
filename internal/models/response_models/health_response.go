package response_models

type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type HealthMetricsResponse struct {
	BasalMetabolicRate float64   `json:"basal_metabolic_rate"`
	IdealWeightKg      float64   `json:"ideal_weight_kg"`
	MaxHeartRate       int       `json:"max_heart_rate"`
	BMI                BMIResult `json:"bmi"`
}

type VideoResult struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
}

type GoalView struct {
	ID          string             `json:"id"`
	GoalType    string             `json:"goal_type"`
	Tracking    []GoalTrackingView `json:"tracking,omitempty"`
}

type GoalTrackingView struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Progress string `json:"progress"`
}
