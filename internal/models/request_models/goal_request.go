package request_models

type CreateGoalRequest struct {
	GoalTypeID string `json:"goal_type_id" binding:"required,uuid"`
}

type CreateGoalTrackingRequest struct {
	GoalID   string `json:"goal_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"` // yyyy-mm-dd
	Progress string `json:"progress" binding:"required"`
}
