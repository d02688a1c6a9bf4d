package request_models

type CreateProgressRequest struct {
	Date        string `json:"date" binding:"required"` // yyyy-mm-dd
	Description string `json:"description" binding:"required"`
}

type CreateMetricRequest struct {
	MetricType string         `json:"metric_type" binding:"required"`
	Date       string         `json:"date" binding:"required"`
	Value      float64        `json:"value" binding:"required"`
	Category   string         `json:"category"`
	Details    map[string]any `json:"details"`
}

type MetricRangeQuery struct {
	MetricType string `form:"type" binding:"required"`
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
}

type CreatePlanTrackingRequest struct {
	Date    string `json:"date" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}
