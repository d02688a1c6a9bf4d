package request_models

type AddRestrictionRequest struct {
	RestrictionTypeID string `json:"restriction_type_id" binding:"required,uuid"`
}
