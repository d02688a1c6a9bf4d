package response_models

type RestrictionView struct {
	ID              string `json:"id"`
	RestrictionType string `json:"restriction_type"`
}
