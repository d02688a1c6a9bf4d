package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account inactive")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtpToken    = errors.New("invalid or expired otp token")

	ErrProfileNotFound     = errors.New("profile not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrRestrictionNotFound = errors.New("restriction not found")

	ErrInvalidInput  = errors.New("invalid input")
	ErrValueTooLong  = errors.New("value exceeds allowed length")
	ErrDatabaseError = errors.New("database error")

	ErrPlanGeneration = errors.New("plan generation failed")
	ErrPlanParse      = errors.New("plan response could not be parsed")
	ErrVideoSearch    = errors.New("video search failed")
)
