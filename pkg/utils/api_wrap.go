package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
// Auth failures keep a generic message on purpose.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrGoalNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrRestrictionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidOtpToken):
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, ErrAccountInactive):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrValueTooLong):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPlanGeneration), errors.Is(err, ErrPlanParse), errors.Is(err, ErrVideoSearch):
		logger.Error("upstream service error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		logger.Error("database error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "internal server error")
	default:
		logger.Error("unexpected error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
