package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"evoluciona/internal/models/request_models"
	"evoluciona/internal/services"
	"evoluciona/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	logger         *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, logger *zap.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Authenticate and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/forgot-password [post]
func (a *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset code has been sent")
}

// VerifyOtpToken godoc
// @Summary Verify a password reset code
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RequestVerifyOtpToken true "OTP verification payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/verify-otp [post]
func (a *AccountController) VerifyOtpToken(c *gin.Context) {
	var req request_models.RequestVerifyOtpToken
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.VerifyOtpToken(req); err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Code verified successfully")
}

// ResetPasswordWithOtp godoc
// @Summary Reset the password using a verified code
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Password reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/reset-password [post]
func (a *AccountController) ResetPasswordWithOtp(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPasswordWithOtp(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}

// GetAllAccounts godoc
// @Summary List all accounts (admin)
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/all [get]
func (a *AccountController) GetAllAccounts(c *gin.Context) {
	accounts, err := a.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, a.logger, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}
