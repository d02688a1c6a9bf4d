package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type RequestVerifyOtpToken struct {
	Email    string `json:"email" binding:"required,email"`
	OtpToken string `json:"otp_token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OtpToken    string `json:"otp_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
