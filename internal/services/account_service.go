package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"evoluciona/internal/models/db_models"
	"evoluciona/internal/models/request_models"
	"evoluciona/internal/models/response_models"
	"evoluciona/internal/repositories"
	"evoluciona/pkg/memcache"
	"evoluciona/pkg/utils"
)

const resetCodeTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtpToken(request request_models.RequestVerifyOtpToken) error
	ResetPasswordWithOtp(ctx context.Context, request request_models.ForgotPasswordRequest) error
	GetAllAccounts(ctx context.Context) ([]response_models.AccountView, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens memcache.ResetTokenStore
	mailService MailServiceInterface
	logger      *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens memcache.ResetTokenStore,
	mailService MailServiceInterface,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mailService: mailService,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}
	if !account.Active {
		return "", utils.ErrAccountInactive
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
		Role:         "user",
		Active:       true,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ForgotPassword issues a short-lived OTP code and mails it. It succeeds
// silently when the email is unknown so the endpoint does not leak which
// addresses have accounts.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		return nil
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(code, account.Email, resetCodeTTL)

	if err := a.mailService.SendPasswordResetCode(account.Email, code); err != nil {
		a.logger.Error("failed to send reset code", zap.String("email", account.Email), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) VerifyOtpToken(request request_models.RequestVerifyOtpToken) error {
	email, ok := a.resetTokens.Peek(request.OtpToken)
	if !ok || email != request.Email {
		return utils.ErrInvalidOtpToken
	}
	return nil
}

func (a *AccountService) ResetPasswordWithOtp(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.OtpToken)
	if email == "" || email != request.Email {
		return utils.ErrInvalidOtpToken
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePassword(ctx, email, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountView, error) {
	accounts, err := a.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, response_models.AccountView{
			ID:     account.ID.String(),
			Name:   account.Name,
			Email:  account.Email,
			Role:   account.Role,
			Active: account.Active,
		})
	}
	return views, nil
}
