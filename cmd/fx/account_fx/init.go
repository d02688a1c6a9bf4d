package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"evoluciona/internal/api/controllers"
	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
	"evoluciona/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAccountService,
	provideAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens memcache.ResetTokenStore,
	mailService services.MailServiceInterface,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService, logger)
}

func provideAccountController(accountService services.AccountServiceInterface, logger *zap.Logger) *controllers.AccountController {
	return controllers.NewAccountController(accountService, logger)
}
