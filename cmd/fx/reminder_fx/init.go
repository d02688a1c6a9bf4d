package reminder_fx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"evoluciona/internal/repositories"
	"evoluciona/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideReminderService),
	fx.Invoke(registerLifecycle),
)

func provideReminderService(
	accountRepo repositories.AccountRepository,
	mailService services.MailServiceInterface,
	logger *zap.Logger,
) *services.ReminderService {
	return services.NewReminderService(accountRepo, mailService, os.Getenv("REMINDER_CRON"), logger)
}

func registerLifecycle(lc fx.Lifecycle, reminder *services.ReminderService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reminder.Start()
		},
		OnStop: func(ctx context.Context) error {
			reminder.Stop()
			return nil
		},
	})
}
