package services

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"evoluciona/internal/repositories"
)

// ReminderService mails every active account holding at least one plan on
// a cron schedule.
type ReminderService struct {
	accountRepo repositories.AccountRepository
	mailService MailServiceInterface
	logger      *zap.Logger

	schedule string
	cron     *cron.Cron
}

func NewReminderService(
	accountRepo repositories.AccountRepository,
	mailService MailServiceInterface,
	schedule string,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		accountRepo: accountRepo,
		mailService: mailService,
		schedule:    schedule,
		logger:      logger,
	}
}

// Start registers the reminder job and begins the scheduler. An empty
// schedule disables reminders.
func (r *ReminderService) Start() error {
	if r.schedule == "" {
		r.logger.Info("plan reminders disabled, no schedule configured")
		return nil
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, r.run); err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("plan reminders scheduled", zap.String("schedule", r.schedule))
	return nil
}

func (r *ReminderService) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

func (r *ReminderService) run() {
	ctx := context.Background()

	accounts, err := r.accountRepo.ListActiveWithPlans(ctx)
	if err != nil {
		r.logger.Error("reminder run failed to list accounts", zap.Error(err))
		return
	}

	sent := 0
	for _, account := range accounts {
		if err := r.mailService.SendPlanReminder(account.Email, account.Name); err != nil {
			r.logger.Warn("reminder mail failed",
				zap.String("email", account.Email), zap.Error(err))
			continue
		}
		sent++
	}
	r.logger.Info("reminder run finished", zap.Int("accounts", len(accounts)), zap.Int("sent", sent))
}
