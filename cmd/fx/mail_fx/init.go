package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"evoluciona/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() (services.MailServiceInterface, error) {
	port, err := strconv.Atoi(envOrDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:       envOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       envOrDefault("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		FromName:   envOrDefault("SMTP_FROM_NAME", "EvolucionaT"),
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName: "EvolucionaT",
	}

	return services.NewSMTPMailService(cfg)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
