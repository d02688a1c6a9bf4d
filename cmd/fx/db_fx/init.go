package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"evoluciona/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(infra.Migrate),
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
