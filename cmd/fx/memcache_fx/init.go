package memcache_fx

import (
	"go.uber.org/fx"

	"evoluciona/pkg/memcache"
)

var Module = fx.Provide(provideResetTokenStore)

func provideResetTokenStore() memcache.ResetTokenStore {
	return memcache.NewResetTokens()
}
