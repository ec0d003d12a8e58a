package realtime

import (
	"context"
	"log/slog"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type StoreParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewStore selects the realtime store backend from configuration
func NewStore(params StoreParams) (Store, error) {
	provider := constants.StoreProviderMemory
	if params.Config.Store != nil && params.Config.Store.Provider != "" {
		provider = params.Config.Store.Provider
	}

	switch provider {
	case constants.StoreProviderFirebase:
		params.Logger.Info("Using Firebase Realtime Database store")

		return NewFirebaseStore(params.Ctx, params.App)
	case constants.StoreProviderMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("unknown store provider: %s", provider)
	}
}
