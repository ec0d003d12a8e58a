// Package firebase builds the shared Firebase Admin app used by the
// realtime store and the auth provider.
package firebase

import (
	"context"
	"log/slog"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app when the store or the auth provider is
// backed by Firebase. It returns nil otherwise.
func NewApp(params AppParams) (*firebase.App, error) {
	if !usesFirebase(params.Config) {
		return nil, nil
	}

	fbCfg := params.Config.Firebase
	if fbCfg == nil {
		return nil, errors.New("firebase provider selected but firebase config is missing")
	}

	var opts []option.ClientOption
	if fbCfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{
		ProjectID:   fbCfg.ProjectID,
		DatabaseURL: fbCfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", fbCfg.ProjectID),
		slog.String("database_url", fbCfg.DatabaseURL),
	)

	return app, nil
}

func usesFirebase(cfg *config.Config) bool {
	return (cfg.Store != nil && cfg.Store.Provider == constants.StoreProviderFirebase) ||
		(cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderFirebase)
}
