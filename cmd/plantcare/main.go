package main

import (
	"context"
	"log/slog"
	"os"

	"plantcare/config"
	"plantcare/internal/delivery"
	"plantcare/internal/delivery/api"
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router/handler"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"
	"plantcare/internal/infra/auth"
	firebaseauth "plantcare/internal/infra/auth/firebase"
	"plantcare/internal/infra/auth/local"
	"plantcare/internal/infra/firebase"
	logs "plantcare/internal/infra/log"
	"plantcare/internal/infra/media"
	"plantcare/internal/infra/persistence/rtdb"
	"plantcare/internal/infra/pubsub"
	"plantcare/internal/infra/qrcode"
	"plantcare/internal/infra/realtime"
	"plantcare/internal/usecase/impl"

	firebaseapp "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		realtime.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rtdb.NewProductRepository,
			rtdb.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newAuthProvider,
			media.NewMediaService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

type authProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebaseapp.App `optional:"true"`
}

// newAuthProvider selects Firebase Authentication or the local account store
func newAuthProvider(params authProviderParams) (service.AuthProvider, error) {
	provider := constants.AuthProviderLocal
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = params.Config.Auth.Provider
	}

	switch provider {
	case constants.AuthProviderFirebase:
		apiKey := ""
		if params.Config.Firebase != nil {
			apiKey = params.Config.Firebase.APIKey
		}
		params.Logger.Info("Using Firebase Authentication")

		return firebaseauth.NewProvider(params.Ctx, params.App, apiKey, params.Logger)
	case constants.AuthProviderLocal:
		tokens, err := auth.NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}
		params.Logger.Warn("Using local auth provider, accounts are lost on restart")

		return local.NewProvider(auth.NewBcryptHasher(params.Config), tokens, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewActivityFeed,
			impl.NewProductService,
			impl.NewAccountService,
			impl.NewActivityService,
			impl.NewCatalogWatcher,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewActivityHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
