package media

import (
	"context"
	"log/slog"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ServiceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaService creates the media service for the configured provider
func NewMediaService(params ServiceParams) (service.MediaService, error) {
	cfg := params.Config.Media
	if cfg == nil {
		return nil, errors.New("media config is missing")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("media.publicBaseURL is required")
	}

	var store objectStore
	switch cfg.Provider {
	case constants.MediaProviderMinio:
		minioStore, err := newMinioStore(cfg.Minio)
		if err != nil {
			return nil, err
		}
		if err := minioStore.ensureBucket(params.Ctx); err != nil {
			return nil, err
		}
		store = minioStore
		params.Logger.Info("Using MinIO media store", slog.String("bucket", cfg.Minio.Bucket))
	case constants.MediaProviderBlob, "":
		blobStore, err := openBlobStore(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, err
		}
		store = blobStore
		params.Logger.Info("Using blob media store", slog.String("bucket_url", cfg.BucketURL))
	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}

	svc := newMediaService(store, cfg.PublicBaseURL, cfg.UniqueSuffix, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing media store")

			return svc.Close()
		},
	})

	return svc, nil
}
