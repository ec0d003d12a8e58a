package pubsub

import (
	"context"
	"log/slog"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops product events when no transport is configured. The
// media worker never sees them, so replaced images stay in the bucket.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishProductEvent(ctx context.Context, event *service.ProductEvent) error {
	attrs := []any{
		slog.String("event_type", event.Type),
		slog.String("product_id", event.ProductID),
	}
	if orphan := orphanedImage(event); orphan != "" {
		attrs = append(attrs, slog.String("orphaned_image", orphan))
	}
	p.logger.Debug("Product event dropped, no publisher configured", attrs...)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// orphanedImage is the image the media worker would delete for this event.
func orphanedImage(event *service.ProductEvent) string {
	switch event.Type {
	case constants.ProductEventDeleted:
		return event.ImageURL
	case constants.ProductEventUpdated:
		return event.PreviousImageURL
	default:
		return ""
	}
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the product event transport. An unset provider
// yields the no-op publisher.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Product events disabled, pubsub provider not set")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := newTransport(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing product event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Posting product events to the local media worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing product events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
