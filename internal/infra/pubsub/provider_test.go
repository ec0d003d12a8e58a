package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "unset", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "plants"}, wantErr: "topicId"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)

			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.noop, isNoop)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestOrphanedImage(t *testing.T) {
	tests := []struct {
		name  string
		event service.ProductEvent
		want  string
	}{
		{name: "deleted", event: service.ProductEvent{Type: constants.ProductEventDeleted, ImageURL: "https://img/a"}, want: "https://img/a"},
		{name: "updated", event: service.ProductEvent{Type: constants.ProductEventUpdated, ImageURL: "https://img/b", PreviousImageURL: "https://img/a"}, want: "https://img/a"},
		{name: "created", event: service.ProductEvent{Type: constants.ProductEventCreated, ImageURL: "https://img/a"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orphanedImage(&tt.event))
		})
	}
}
