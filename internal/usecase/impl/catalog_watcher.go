package impl

import (
	"context"
	"log/slog"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/errors"
	"plantcare/internal/observable"
	"plantcare/internal/usecase"

	"go.uber.org/fx"
)

// MsgCatalogDisabled is the state message when the live catalog is turned off.
const MsgCatalogDisabled = "Live catalog is disabled"

// catalogWatcher keeps the latest catalog snapshot in an observable value.
type catalogWatcher struct {
	productRepo repository.ProductRepository
	interval    time.Duration
	state       *observable.Value[usecase.CatalogState]
	cancel      context.CancelFunc
	done        chan struct{}
	logger      *slog.Logger
}

type CatalogWatcherParams struct {
	fx.In

	Lc          fx.Lifecycle
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogWatcher registers the watch loop with the fx lifecycle.
func NewCatalogWatcher(params CatalogWatcherParams) usecase.CatalogUsecase {
	cfg := params.Config.Catalog
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Live catalog watcher disabled")

		return &catalogWatcher{
			state:  observable.New(usecase.CatalogState{Products: []*entity.Product{}, Message: MsgCatalogDisabled}),
			logger: params.Logger,
		}
	}

	watcher := newCatalogWatcher(params.ProductRepo, cfg.WatchInterval, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			watcher.start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return watcher.stop(ctx)
		},
	})

	return watcher
}

func newCatalogWatcher(productRepo repository.ProductRepository, interval time.Duration, logger *slog.Logger) *catalogWatcher {
	return &catalogWatcher{
		productRepo: productRepo,
		interval:    interval,
		state:       observable.New(usecase.CatalogState{Loading: true, Products: []*entity.Product{}}),
		logger:      logger,
	}
}

func (w *catalogWatcher) start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	w.logger.Info("Starting catalog watcher", slog.Duration("interval", w.interval))

	go func() {
		defer close(w.done)

		for snap := range w.productRepo.Watch(ctx, w.interval) {
			w.apply(snap)
		}
	}()
}

func (w *catalogWatcher) stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	select {
	case <-w.done:
		w.logger.Info("Catalog watcher stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "catalog watcher did not stop")
	}
}

// apply turns one snapshot into the next state. An error keeps the last known products.
func (w *catalogWatcher) apply(snap repository.ProductSnapshot) {
	if snap.Err != nil {
		w.logger.Warn("Catalog subscription failed", slog.Any("error", snap.Err))

		previous := w.state.Get()
		w.state.Set(usecase.CatalogState{
			Products: previous.Products,
			Message:  snapshotMessage(snap.Err),
		})

		return
	}

	products := snap.Products
	if products == nil {
		products = []*entity.Product{}
	}
	w.state.Set(usecase.CatalogState{Products: products})
}

func (w *catalogWatcher) Current() usecase.CatalogState {
	return w.state.Get()
}

func (w *catalogWatcher) Subscribe() (<-chan usecase.CatalogState, func()) {
	return w.state.Subscribe()
}

func snapshotMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return errors.RootMessage(err)
}
