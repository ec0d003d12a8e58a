package impl

import (
	"context"
	"testing"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	mockRepo "plantcare/internal/mocks/repository"
	"plantcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func receiveState(t *testing.T, ch <-chan usecase.CatalogState) usecase.CatalogState {
	t.Helper()

	select {
	case state := <-ch:
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for catalog state")

		return usecase.CatalogState{}
	}
}

func TestCatalogWatcher_PublishesSnapshots(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	snapshots := make(chan repository.ProductSnapshot)

	productRepo.EXPECT().
		Watch(mock.Anything, 50*time.Millisecond).
		Return((<-chan repository.ProductSnapshot)(snapshots))

	lc := fxtest.NewLifecycle(t)
	watcher := NewCatalogWatcher(CatalogWatcherParams{
		Lc:          lc,
		ProductRepo: productRepo,
		Config:      &config.Config{Catalog: &config.CatalogConfig{Enabled: true, WatchInterval: 50 * time.Millisecond}},
		Logger:      newDiscardLogger(),
	})

	states, cancel := watcher.Subscribe()
	defer cancel()

	initial := receiveState(t, states)
	assert.True(t, initial.Loading)

	lc.RequireStart()

	snapshots <- repository.ProductSnapshot{Products: []*entity.Product{{ID: "p1", Name: "Fern"}}}
	loaded := receiveState(t, states)
	assert.False(t, loaded.Loading)
	require.Len(t, loaded.Products, 1)
	assert.Empty(t, loaded.Message)

	snapshots <- repository.ProductSnapshot{Err: domainerrors.NewPersistenceError(errors.New("Permission denied"))}
	failed := receiveState(t, states)
	assert.Equal(t, "Permission denied", failed.Message)
	assert.Len(t, failed.Products, 1)

	close(snapshots)
	lc.RequireStop()

	assert.Equal(t, failed, watcher.Current())
}

func TestCatalogWatcher_Disabled(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)

	watcher := NewCatalogWatcher(CatalogWatcherParams{
		Lc:          fxtest.NewLifecycle(t),
		ProductRepo: productRepo,
		Config:      &config.Config{Catalog: &config.CatalogConfig{Enabled: false}},
		Logger:      newDiscardLogger(),
	})

	state := watcher.Current()
	assert.False(t, state.Loading)
	assert.Equal(t, MsgCatalogDisabled, state.Message)
}

func TestCatalogWatcher_StopWithoutStart(t *testing.T) {
	watcher := newCatalogWatcher(nil, time.Second, newDiscardLogger())

	assert.NoError(t, watcher.stop(context.Background()))
}
