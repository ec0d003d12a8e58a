package rtdb

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/realtime"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore wraps a real store and fails selected operations.
type failingStore struct {
	realtime.Store
	setErr error
	getErr error
}

func (s *failingStore) Set(ctx context.Context, path string, value any) error {
	if s.setErr != nil {
		return s.setErr
	}

	return s.Store.Set(ctx, path, value)
}

func (s *failingStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	return s.Store.Get(ctx, path)
}

func (s *failingStore) GetIfChanged(ctx context.Context, path, etag string) (*realtime.Snapshot, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}

	return s.Store.GetIfChanged(ctx, path, etag)
}

// flakyStore fails reads while down is set.
type flakyStore struct {
	realtime.Store
	mu   sync.Mutex
	down bool
}

func (s *flakyStore) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *flakyStore) GetIfChanged(ctx context.Context, path, etag string) (*realtime.Snapshot, bool, error) {
	s.mu.Lock()
	down := s.down
	s.mu.Unlock()
	if down {
		return nil, false, errors.New("network down")
	}

	return s.Store.GetIfChanged(ctx, path, etag)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProductRepository_CreateAssignsIDAndRoundTrips(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(realtime.NewMemoryStore(), newDiscardLogger())

	product := &entity.Product{
		Name:        "Monstera",
		Price:       25,
		Description: "Water weekly",
		ImageURL:    "https://res.example.com/m.jpg",
	}
	require.NoError(t, repo.Create(ctx, product))
	require.NotEmpty(t, product.ID)

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductRepository_UpdateOnlyTouchesGivenFields(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(realtime.NewMemoryStore(), newDiscardLogger())

	require.NoError(t, repo.Create(ctx, &entity.Product{
		ID:          "p1",
		Name:        "Fern",
		Price:       10,
		Description: "Mist daily",
		ImageURL:    "https://img/p1.jpg",
	}))

	require.NoError(t, repo.Update(ctx, "p1", map[string]any{
		entity.ProductFieldName:  "Boston Fern",
		entity.ProductFieldPrice: 12.0,
	}))

	got, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "Boston Fern", got.Name)
	assert.InDelta(t, 12.0, got.Price, 0.0001)
	assert.Equal(t, "Mist daily", got.Description)
	assert.Equal(t, "https://img/p1.jpg", got.ImageURL)
}

func TestProductRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	store := realtime.NewMemoryStore()
	repo := NewProductRepository(store, newDiscardLogger())

	t.Run("missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("malformed", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "products/bad", map[string]any{"price": "abc"}))

		_, err := repo.FindByID(ctx, "bad")
		assert.ErrorIs(t, err, repository.ErrRecordDecode)
	})

	t.Run("store failure keeps provider message", func(t *testing.T) {
		broken := NewProductRepository(&failingStore{Store: store, getErr: errors.New("Permission denied")}, newDiscardLogger())

		_, err := broken.FindByID(ctx, "p1")
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Permission denied", appErr.Message())
		assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
	})
}

func TestProductRepository_FindAllSkipsMalformedChildren(t *testing.T) {
	ctx := context.Background()
	store := realtime.NewMemoryStore()
	repo := NewProductRepository(store, newDiscardLogger())

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "a", Name: "Aloe", Price: 5, Description: "Sun", ImageURL: "https://img/a"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "b", Name: "Basil", Price: 3, Description: "Water", ImageURL: "https://img/b"}))
	require.NoError(t, store.Set(ctx, "products/c", map[string]any{"price": "free"}))

	products, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "b", products[1].ID)
}

func TestProductRepository_FindAllStoreFailure(t *testing.T) {
	store := &failingStore{Store: realtime.NewMemoryStore(), getErr: errors.New("Permission denied")}
	repo := NewProductRepository(store, newDiscardLogger())

	products, err := repo.FindAll(context.Background())

	assert.Nil(t, products)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Permission denied", appErr.Message())
}

func TestProductRepository_CreateForwardsStoreMessage(t *testing.T) {
	store := &failingStore{Store: realtime.NewMemoryStore(), setErr: errors.New("Permission denied")}
	repo := NewProductRepository(store, newDiscardLogger())

	err := repo.Create(context.Background(), &entity.Product{Name: "Fern"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Permission denied", appErr.Message())
}

func TestProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(realtime.NewMemoryStore(), newDiscardLogger())

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "Fern", ImageURL: "https://img"}))
	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err := repo.FindByID(ctx, "p1")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_WatchEmitsOnChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := NewProductRepository(realtime.NewMemoryStore(), newDiscardLogger())
	snapshots := repo.Watch(ctx, 10*time.Millisecond)

	first := receive(t, snapshots)
	require.NoError(t, first.Err)
	assert.Empty(t, first.Products)

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "Fern", ImageURL: "https://img"}))

	second := receive(t, snapshots)
	require.NoError(t, second.Err)
	require.Len(t, second.Products, 1)
	assert.Equal(t, "Fern", second.Products[0].Name)

	cancel()
	for range snapshots {
	}
}

func TestProductRepository_WatchReportsErrorOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &failingStore{Store: realtime.NewMemoryStore(), getErr: errors.New("Permission denied")}
	repo := NewProductRepository(store, newDiscardLogger())
	snapshots := repo.Watch(ctx, 5*time.Millisecond)

	snap := receive(t, snapshots)
	require.Error(t, snap.Err)
	assert.Nil(t, snap.Products)

	select {
	case extra := <-snapshots:
		t.Fatalf("unexpected second snapshot: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestProductRepository_WatchRecoversFullCollection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &flakyStore{Store: realtime.NewMemoryStore()}
	repo := NewProductRepository(store, newDiscardLogger())
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "Fern", ImageURL: "https://img"}))

	snapshots := repo.Watch(ctx, 5*time.Millisecond)

	initial := receive(t, snapshots)
	require.NoError(t, initial.Err)
	require.Len(t, initial.Products, 1)

	store.setDown(true)
	outage := receive(t, snapshots)
	require.Error(t, outage.Err)

	store.setDown(false)
	recovered := receive(t, snapshots)
	require.NoError(t, recovered.Err)
	require.Len(t, recovered.Products, 1)
	assert.Equal(t, "Fern", recovered.Products[0].Name)

	cancel()
	for range snapshots {
	}
}

func receive(t *testing.T, ch <-chan repository.ProductSnapshot) repository.ProductSnapshot {
	t.Helper()

	select {
	case snap, ok := <-ch:
		require.True(t, ok, "watch closed early")

		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}

	return repository.ProductSnapshot{}
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(realtime.NewMemoryStore())

	user := &entity.User{Name: "Test", Email: "test@gmail.com", Phone: "123456", Address: "123"}
	require.NoError(t, repo.Save(ctx, "uid-1", user))
	assert.Equal(t, "uid-1", user.ID)

	got, err := repo.FindByID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = repo.FindByID(ctx, "uid-2")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
