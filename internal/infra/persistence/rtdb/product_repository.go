// Package rtdb implements the persistence layer on top of a realtime store.
package rtdb

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"sort"
	"time"

	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"
	"plantcare/internal/infra/realtime"

	"github.com/pkg/errors"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	store  realtime.Store
	logger *slog.Logger
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store realtime.Store, logger *slog.Logger) repository.ProductRepository {
	return &productRepository{
		store:  store,
		logger: logger,
	}
}

// Create writes the full record under products/<id>.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = repo.store.NewKey()
	}

	if err := repo.store.Set(ctx, productPath(product.ID), fromProductDomain(product)); err != nil {
		return domainerrors.NewPersistenceError(err)
	}

	return nil
}

// Update merges the supplied fields into the stored record.
func (repo *productRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := repo.store.Update(ctx, productPath(id), fields); err != nil {
		return domainerrors.NewPersistenceError(err)
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, productPath(id)); err != nil {
		return domainerrors.NewPersistenceError(err)
	}

	return nil
}

// FindByID reads products/<id> once.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	raw, err := repo.store.Get(ctx, productPath(id))
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err)
	}
	if raw == nil {
		return nil, repository.ErrProductNotFound
	}

	product, err := decodeProduct(id, raw)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// FindAll reads the whole collection once. Undecodable children are skipped.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	raw, err := repo.store.Get(ctx, constants.ProductsPath)
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err)
	}

	return repo.decodeCollection(raw)
}

// Watch polls the collection with its ETag and emits a snapshot whenever it changes.
func (repo *productRepository) Watch(ctx context.Context, interval time.Duration) <-chan repository.ProductSnapshot {
	out := make(chan repository.ProductSnapshot, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var etag string
		failing := false
		for {
			snap, changed, err := repo.store.GetIfChanged(ctx, constants.ProductsPath, etag)
			switch {
			case err != nil:
				if ctx.Err() != nil {
					return
				}
				// Report once per outage. The cleared ETag makes the next
				// success re-read the full collection.
				etag = ""
				if !failing {
					failing = true
					if !send(ctx, out, repository.ProductSnapshot{Err: domainerrors.NewPersistenceError(err)}) {
						return
					}
				}
			case changed:
				failing = false
				etag = snap.ETag
				products, decodeErr := repo.decodeCollection(snap.Data)
				if decodeErr != nil {
					products = nil
				}
				if !send(ctx, out, repository.ProductSnapshot{Products: products, Err: decodeErr}) {
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}

func (repo *productRepository) decodeCollection(raw json.RawMessage) ([]*entity.Product, error) {
	if raw == nil {
		return []*entity.Product{}, nil
	}

	var children map[string]json.RawMessage
	if err := json.Unmarshal(raw, &children); err != nil {
		return nil, errors.Wrapf(repository.ErrRecordDecode, "products collection: %v", err)
	}

	keys := make([]string, 0, len(children))
	for key := range children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	products := make([]*entity.Product, 0, len(keys))
	skipped := 0
	for _, key := range keys {
		product, err := decodeProduct(key, children[key])
		if err != nil {
			skipped++

			continue
		}
		products = append(products, product)
	}

	if skipped > 0 {
		repo.logger.Warn("Skipped undecodable product records",
			slog.Int("skipped", skipped),
			slog.Int("decoded", len(products)),
		)
	}

	return products, nil
}

func send(ctx context.Context, out chan<- repository.ProductSnapshot, snap repository.ProductSnapshot) bool {
	select {
	case out <- snap:
		return true
	case <-ctx.Done():
		return false
	}
}

func decodeProduct(key string, raw json.RawMessage) (*entity.Product, error) {
	var productM model.ProductModel
	if err := json.Unmarshal(raw, &productM); err != nil {
		return nil, errors.Wrapf(repository.ErrRecordDecode, "product %s: %v", key, err)
	}
	if productM.ProductID == "" {
		productM.ProductID = key
	}

	return toProductDomain(&productM), nil
}

func productPath(id string) string {
	return path.Join(constants.ProductsPath, id)
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.ImageURL,
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          productM.ProductID,
		Name:        productM.ProductName,
		Price:       productM.Price,
		Description: productM.Description,
		ImageURL:    productM.Image,
	}
}
