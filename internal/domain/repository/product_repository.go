// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"plantcare/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for record persistence.
var (
	// ErrProductNotFound is returned when no product exists under the id.
	ErrProductNotFound = errors.New("product not found")
	// ErrRecordDecode is returned when a stored node does not have the expected shape.
	ErrRecordDecode = errors.New("stored record could not be decoded")
)

// Messages reported to the client after a successful product operation.
const (
	MsgProductAdded   = "Product added Successfully!"
	MsgProductDeleted = "Product deleted Successfully!"
	MsgProductUpdated = "Product updated Successfully!"
	MsgProductFetched = "product fetched"
)

// ProductSnapshot is one value of a product watch: either the whole
// collection or the error that interrupted the subscription.
type ProductSnapshot struct {
	Products []*entity.Product
	Err      error
}

// ProductRepository defines the operations on the products collection.
type ProductRepository interface {
	// Create assigns an id when product.ID is empty and writes the full record.
	Create(ctx context.Context, product *entity.Product) error

	// Update merges only the given fields into products/<id>.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes the product node.
	Delete(ctx context.Context, id string) error

	// FindByID reads one product once.
	// Returns ErrProductNotFound when absent and ErrRecordDecode when malformed.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindAll reads the collection once, skipping malformed children.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Watch emits the collection every time it changes until ctx ends.
	// The channel is closed when the watch stops.
	Watch(ctx context.Context, interval time.Duration) <-chan ProductSnapshot
}
