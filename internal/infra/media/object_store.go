package media

import (
	"context"
	"io"
)

// objectStore is the minimal bucket surface the media service needs.
type objectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
