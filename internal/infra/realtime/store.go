// Package realtime provides path-addressed JSON stores with the semantics of
// the Firebase Realtime Database: whole-node writes, child merges, deletes,
// one-shot reads and ETag-conditional reads.
package realtime

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Snapshot is the JSON value found at a path along with its entity tag.
// Data is nil when nothing is stored at the path.
type Snapshot struct {
	Data json.RawMessage
	ETag string
}

// Store is a realtime key-value tree. Paths are slash separated.
type Store interface {
	// NewKey returns a fresh, time-ordered child key.
	NewKey() string

	// Get returns the value at path, or nil when the path is empty.
	Get(ctx context.Context, path string) (json.RawMessage, error)

	// GetIfChanged reads path only when its ETag differs from etag.
	// changed is false when the stored value still matches.
	GetIfChanged(ctx context.Context, path, etag string) (snap *Snapshot, changed bool, err error)

	// Set replaces the value at path.
	Set(ctx context.Context, path string, value any) error

	// Update merges the given children into the value at path.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Delete removes the value at path.
	Delete(ctx context.Context, path string) error
}

func newKey() string {
	return uuid.Must(uuid.NewV7()).String()
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
