package realtime

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"plantcare/internal/errors"
	"plantcare/internal/util"
)

type memoryStore struct {
	mu   sync.RWMutex
	root map[string]any
}

// NewMemoryStore returns an in-process store. Values are normalized through
// JSON so reads see exactly what a remote store would return.
func NewMemoryStore() Store {
	return &memoryStore{root: map[string]any{}}
}

func (s *memoryStore) NewKey() string {
	return newKey()
}

func (s *memoryStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read(splitPath(path))
}

func (s *memoryStore) GetIfChanged(ctx context.Context, path, etag string) (*Snapshot, bool, error) {
	data, err := s.Get(ctx, path)
	if err != nil {
		return nil, false, err
	}

	current := etagOf(data)
	if etag != "" && etag == current {
		return &Snapshot{ETag: current}, false, nil
	}

	return &Snapshot{Data: data, ETag: current}, true, nil
}

func (s *memoryStore) Set(ctx context.Context, path string, value any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	normalized, err := normalize(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.write(splitPath(path), normalized)

	return nil
}

func (s *memoryStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	base := splitPath(path)
	normalized := make(map[string]any, len(fields))
	for key, value := range fields {
		v, err := normalize(value)
		if err != nil {
			return err
		}
		normalized[key] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range normalized {
		segs := append(append([]string{}, base...), splitPath(key)...)
		s.write(segs, value)
	}

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, path string) error {
	return s.Set(ctx, path, nil)
}

func (s *memoryStore) read(segs []string) (json.RawMessage, error) {
	var node any = s.root
	for _, seg := range segs {
		children, ok := node.(map[string]any)
		if !ok {
			return nil, nil
		}
		if node, ok = children[seg]; !ok {
			return nil, nil
		}
	}

	if children, ok := node.(map[string]any); ok && len(children) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(node)
	if err != nil {
		return nil, errors.Wrap(err, "marshal stored value")
	}

	return raw, nil
}

func (s *memoryStore) write(segs []string, value any) {
	if len(segs) == 0 {
		children, _ := value.(map[string]any)
		if children == nil {
			children = map[string]any{}
		}
		s.root = children

		return
	}

	s.root = setIn(s.root, segs, value)
}

// setIn stores value under segs and prunes parents left empty, the way the
// realtime database drops empty nodes.
func setIn(node map[string]any, segs []string, value any) map[string]any {
	if node == nil {
		node = map[string]any{}
	}

	key := segs[0]
	if len(segs) == 1 {
		if value == nil {
			delete(node, key)
		} else {
			node[key] = value
		}

		return node
	}

	child, _ := node[key].(map[string]any)
	child = setIn(child, segs[1:], value)
	if len(child) == 0 {
		delete(node, key)
	} else {
		node[key] = child
	}

	return node
}

func normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "marshal value")
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "normalize value")
	}
	if children, ok := out.(map[string]any); ok && len(children) == 0 {
		return nil, nil
	}

	return out, nil
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, part := range parts {
		if part != "" {
			segs = append(segs, part)
		}
	}

	return segs
}

func etagOf(data json.RawMessage) string {
	if data == nil {
		data = json.RawMessage("null")
	}

	return util.SHA256Hex(data)
}
