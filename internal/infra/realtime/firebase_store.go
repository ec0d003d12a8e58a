package realtime

import (
	"context"
	"encoding/json"

	"plantcare/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
)

type firebaseStore struct {
	client *db.Client
}

// NewFirebaseStore opens the Realtime Database configured on the app
func NewFirebaseStore(ctx context.Context, app *firebase.App) (Store, error) {
	if app == nil {
		return nil, errors.New("firebase store requires an initialized Firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return &firebaseStore{client: client}, nil
}

func (s *firebaseStore) NewKey() string {
	return newKey()
}

func (s *firebaseStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &raw); err != nil {
		return nil, errors.WithStack(err)
	}
	if isNull(raw) {
		return nil, nil
	}

	return raw, nil
}

func (s *firebaseStore) GetIfChanged(ctx context.Context, path, etag string) (*Snapshot, bool, error) {
	ref := s.client.NewRef(path)
	var raw json.RawMessage

	if etag == "" {
		newTag, err := ref.GetWithETag(ctx, &raw)
		if err != nil {
			return nil, false, errors.WithStack(err)
		}

		return &Snapshot{Data: nullToNil(raw), ETag: newTag}, true, nil
	}

	changed, newTag, err := ref.GetIfChanged(ctx, etag, &raw)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}
	if !changed {
		return &Snapshot{ETag: etag}, false, nil
	}

	return &Snapshot{Data: nullToNil(raw), ETag: newTag}, true, nil
}

func (s *firebaseStore) Set(ctx context.Context, path string, value any) error {
	return errors.WithStack(s.client.NewRef(path).Set(ctx, value))
}

func (s *firebaseStore) Update(ctx context.Context, path string, fields map[string]any) error {
	return errors.WithStack(s.client.NewRef(path).Update(ctx, fields))
}

func (s *firebaseStore) Delete(ctx context.Context, path string) error {
	return errors.WithStack(s.client.NewRef(path).Delete(ctx))
}

func nullToNil(raw json.RawMessage) json.RawMessage {
	if isNull(raw) {
		return nil
	}

	return raw
}
