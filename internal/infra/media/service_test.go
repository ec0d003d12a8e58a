package media

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"plantcare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type bytesSource struct {
	name string
	data []byte
	err  error
}

func (s *bytesSource) Name() string { return s.name }

func (s *bytesSource) Open() (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}

	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func newFileBlobService(t *testing.T, uniqueSuffix bool) (*mediaService, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := openBlobStore(context.Background(), "file://"+filepath.ToSlash(dir))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newMediaService(store, "http://media.example.com/plants", uniqueSuffix, logger), dir
}

func TestMediaService_UploadWritesObjectAndReturnsHTTPSURL(t *testing.T) {
	svc, dir := newFileBlobService(t, false)

	url, err := svc.Upload(context.Background(), &bytesSource{name: "monstera.jpg", data: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/plants/monstera", url)

	stored, err := os.ReadFile(filepath.Join(dir, "monstera"))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	require.NoError(t, svc.Delete(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, "monstera"))
	assert.True(t, os.IsNotExist(err))
}

func TestMediaService_UploadFailures(t *testing.T) {
	svc, _ := newFileBlobService(t, false)

	tests := []struct {
		name string
		src  service.ImageSource
	}{
		{name: "unreadable source", src: &bytesSource{name: "a.png", err: errors.New("permission denied")}},
		{name: "not an image", src: &bytesSource{name: "notes.txt", data: []byte("water on sundays")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.src)
			assert.ErrorIs(t, err, service.ErrUploadFailed)
		})
	}
}

func TestMediaService_DeleteRejectsForeignURL(t *testing.T) {
	svc, _ := newFileBlobService(t, false)

	err := svc.Delete(context.Background(), "https://elsewhere.example.com/x")
	assert.ErrorIs(t, err, service.ErrForeignImage)
}

func TestMediaService_DeleteMissingObject(t *testing.T) {
	svc, _ := newFileBlobService(t, false)

	err := svc.Delete(context.Background(), "https://media.example.com/plants/gone")
	assert.ErrorIs(t, err, service.ErrImageNotFound)
}

func TestPublicID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "strips extension", in: "monstera.jpg", want: "monstera"},
		{name: "strips only last extension", in: "my.plant.photo.png", want: "my.plant.photo"},
		{name: "no extension", in: "fern", want: "fern"},
		{name: "empty name", in: "", want: defaultPublicID},
		{name: "hidden file keeps name", in: ".png", want: ".png"},
		{name: "dot with extension", in: "..png", want: defaultPublicID},
		{name: "dot only", in: ".", want: defaultPublicID},
		{name: "dot dot", in: "..", want: defaultPublicID},
		{name: "drops directories", in: "/sdcard/DCIM/cactus.jpeg", want: "cactus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicID(tt.in, false))
		})
	}

	unique := publicID("monstera.jpg", true)
	assert.Regexp(t, `^monstera_[0-9a-f]{8}$`, unique)
	assert.NotEqual(t, unique, publicID("monstera.jpg", true))
}

func TestSecureURL(t *testing.T) {
	assert.Equal(t, "https://res.example.com/a", secureURL("http://res.example.com/a"))
	assert.Equal(t, "https://res.example.com/a", secureURL("https://res.example.com/a"))
}

func TestObjectKey(t *testing.T) {
	url := publicURL("http://cdn.example.com/img/", "snake plant")
	assert.Equal(t, "https://cdn.example.com/img/snake%20plant", url)

	key, ok := objectKey("http://cdn.example.com/img", url)
	require.True(t, ok)
	assert.Equal(t, "snake plant", key)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aloe.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	src := NewFileSource(path)
	assert.Equal(t, "aloe.png", src.Name())

	reader, err := src.Open()
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}
