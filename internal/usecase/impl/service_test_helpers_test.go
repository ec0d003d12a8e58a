package impl

import (
	"bytes"
	"io"
	"log/slog"

	"plantcare/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(cleanupOnFailure bool) *config.Config {
	return &config.Config{
		Media: &config.MediaConfig{
			PublicBaseURL:    "https://media.example.com",
			CleanupOnFailure: cleanupOnFailure,
		},
		Activity: &config.ActivityConfig{Capacity: 10},
		Catalog:  &config.CatalogConfig{Enabled: true},
	}
}

// imageStub is an in-memory service.ImageSource.
type imageStub struct {
	name string
	data []byte
}

func newImageStub(name string) *imageStub {
	return &imageStub{name: name, data: []byte("\x89PNG\r\n\x1a\nstub")}
}

func (s *imageStub) Name() string { return s.name }

func (s *imageStub) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}
