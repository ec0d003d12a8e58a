// Package media uploads plant images to an object bucket and serves them
// from a public base URL.
package media

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"plantcare/internal/domain/service"
	"plantcare/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

type mediaService struct {
	store         objectStore
	publicBaseURL string
	uniqueSuffix  bool
	logger        *slog.Logger
}

func newMediaService(store objectStore, publicBaseURL string, uniqueSuffix bool, logger *slog.Logger) *mediaService {
	return &mediaService{
		store:         store,
		publicBaseURL: publicBaseURL,
		uniqueSuffix:  uniqueSuffix,
		logger:        logger,
	}
}

// Upload stores the image under its public id. Every failure is reported as
// service.ErrUploadFailed wrapping the cause.
func (s *mediaService) Upload(ctx context.Context, src service.ImageSource) (string, error) {
	reader, err := src.Open()
	if err != nil {
		return "", uploadError(err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", uploadError(errors.Wrap(err, "read image"))
	}

	contentType := mimetype.Detect(data).String()
	if !strings.HasPrefix(contentType, "image/") {
		return "", uploadError(errors.Errorf("unsupported content type %s", contentType))
	}

	key := publicID(src.Name(), s.uniqueSuffix)
	if err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", uploadError(err)
	}

	imageURL := publicURL(s.publicBaseURL, key)
	s.logger.Debug("Image uploaded",
		slog.String("public_id", key),
		slog.String("content_type", contentType),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("url", imageURL),
	)

	return imageURL, nil
}

func (s *mediaService) Delete(ctx context.Context, imageURL string) error {
	key, ok := objectKey(s.publicBaseURL, imageURL)
	if !ok {
		return errors.Wrap(service.ErrForeignImage, imageURL)
	}

	return s.store.Delete(ctx, key)
}

func (s *mediaService) Close() error {
	return s.store.Close()
}

func uploadError(cause error) error {
	return errors.Wrap(service.ErrUploadFailed, cause.Error())
}
