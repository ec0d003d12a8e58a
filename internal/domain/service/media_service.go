package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrUploadFailed wraps every failure of an image upload.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrImageNotFound is returned by Delete when the object is already gone.
	ErrImageNotFound = errors.New("image not found")

	// ErrForeignImage is returned by Delete for URLs this host did not issue.
	ErrForeignImage = errors.New("image not served by this media host")
)

// ImageSource is an image picked by the client.
type ImageSource interface {
	// Name is the display filename, possibly empty.
	Name() string

	// Open returns the image bytes. The caller closes the reader.
	Open() (io.ReadCloser, error)
}

// MediaService hosts plant images and hands out their public URLs.
type MediaService interface {
	// Upload stores the image and returns its public HTTPS URL.
	Upload(ctx context.Context, src ImageSource) (string, error)

	// Delete removes an image previously returned by Upload.
	Delete(ctx context.Context, imageURL string) error

	// Close releases the underlying bucket or client.
	Close() error
}
