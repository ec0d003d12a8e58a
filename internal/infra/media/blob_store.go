package media

import (
	"context"
	"io"

	"plantcare/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes: file://, gs://, s3://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

type blobStore struct {
	bucket *blob.Bucket
}

// openBlobStore opens a gocloud bucket from its URL.
func openBlobStore(ctx context.Context, bucketURL string) (*blobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

func (s *blobStore) Put(ctx context.Context, key string, r io.Reader, _ int64, contentType string) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "new blob writer")
	}

	if _, err := io.Copy(writer, r); err != nil {
		_ = writer.Close()

		return errors.Wrap(err, "write blob")
	}

	return errors.Wrap(writer.Close(), "close blob writer")
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrap(service.ErrImageNotFound, key)
	}

	return errors.Wrap(err, "delete blob")
}

func (s *blobStore) Close() error {
	return errors.Wrap(s.bucket.Close(), "close bucket")
}
