package media

import (
	"context"
	"io"
	"strings"

	"plantcare/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type minioStore struct {
	client *minio.Client
	bucket string
}

func newMinioStore(cfg *config.MinioConfig) (*minioStore, error) {
	if cfg == nil || strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	return &minioStore{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// ensureBucket creates the configured bucket when it does not exist yet.
func (m *minioStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}

	return errors.Wrap(m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}), "make bucket")
}

func (m *minioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	return errors.Wrap(err, "put object")
}

func (m *minioStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}), "remove object")
}

func (m *minioStore) Close() error {
	return nil
}
