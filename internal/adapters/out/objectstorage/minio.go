// Package objectstorage stores package photos in S3-compatible object
// storage via MinIO. Photos are private; access goes through presigned
// download links with a bounded lifetime.
package objectstorage

import (
	"context"
	"fmt"
	"io"
	"time"

	"freight/internal/core/ports"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the connection settings for the photo bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioPhotoStorage implements PhotoStorage on a MinIO (or any
// S3-compatible) endpoint.
type MinioPhotoStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioPhotoStorage connects to the endpoint and ensures the photo
// bucket exists.
func NewMinioPhotoStorage(ctx context.Context, cfg Config) (*MinioPhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioPhotoStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Put streams one object into the photo bucket under the given key.
func (s *MinioPhotoStorage) Put(
	ctx context.Context,
	key, contentType string,
	size int64,
	body io.Reader,
) (ports.StoredObject, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return ports.StoredObject{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return ports.StoredObject{
		Key:       key,
		SizeBytes: info.Size,
	}, nil
}

// PresignedURL issues a time-limited download link for one stored photo.
func (s *MinioPhotoStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %s: %w", key, err)
	}
	return url.String(), nil
}
