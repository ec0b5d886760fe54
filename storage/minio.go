package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/bruxa61/PortfolioRAFA/errs"
)

// MinioConfig carries the object storage connection settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is the externally reachable prefix for stored
	// objects, e.g. "https://cdn.example.com".
	PublicBaseURL string
}

// MinioUploader stores uploads in a MinIO (or S3-compatible) bucket.
type MinioUploader struct {
	client *minio.Client
	bucket string
	public string
}

// NewMinioUploader initializes the MinIO client and ensures the bucket exists.
func NewMinioUploader(cfg MinioConfig) (*MinioUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created storage bucket")
	}

	return &MinioUploader{
		client: client,
		bucket: cfg.Bucket,
		public: cfg.PublicBaseURL,
	}, nil
}

// Upload validates the filename, stores the stream under a generated
// object name and returns the servable URL.
func (u *MinioUploader) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if !AllowedFile(filename) {
		return "", errs.NewValidationError("file", fmt.Sprintf("file type of %q is not allowed", filename))
	}

	object := ObjectName(filename)
	_, err := u.client.PutObject(ctx, u.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: ContentType(filename),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", u.public, u.bucket, object), nil
}
