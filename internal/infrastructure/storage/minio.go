package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

const (
	stagingPrefix = "staging"
	durablePrefix = "videos"
)

// minioClient defines the interface for the MinIO operations the blob
// store needs. This abstraction allows for easier unit testing with mocks.
type minioClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// minioClientAdapter wraps *minio.Client to implement the minioClient interface.
type minioClientAdapter struct {
	client *minio.Client
}

func (a *minioClientAdapter) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return a.client.BucketExists(ctx, bucketName)
}

func (a *minioClientAdapter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return a.client.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

func (a *minioClientAdapter) CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error) {
	return a.client.CopyObject(ctx, dst, src)
}

func (a *minioClientAdapter) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return a.client.RemoveObject(ctx, bucketName, objectName, opts)
}

func (a *minioClientAdapter) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return a.client.StatObject(ctx, bucketName, objectName, opts)
}

// ClientConfig holds configuration for the MinIO client.
type ClientConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Client implements repository.BlobStorage on a MinIO bucket.
// Staged files live under the staging/ prefix; promotion is a server-side
// copy into the videos/ prefix, so the durable write never re-reads the
// file through this process.
type Client struct {
	client minioClient
	bucket string
}

// NewClient creates a new MinIO-backed blob store.
// It verifies the bucket exists during initialization to fail fast on misconfiguration.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return newClientWithMinioClient(ctx, &minioClientAdapter{client: client}, cfg.Bucket)
}

// newClientWithMinioClient creates a Client with a given minioClient implementation.
// This is used for dependency injection in tests.
func newClientWithMinioClient(ctx context.Context, client minioClient, bucket string) (*Client, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", repository.ErrBucketNotFound, bucket)
	}

	return &Client{client: client, bucket: bucket}, nil
}

// Stage durably places the file under the staging prefix.
// The name derives from a generated identifier, so collisions do not occur
// in practice and no overwrite guard is needed beyond the name itself.
func (c *Client) Stage(ctx context.Context, r io.Reader, name string) (string, error) {
	key := path.Join(stagingPrefix, name)

	_, err := c.client.PutObject(ctx, c.bucket, key, r, -1, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %w", repository.ErrStorageWrite, key, err)
	}

	return key, nil
}

// Promote copies the staged object to its durable key and removes the
// staged copy. Promotion is idempotent: if the staged object is gone but
// the durable one exists, an earlier promotion already succeeded.
func (c *Client) Promote(ctx context.Context, stagedPath, name string) (string, error) {
	durableRef := path.Join(durablePrefix, name)
	dst := minio.CopyDestOptions{Bucket: c.bucket, Object: durableRef}
	src := minio.CopySrcOptions{Bucket: c.bucket, Object: stagedPath}

	if _, err := c.client.CopyObject(ctx, dst, src); err != nil {
		if _, statErr := c.client.StatObject(ctx, c.bucket, durableRef, minio.StatObjectOptions{}); statErr == nil {
			return durableRef, nil
		}
		return "", fmt.Errorf("%w: copy %s to %s: %w", repository.ErrStoragePromotion, stagedPath, durableRef, err)
	}

	// The staged copy is no longer needed. Failure here leaves a harmless
	// orphan that the cleanup worker removes.
	_ = c.client.RemoveObject(ctx, c.bucket, stagedPath, minio.RemoveObjectOptions{})

	return durableRef, nil
}

// Remove deletes an object. Removing a missing object is not an error.
func (c *Client) Remove(ctx context.Context, objectPath string) error {
	err := c.client.RemoveObject(ctx, c.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return fmt.Errorf("failed to remove object %s: %w", objectPath, err)
	}
	return nil
}

// Ping verifies the MinIO connection is alive by checking bucket access.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to ping minio: %w", err)
	}
	return nil
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// Compile-time verification that Client implements repository.BlobStorage.
var _ repository.BlobStorage = (*Client)(nil)
