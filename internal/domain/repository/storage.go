package repository

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrStorageWrite is returned when staging a file fails.
	ErrStorageWrite = errors.New("failed to write file to staging storage")

	// ErrStoragePromotion is returned when promoting a staged file fails.
	ErrStoragePromotion = errors.New("failed to promote staged file to durable storage")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("storage bucket not found")
)

// BlobStorage defines the two-phase upload protocol that decouples
// business logic from the physical location of video files.
// Implementations should be provided by the infrastructure layer
// (e.g., local filesystem, MinIO).
type BlobStorage interface {
	// Stage durably places the file under the given name in the staging
	// area and returns the staged path. The name is derived from a
	// generated identifier, so a staged file is never overwritten.
	// Fails with ErrStorageWrite on I/O failure.
	Stage(ctx context.Context, r io.Reader, name string) (string, error)

	// Promote moves a staged file under the given name to durable storage
	// and returns the durable path. Promotion is idempotent: promoting an
	// already promoted file succeeds. Fails with ErrStoragePromotion on
	// failure, leaving the staged file behind for the cleanup worker.
	Promote(ctx context.Context, stagedPath, name string) (string, error)

	// Remove deletes a file by its path. Used for staged orphans and for
	// best-effort blob removal when a video is deleted.
	Remove(ctx context.Context, path string) error
}
