package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

// Local implements repository.BlobStorage on the local filesystem.
// Staging and durable storage are two directories; promotion is a rename,
// which is atomic on the same filesystem.
type Local struct {
	stagingDir string
	durableDir string
}

// NewLocal creates a filesystem-backed blob store, creating both
// directories if they do not exist.
func NewLocal(stagingDir, durableDir string) (*Local, error) {
	for _, dir := range []string{stagingDir, durableDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	return &Local{stagingDir: stagingDir, durableDir: durableDir}, nil
}

// Stage writes the file into the staging directory under the given name.
// O_EXCL refuses to overwrite an existing file with the same name; the
// generated identifier in the name makes that collision practically impossible.
func (l *Local) Stage(ctx context.Context, r io.Reader, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrStorageWrite, err)
	}

	staged := filepath.Join(l.stagingDir, name)

	f, err := os.OpenFile(staged, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %w", repository.ErrStorageWrite, staged, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(staged)
		return "", fmt.Errorf("%w: write %s: %w", repository.ErrStorageWrite, staged, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("%w: close %s: %w", repository.ErrStorageWrite, staged, err)
	}

	return staged, nil
}

// Promote renames the staged file into the durable directory.
// If the staged file is gone but the durable one exists, an earlier
// promotion already succeeded and the call is a no-op.
func (l *Local) Promote(ctx context.Context, stagedPath, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", repository.ErrStoragePromotion, err)
	}

	durable := filepath.Join(l.durableDir, name)

	if err := os.Rename(stagedPath, durable); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if _, statErr := os.Stat(durable); statErr == nil {
				return durable, nil
			}
		}
		return "", fmt.Errorf("%w: rename %s to %s: %w", repository.ErrStoragePromotion, stagedPath, durable, err)
	}

	return durable, nil
}

// Remove deletes a file by path. Removing a missing file is not an error.
func (l *Local) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}
	return nil
}

// Compile-time verification that Local implements repository.BlobStorage.
var _ repository.BlobStorage = (*Local)(nil)
