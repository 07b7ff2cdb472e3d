package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/domain/validator"
	"github.com/hszk-dev/vidshare/internal/infrastructure/metrics"
)

// UploadVideoInput contains the input parameters for uploading a video.
type UploadVideoInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Credits     string
	IsPublic    bool
	FileName    string
	FileSize    int64
	File        io.Reader
}

// UpdateVideoInput contains the mutable fields of a video. Nil fields
// are left unchanged.
type UpdateVideoInput struct {
	VideoID     uuid.UUID
	ActorID     uuid.UUID
	Title       *string
	Description *string
	Credits     *string
	IsPublic    *bool
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// Upload validates the file, runs the two-phase store (stage, then
	// promote) and persists the metadata last. Metadata is never written
	// for a file that did not reach durable storage.
	Upload(ctx context.Context, input UploadVideoInput) (*model.Video, error)

	// Get retrieves a video as seen by viewerID. A private video read by
	// anyone other than its owner returns repository.ErrVideoNotFound.
	Get(ctx context.Context, videoID, viewerID uuid.UUID) (*model.Video, error)

	// ListByOwner retrieves a user's videos, newest first, applying the
	// same privacy mask as Get.
	ListByOwner(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error)

	// Update applies the given changes and refreshes the publish
	// timestamp. Only the owner may update; others get
	// repository.ErrForbidden (or ErrVideoNotFound for private videos).
	Update(ctx context.Context, input UpdateVideoInput) (*model.Video, error)

	// Delete removes the video, its comments and like relations in one
	// transaction, then removes the blob best-effort.
	Delete(ctx context.Context, videoID, actorID uuid.UUID) error
}

// VideoServiceConfig holds configuration for VideoService.
type VideoServiceConfig struct {
	UploadRules validator.UploadRules
}

// DefaultVideoServiceConfig returns the default configuration.
func DefaultVideoServiceConfig() VideoServiceConfig {
	return VideoServiceConfig{
		UploadRules: validator.DefaultUploadRules(),
	}
}

type videoService struct {
	repo    repository.VideoRepository
	storage repository.BlobStorage
	queue   repository.MessageQueue

	uploadRules validator.UploadRules
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	repo repository.VideoRepository,
	storage repository.BlobStorage,
	queue repository.MessageQueue,
	cfg VideoServiceConfig,
) VideoService {
	return &videoService{
		repo:        repo,
		storage:     storage,
		queue:       queue,
		uploadRules: cfg.UploadRules,
	}
}

// Upload runs the two-phase upload pipeline.
// Ordering is the core invariant here: the file reaches durable storage
// before any metadata row exists, so a crash at any point leaves at worst
// an orphaned file, never a metadata row pointing at nothing.
func (s *videoService) Upload(ctx context.Context, input UploadVideoInput) (*model.Video, error) {
	if err := validator.ValidateUpload(input.Title, input.FileName, input.FileSize, s.uploadRules); err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.UploadStageValidate, metrics.UploadStatusError).Inc()
		return nil, err
	}

	video, err := model.NewVideo(input.OwnerID, input.Title, input.Description, input.Credits, input.IsPublic)
	if err != nil {
		return nil, err
	}

	name := s.storedFileName(video.ID, input.FileName)

	staged, err := s.storage.Stage(ctx, input.File, name)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.UploadStageStage, metrics.UploadStatusError).Inc()
		return nil, fmt.Errorf("stage file: %w", err)
	}

	durable, err := s.storage.Promote(ctx, staged, name)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.UploadStagePromote, metrics.UploadStatusError).Inc()
		s.scheduleCleanup(ctx, video.ID, staged, "promotion failed")
		return nil, fmt.Errorf("promote file: %w", err)
	}

	video.SetStoragePath(durable)

	if err := s.repo.Create(ctx, video); err != nil {
		metrics.UploadsTotal.WithLabelValues(metrics.UploadStagePersist, metrics.UploadStatusError).Inc()
		// The blob is durable but has no metadata row. Remove it now,
		// falling back to the cleanup worker if removal fails too.
		if rmErr := s.storage.Remove(ctx, durable); rmErr != nil {
			s.scheduleCleanup(ctx, video.ID, durable, "persist failed after promotion")
		}
		return nil, fmt.Errorf("create video: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues(metrics.UploadStagePersist, metrics.UploadStatusSuccess).Inc()
	return video, nil
}

// Get retrieves a video as seen by viewerID.
func (s *videoService) Get(ctx context.Context, videoID, viewerID uuid.UUID) (*model.Video, error) {
	return s.repo.GetByID(ctx, videoID, viewerID)
}

// ListByOwner retrieves a user's videos as seen by viewerID.
func (s *videoService) ListByOwner(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error) {
	return s.repo.ListByOwner(ctx, ownerID, viewerID)
}

// Update applies changes to a video owned by the actor.
func (s *videoService) Update(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, input.VideoID, input.ActorID)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != input.ActorID {
		return nil, repository.ErrForbidden
	}

	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.Description != nil {
		video.Description = *input.Description
	}
	if input.Credits != nil {
		video.Credits = *input.Credits
	}
	if input.IsPublic != nil {
		video.IsPublic = *input.IsPublic
	}

	if err := model.ValidateTitle(video.Title); err != nil {
		return nil, err
	}

	video.Touch()

	if err := s.repo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}

	return video, nil
}

// Delete removes a video owned by the actor together with its comments
// and like relations, then removes the blob. Blob removal is best-effort:
// the metadata is already gone, so a leftover file is only an orphan.
func (s *videoService) Delete(ctx context.Context, videoID, actorID uuid.UUID) error {
	video, err := s.repo.GetByID(ctx, videoID, actorID)
	if err != nil {
		return err
	}
	if video.OwnerID != actorID {
		return repository.ErrForbidden
	}

	if err := s.repo.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	if video.StoragePath != "" {
		if err := s.storage.Remove(ctx, video.StoragePath); err != nil {
			s.scheduleCleanup(ctx, videoID, video.StoragePath, "blob removal after delete failed")
		}
	}

	return nil
}

// scheduleCleanup hands an orphaned file to the maintenance worker.
// Publish failure is logged, not returned: the caller's error is the one
// that matters and the orphan is harmless until swept.
func (s *videoService) scheduleCleanup(ctx context.Context, videoID uuid.UUID, path, reason string) {
	task := repository.CleanupTask{
		VideoID:    videoID,
		StagedPath: path,
		Reason:     reason,
	}
	if err := s.queue.PublishCleanupTask(ctx, task); err != nil {
		slog.Warn("failed to publish cleanup task",
			"video_id", videoID,
			"staged_path", path,
			"error", err,
		)
	}
}

// storedFileName derives the stored name from the generated identifier
// and the original extension. Format: {video_id}{ext}
func (s *videoService) storedFileName(videoID uuid.UUID, original string) string {
	return videoID.String() + strings.ToLower(filepath.Ext(original))
}
