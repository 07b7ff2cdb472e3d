package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

// mockUserRepository provides a configurable mock for UserRepository.
type mockUserRepository struct {
	createFn        func(ctx context.Context, user *model.User) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*model.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, repository.ErrUserNotFound
}

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn      func(ctx context.Context, video *model.Video) error
	getByIDFn     func(ctx context.Context, id, viewerID uuid.UUID) (*model.Video, error)
	listByOwnerFn func(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error)
	updateFn      func(ctx context.Context, video *model.Video) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id, viewerID uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, viewerID)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoRepository) ListByOwner(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID, viewerID)
	}
	return nil, nil
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn      func(ctx context.Context, comment *model.Comment) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	listByVideoFn func(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrCommentNotFound
}

func (m *mockCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	if m.listByVideoFn != nil {
		return m.listByVideoFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockLikeRepository provides a configurable mock for LikeRepository.
type mockLikeRepository struct {
	toggleFn       func(ctx context.Context, userID, videoID uuid.UUID, disposition model.Disposition) (model.Disposition, error)
	getFn          func(ctx context.Context, userID, videoID uuid.UUID) (model.Disposition, error)
	countByVideoFn func(ctx context.Context, videoID uuid.UUID) (repository.LikeCounts, error)
}

func (m *mockLikeRepository) Toggle(ctx context.Context, userID, videoID uuid.UUID, disposition model.Disposition) (model.Disposition, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, userID, videoID, disposition)
	}
	return disposition, nil
}

func (m *mockLikeRepository) Get(ctx context.Context, userID, videoID uuid.UUID) (model.Disposition, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, videoID)
	}
	return model.DispositionNone, nil
}

func (m *mockLikeRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (repository.LikeCounts, error) {
	if m.countByVideoFn != nil {
		return m.countByVideoFn(ctx, videoID)
	}
	return repository.LikeCounts{}, nil
}

// mockBlobStorage provides a configurable mock for BlobStorage.
type mockBlobStorage struct {
	stageFn   func(ctx context.Context, r io.Reader, name string) (string, error)
	promoteFn func(ctx context.Context, stagedPath, name string) (string, error)
	removeFn  func(ctx context.Context, path string) error
}

func (m *mockBlobStorage) Stage(ctx context.Context, r io.Reader, name string) (string, error) {
	if m.stageFn != nil {
		return m.stageFn(ctx, r, name)
	}
	return "staging/" + name, nil
}

func (m *mockBlobStorage) Promote(ctx context.Context, stagedPath, name string) (string, error) {
	if m.promoteFn != nil {
		return m.promoteFn(ctx, stagedPath, name)
	}
	return "videos/" + name, nil
}

func (m *mockBlobStorage) Remove(ctx context.Context, path string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, path)
	}
	return nil
}

// mockMessageQueue provides a configurable mock for MessageQueue.
type mockMessageQueue struct {
	publishCleanupTaskFn  func(ctx context.Context, task repository.CleanupTask) error
	consumeCleanupTasksFn func(ctx context.Context, handler func(task repository.CleanupTask) error) error
}

func (m *mockMessageQueue) PublishCleanupTask(ctx context.Context, task repository.CleanupTask) error {
	if m.publishCleanupTaskFn != nil {
		return m.publishCleanupTaskFn(ctx, task)
	}
	return nil
}

func (m *mockMessageQueue) ConsumeCleanupTasks(ctx context.Context, handler func(task repository.CleanupTask) error) error {
	if m.consumeCleanupTasksFn != nil {
		return m.consumeCleanupTasksFn(ctx, handler)
	}
	return nil
}

func (m *mockMessageQueue) Close() error {
	return nil
}

// mockVideoCache provides a configurable mock for cache.VideoCache.
type mockVideoCache struct {
	getFn    func(ctx context.Context, videoID uuid.UUID) (*model.Video, error)
	setFn    func(ctx context.Context, video *model.Video, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID uuid.UUID) error
}

func (m *mockVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	return nil
}
