package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/infrastructure/cache"
	"github.com/hszk-dev/vidshare/internal/infrastructure/metrics"
)

// CachedVideoServiceConfig holds configuration for CachedVideoService.
type CachedVideoServiceConfig struct {
	// CacheTTL is the TTL for cached video metadata.
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService wraps VideoService with caching.
// Cached entries keep the owner and privacy flag, and the privacy mask is
// re-applied on every hit, so the cache is shared across viewers without
// leaking private videos.
type cachedVideoService struct {
	delegate VideoService
	cache    cache.VideoCache
	sfGroup  singleflight.Group

	cacheTTL time.Duration
}

// NewCachedVideoService creates a new CachedVideoService wrapping the provided VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// Upload delegates to the underlying service.
// No caching for uploads: the video is immediately returned.
func (s *cachedVideoService) Upload(ctx context.Context, input UploadVideoInput) (*model.Video, error) {
	return s.delegate.Upload(ctx, input)
}

// Get retrieves video metadata with caching.
// Singleflight coalesces concurrent lookups. The key includes the viewer:
// a private video resolves differently per viewer, and sharing a result
// across viewers could hand a not-found to the owner or worse.
func (s *cachedVideoService) Get(ctx context.Context, videoID, viewerID uuid.UUID) (*model.Video, error) {
	key := videoID.String() + ":" + viewerID.String()
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getWithCache(ctx, videoID, viewerID)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}
	return result.(*model.Video), nil
}

// getWithCache implements the cache-aside pattern with the privacy mask
// re-applied on hits. A hit on a video the viewer cannot see behaves
// exactly like a miss on an absent video.
func (s *cachedVideoService) getWithCache(ctx context.Context, videoID, viewerID uuid.UUID) (*model.Video, error) {
	video, err := s.cache.Get(ctx, videoID)
	if err != nil {
		slog.Warn("cache get failed, falling back to database",
			"video_id", videoID,
			"error", err,
		)
	}

	if video != nil {
		if !video.VisibleTo(viewerID) {
			return nil, repository.ErrVideoNotFound
		}
		return video, nil
	}

	// Cache miss. The repository applies the mask itself, so a private
	// video fetched by a stranger errors here and is never cached.
	video, err = s.delegate.Get(ctx, videoID, viewerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		slog.Warn("failed to cache video",
			"video_id", videoID,
			"error", err,
		)
	}

	return video, nil
}

// ListByOwner delegates to the underlying service. Listings are not
// cached; they change on every upload and the per-video cache already
// absorbs the hot reads.
func (s *cachedVideoService) ListByOwner(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error) {
	return s.delegate.ListByOwner(ctx, ownerID, viewerID)
}

// Update invalidates the cache entry before delegating so a stale copy
// is not served while the row changes.
func (s *cachedVideoService) Update(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	s.invalidate(ctx, input.VideoID)
	return s.delegate.Update(ctx, input)
}

// Delete invalidates the cache entry before delegating.
func (s *cachedVideoService) Delete(ctx context.Context, videoID, actorID uuid.UUID) error {
	s.invalidate(ctx, videoID)
	return s.delegate.Delete(ctx, videoID, actorID)
}

func (s *cachedVideoService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if err := s.cache.Delete(ctx, videoID); err != nil {
		// Invalidation failure is non-critical: the entry expires by TTL.
		slog.Warn("failed to invalidate video cache",
			"video_id", videoID,
			"error", err,
		)
	}
}
