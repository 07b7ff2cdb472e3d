package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/infrastructure/metrics"
)

// LikeState describes a user's relation to a video together with the
// video's aggregate like counts.
type LikeState struct {
	Disposition model.Disposition
	Counts      repository.LikeCounts
}

// LikeService defines the interface for like-relation business logic.
type LikeService interface {
	// Toggle applies invert semantics: submitting the current disposition
	// clears it, submitting the opposite replaces it. Returns the
	// resulting state.
	Toggle(ctx context.Context, userID, videoID uuid.UUID, disposition model.Disposition) (*LikeState, error)

	// Get retrieves the viewer's disposition and the video's counts.
	Get(ctx context.Context, viewerID, videoID uuid.UUID) (*LikeState, error)
}

type likeService struct {
	likes  repository.LikeRepository
	videos repository.VideoRepository
}

// NewLikeService creates a new LikeService instance.
func NewLikeService(likes repository.LikeRepository, videos repository.VideoRepository) LikeService {
	return &likeService{
		likes:  likes,
		videos: videos,
	}
}

// Toggle applies the invert semantics for the (user, video) pair.
// The video is resolved first with the privacy mask, so a user cannot
// rate a private video they cannot see.
func (s *likeService) Toggle(ctx context.Context, userID, videoID uuid.UUID, disposition model.Disposition) (*LikeState, error) {
	if !disposition.IsSubmittable() {
		return nil, model.ErrInvalidDisposition
	}

	if _, err := s.videos.GetByID(ctx, videoID, userID); err != nil {
		return nil, err
	}

	result, err := s.likes.Toggle(ctx, userID, videoID, disposition)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	metrics.LikeTogglesTotal.WithLabelValues(string(result)).Inc()

	counts, err := s.likes.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &LikeState{Disposition: result, Counts: counts}, nil
}

// Get retrieves the viewer's disposition and the video's counts.
func (s *likeService) Get(ctx context.Context, viewerID, videoID uuid.UUID) (*LikeState, error) {
	if _, err := s.videos.GetByID(ctx, videoID, viewerID); err != nil {
		return nil, err
	}

	disposition, err := s.likes.Get(ctx, viewerID, videoID)
	if err != nil {
		return nil, fmt.Errorf("get disposition: %w", err)
	}

	counts, err := s.likes.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	return &LikeState{Disposition: disposition, Counts: counts}, nil
}
