package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
)

// LikeCounts holds the number of likes and dislikes on a video.
type LikeCounts struct {
	Likes    int64
	Dislikes int64
}

// LikeRepository defines the interface for like-relation persistence.
// At most one record exists per (user, video) pair, enforced by the engine.
type LikeRepository interface {
	// Toggle applies invert semantics for the (user, video) pair and
	// returns the resulting disposition. The transition must be a single
	// atomic update so a concurrent reader never observes an absence
	// window between the old and the new state.
	Toggle(ctx context.Context, userID, videoID uuid.UUID, disposition model.Disposition) (model.Disposition, error)

	// Get retrieves the current disposition for the pair.
	// Returns DispositionNone when no record exists.
	Get(ctx context.Context, userID, videoID uuid.UUID) (model.Disposition, error)

	// CountByVideo returns the like and dislike totals for a video.
	CountByVideo(ctx context.Context, videoID uuid.UUID) (LikeCounts, error)
}
