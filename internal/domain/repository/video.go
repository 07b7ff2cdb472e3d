package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
)

// VideoRepository defines the interface for video persistence operations.
// Implementations must uphold the privacy contract: a private video is
// only resolvable by its owner, and any other viewer gets ErrVideoNotFound.
type VideoRepository interface {
	// Create persists a new video entity.
	// Returns ErrUnauthorizedUpload when the owner is not a persisted user
	// and ErrDuplicateVideo when the identifier already exists.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its unique identifier as seen by viewerID.
	// A private video read by anyone other than its owner returns
	// ErrVideoNotFound, never ErrForbidden, so existence is not leaked.
	GetByID(ctx context.Context, id, viewerID uuid.UUID) (*model.Video, error)

	// ListByOwner retrieves all videos belonging to a user, newest first.
	// Private videos are included only when viewerID is the owner.
	ListByOwner(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error)

	// Update persists changes to the mutable fields of a video and
	// refreshes its publish timestamp to the update time.
	// Returns ErrVideoNotFound if the video does not exist.
	Update(ctx context.Context, video *model.Video) error

	// Delete removes a video together with its comments and like relations
	// in a single transaction. Returns ErrVideoNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
