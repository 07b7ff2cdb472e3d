package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
)

// CommentRepository defines the interface for comment persistence operations.
type CommentRepository interface {
	// Create persists a new comment entity.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment by its unique identifier.
	// Returns nil and ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByVideo retrieves all comments on a video, oldest first.
	ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error)

	// Delete removes a comment. Returns ErrCommentNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
