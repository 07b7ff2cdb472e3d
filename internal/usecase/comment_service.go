package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

// CommentService defines the interface for comment business logic.
// Every operation first resolves the video as seen by the acting user,
// so comments on a private video are as invisible as the video itself.
type CommentService interface {
	// Add posts a comment on a video visible to the author.
	Add(ctx context.Context, videoID, authorID uuid.UUID, text string) (*model.Comment, error)

	// List retrieves the comments on a video visible to the viewer,
	// oldest first.
	List(ctx context.Context, videoID, viewerID uuid.UUID) ([]*model.Comment, error)

	// Delete removes a comment. Only its author may delete it; anyone
	// else gets repository.ErrForbidden.
	Delete(ctx context.Context, commentID, actorID uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository) CommentService {
	return &commentService{
		comments: comments,
		videos:   videos,
	}
}

// Add posts a comment on a video the author can see.
func (s *commentService) Add(ctx context.Context, videoID, authorID uuid.UUID, text string) (*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID, authorID); err != nil {
		return nil, err
	}

	comment, err := model.NewComment(videoID, authorID, text)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// List retrieves the comments on a video the viewer can see.
func (s *commentService) List(ctx context.Context, videoID, viewerID uuid.UUID) ([]*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID, viewerID); err != nil {
		return nil, err
	}
	return s.comments.ListByVideo(ctx, videoID)
}

// Delete removes a comment authored by the actor.
func (s *commentService) Delete(ctx context.Context, commentID, actorID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !comment.AuthoredBy(actorID) {
		return repository.ErrForbidden
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
