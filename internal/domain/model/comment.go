package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Comment represents a user comment on a video.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt time.Time
}

var (
	ErrEmptyComment   = errors.New("comment text cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length of 1000 characters")
	ErrInvalidAuthor  = errors.New("author ID cannot be nil")
)

const maxCommentLength = 1000

// NewComment creates a new Comment with a generated identifier.
func NewComment(videoID, authorID uuid.UUID, text string) (*Comment, error) {
	if authorID == uuid.Nil {
		return nil, ErrInvalidAuthor
	}
	if text == "" {
		return nil, ErrEmptyComment
	}
	if len(text) > maxCommentLength {
		return nil, ErrCommentTooLong
	}

	return &Comment{
		ID:        uuid.New(),
		VideoID:   videoID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}, nil
}

// AuthoredBy reports whether the given user wrote this comment.
func (c *Comment) AuthoredBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}
