package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Video represents an uploaded video entity in the domain.
type Video struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Credits     string
	IsPublic    bool
	StoragePath string
	PublishedAt time.Time
	CreatedAt   time.Time
}

var (
	ErrInvalidOwner = errors.New("owner ID cannot be nil")
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title exceeds maximum length of 255 characters")
)

const maxTitleLength = 255

// NewVideo creates a new Video with a generated identifier.
// The publish timestamp is set at creation and refreshed on every update.
func NewVideo(ownerID uuid.UUID, title, description, credits string, isPublic bool) (*Video, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Credits:     credits,
		IsPublic:    isPublic,
		PublishedAt: now,
		CreatedAt:   now,
	}, nil
}

// ValidateTitle checks the title constraints shared by creation and update.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// SetStoragePath records the opaque storage reference returned by the blob store.
func (v *Video) SetStoragePath(path string) {
	v.StoragePath = path
}

// VisibleTo reports whether the video may be resolved by the given viewer.
// Private videos are only visible to their owner.
func (v *Video) VisibleTo(viewerID uuid.UUID) bool {
	return v.IsPublic || v.OwnerID == viewerID
}

// Touch refreshes the publish timestamp after a metadata update.
func (v *Video) Touch() {
	v.PublishedAt = time.Now()
}
