package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
)

// UserRepository defines the interface for user persistence operations.
// Implementations should be provided by the infrastructure layer (e.g., PostgreSQL).
type UserRepository interface {
	// Create persists a new user entity.
	// Returns ErrDuplicateUsername or ErrDuplicateEmail when the
	// corresponding uniqueness constraint is violated.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by its unique identifier.
	// Returns nil and ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByUsername retrieves a user by username.
	// Returns nil and ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
