package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// PasswordHash holds the one-way hash; the raw password is never stored.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}

var ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

// NewUser creates a new User with a generated identifier.
// Field validation happens in the validator package before construction;
// the constructor only guards against a missing hash slipping through.
func NewUser(firstName, lastName, username, passwordHash, email string) (*User, error) {
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}

	return &User{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		CreatedAt:    time.Now(),
	}, nil
}
