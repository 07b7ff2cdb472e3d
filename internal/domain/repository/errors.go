package repository

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrVideoNotFound is returned when a video cannot be found.
	// Privacy-masked reads of private videos return this error too,
	// so callers cannot distinguish "hidden" from "absent".
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when a comment cannot be found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrDuplicateUsername is returned when the username uniqueness constraint is violated.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrDuplicateEmail is returned when the email uniqueness constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateVideo is returned when attempting to create a video that already exists.
	ErrDuplicateVideo = errors.New("video already exists")

	// ErrUnauthorizedUpload is returned when a video references an owner
	// that is not a persisted user.
	ErrUnauthorizedUpload = errors.New("video owner is not a registered user")

	// ErrForbidden is returned when the acting user does not own the resource.
	ErrForbidden = errors.New("operation not permitted for this user")

	// ErrPoolExhausted is returned when a connection could not be acquired
	// from the pool within the configured wait time.
	ErrPoolExhausted = errors.New("connection pool exhausted")
)
