package handler

import (
	"errors"
	"net/http"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/domain/validator"
	"github.com/hszk-dev/vidshare/internal/usecase"
)

// handleServiceError translates service-layer errors into HTTP responses.
// All handlers share this mapping so the same failure always produces the
// same status code and error code.
func handleServiceError(w http.ResponseWriter, err error) {
	var fieldErr *validator.FieldError
	if errors.As(err, &fieldErr) {
		FieldFailure(w, fieldErr.Field, fieldErr.Message)
		return
	}

	switch {
	case errors.Is(err, model.ErrEmptyTitle),
		errors.Is(err, model.ErrTitleTooLong):
		Error(w, http.StatusBadRequest, "invalid_title", "Title must be between 1 and 255 characters")
	case errors.Is(err, model.ErrEmptyComment),
		errors.Is(err, model.ErrCommentTooLong):
		Error(w, http.StatusBadRequest, "invalid_comment", "Comment must be between 1 and 1000 characters")
	case errors.Is(err, model.ErrInvalidDisposition):
		Error(w, http.StatusBadRequest, "invalid_disposition", `Disposition must be "like" or "dislike"`)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
	case errors.Is(err, repository.ErrUnauthorizedUpload):
		Error(w, http.StatusUnauthorized, "unknown_uploader", "Uploader is not a registered user")
	case errors.Is(err, repository.ErrForbidden):
		Error(w, http.StatusForbidden, "forbidden", "You do not own this resource")
	case errors.Is(err, repository.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "video_not_found", "Video not found")
	case errors.Is(err, repository.ErrUserNotFound):
		Error(w, http.StatusNotFound, "user_not_found", "User not found")
	case errors.Is(err, repository.ErrCommentNotFound):
		Error(w, http.StatusNotFound, "comment_not_found", "Comment not found")
	case errors.Is(err, repository.ErrDuplicateUsername):
		Error(w, http.StatusConflict, "duplicate_username", "Username already taken")
	case errors.Is(err, repository.ErrDuplicateEmail):
		Error(w, http.StatusConflict, "duplicate_email", "Email already registered")
	case errors.Is(err, repository.ErrStorageWrite),
		errors.Is(err, repository.ErrStoragePromotion):
		Error(w, http.StatusBadGateway, "storage_unavailable", "Video storage is unavailable")
	case errors.Is(err, repository.ErrPoolExhausted):
		Error(w, http.StatusServiceUnavailable, "overloaded", "Server is overloaded, try again later")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
