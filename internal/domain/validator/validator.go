// Package validator implements the field validation rules for user
// registration and video upload. Rules run in declared order and the
// first failing rule short-circuits, so error reporting is deterministic.
package validator

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Rule kinds. Callers branch on these with errors.Is; the message text on
// the wrapping FieldError is for display only.
var (
	ErrMissingField         = errors.New("required field is missing")
	ErrTooShort             = errors.New("field is shorter than the minimum length")
	ErrTooLong              = errors.New("field exceeds the maximum length")
	ErrPasswordTooLong      = errors.New("password exceeds the maximum length")
	ErrUsernameHasSpaces    = errors.New("username must not contain spaces")
	ErrWeakPassword         = errors.New("password does not meet strength requirements")
	ErrInvalidUsernameChars = errors.New("username must be alphanumeric")
	ErrInvalidEmail         = errors.New("email address is not valid")
	ErrMissingFile          = errors.New("file is required")
	ErrInvalidExtension     = errors.New("file extension is not allowed")
	ErrFileTooLarge         = errors.New("file exceeds the maximum size")
)

// FieldError reports which field violated which rule.
type FieldError struct {
	Field   string
	Kind    error
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func fieldErr(field string, kind error, message string) error {
	return &FieldError{Field: field, Kind: kind, Message: message}
}

const (
	minNameLength  = 3
	minPasswordLen = 5
	maxPasswordLen = 15
	maxEmailLength = 30
	maxTitleLength = 255
	minUsernameLen = 3
	maxUsernameLen = 15
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Registration holds the raw candidate values for a registration attempt.
type Registration struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Email     string
}

// ValidateRegistration checks registration fields in declared order:
// presence, then length, then character class, then composite strength.
// The first violated rule is returned.
func ValidateRegistration(r Registration) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"username", r.Username},
		{"password", r.Password},
		{"email", r.Email},
	} {
		if f.value == "" {
			return fieldErr(f.name, ErrMissingField, fmt.Sprintf("%s is required", f.name))
		}
	}

	if len(r.FirstName) < minNameLength {
		return fieldErr("first_name", ErrTooShort, "first name must be at least 3 characters")
	}
	if len(r.LastName) < minNameLength {
		return fieldErr("last_name", ErrTooShort, "last name must be at least 3 characters")
	}
	if len(r.Username) < minUsernameLen {
		return fieldErr("username", ErrTooShort, "username must be at least 3 characters")
	}
	if len(r.Username) > maxUsernameLen {
		return fieldErr("username", ErrTooLong, "username must be at most 15 characters")
	}

	if len(r.Password) > maxPasswordLen {
		return fieldErr("password", ErrPasswordTooLong, "password must be at most 15 characters")
	}

	if strings.ContainsFunc(r.Username, unicode.IsSpace) {
		return fieldErr("username", ErrUsernameHasSpaces, "username must not contain spaces")
	}

	if !strongPassword(r.Password) {
		return fieldErr("password", ErrWeakPassword,
			"password must be 5-15 characters with at least one lowercase letter, one uppercase letter and one digit")
	}

	if !usernameRegex.MatchString(r.Username) {
		return fieldErr("username", ErrInvalidUsernameChars, "username may only contain letters and digits")
	}

	if len(r.Email) > maxEmailLength || !emailRegex.MatchString(r.Email) {
		return fieldErr("email", ErrInvalidEmail, "email must be a valid address of at most 30 characters")
	}

	return nil
}

// strongPassword reports whether the password is 5-15 characters and
// contains at least one lowercase letter, one uppercase letter and one digit.
func strongPassword(password string) bool {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// UploadRules holds the configured constraints for video uploads.
type UploadRules struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// DefaultUploadRules returns the default upload constraints.
func DefaultUploadRules() UploadRules {
	return UploadRules{
		MaxFileSize:       2 << 30, // 2 GiB
		AllowedExtensions: []string{".mp4", ".mov", ".avi", ".mkv", ".webm"},
	}
}

// ValidateUpload checks video title and file constraints in declared order.
// The extension comparison is case-insensitive.
func ValidateUpload(title, fileName string, fileSize int64, rules UploadRules) error {
	if title == "" {
		return fieldErr("title", ErrMissingField, "title is required")
	}
	if len(title) > maxTitleLength {
		return fieldErr("title", ErrTooLong, "title must be at most 255 characters")
	}

	if fileName == "" {
		return fieldErr("file", ErrMissingFile, "a video file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	allowed := false
	for _, e := range rules.AllowedExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return fieldErr("file", ErrInvalidExtension,
			fmt.Sprintf("extension %q is not allowed", ext))
	}

	if fileSize > rules.MaxFileSize {
		return fieldErr("file", ErrFileTooLarge,
			fmt.Sprintf("file exceeds the maximum size of %d bytes", rules.MaxFileSize))
	}

	return nil
}
