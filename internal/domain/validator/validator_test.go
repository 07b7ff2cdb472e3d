package validator

import (
	"errors"
	"strings"
	"testing"
)

func validRegistration() Registration {
	return Registration{
		FirstName: "John",
		LastName:  "Doe",
		Username:  "johndoe123",
		Password:  "StrongPass123",
		Email:     "john.doe@example.com",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *Registration)
		wantKind  error
		wantField string
	}{
		{
			name:   "valid input",
			mutate: func(r *Registration) {},
		},
		{
			name:      "missing first name",
			mutate:    func(r *Registration) { r.FirstName = "" },
			wantKind:  ErrMissingField,
			wantField: "first_name",
		},
		{
			name:      "missing last name",
			mutate:    func(r *Registration) { r.LastName = "" },
			wantKind:  ErrMissingField,
			wantField: "last_name",
		},
		{
			name:      "missing username",
			mutate:    func(r *Registration) { r.Username = "" },
			wantKind:  ErrMissingField,
			wantField: "username",
		},
		{
			name:      "missing password",
			mutate:    func(r *Registration) { r.Password = "" },
			wantKind:  ErrMissingField,
			wantField: "password",
		},
		{
			name:      "missing email",
			mutate:    func(r *Registration) { r.Email = "" },
			wantKind:  ErrMissingField,
			wantField: "email",
		},
		{
			name:      "presence checked before length",
			mutate:    func(r *Registration) { r.FirstName = "Jo"; r.Email = "" },
			wantKind:  ErrMissingField,
			wantField: "email",
		},
		{
			name:      "first name too short",
			mutate:    func(r *Registration) { r.FirstName = "Jo" },
			wantKind:  ErrTooShort,
			wantField: "first_name",
		},
		{
			name:      "last name too short",
			mutate:    func(r *Registration) { r.LastName = "Do" },
			wantKind:  ErrTooShort,
			wantField: "last_name",
		},
		{
			name:      "username too short",
			mutate:    func(r *Registration) { r.Username = "jd" },
			wantKind:  ErrTooShort,
			wantField: "username",
		},
		{
			name:      "username too long",
			mutate:    func(r *Registration) { r.Username = strings.Repeat("a", 16) },
			wantKind:  ErrTooLong,
			wantField: "username",
		},
		{
			name:      "password too long",
			mutate:    func(r *Registration) { r.Password = "Aa1" + strings.Repeat("x", 13) },
			wantKind:  ErrPasswordTooLong,
			wantField: "password",
		},
		{
			name:      "username with space",
			mutate:    func(r *Registration) { r.Username = "john doe" },
			wantKind:  ErrUsernameHasSpaces,
			wantField: "username",
		},
		{
			name:      "weak password - no uppercase",
			mutate:    func(r *Registration) { r.Password = "weakpassword1" },
			wantKind:  ErrWeakPassword,
			wantField: "password",
		},
		{
			name:      "weak password - no digit",
			mutate:    func(r *Registration) { r.Password = "WeakPassword" },
			wantKind:  ErrWeakPassword,
			wantField: "password",
		},
		{
			name:      "weak password - too short",
			mutate:    func(r *Registration) { r.Password = "Aa1" },
			wantKind:  ErrWeakPassword,
			wantField: "password",
		},
		{
			name:      "username with punctuation",
			mutate:    func(r *Registration) { r.Username = "john.doe" },
			wantKind:  ErrInvalidUsernameChars,
			wantField: "username",
		},
		{
			name:      "invalid email format",
			mutate:    func(r *Registration) { r.Email = "not-an-email" },
			wantKind:  ErrInvalidEmail,
			wantField: "email",
		},
		{
			name:      "email too long",
			mutate:    func(r *Registration) { r.Email = strings.Repeat("a", 25) + "@example.com" },
			wantKind:  ErrInvalidEmail,
			wantField: "email",
		},
		{
			name:      "space check runs before strength check",
			mutate:    func(r *Registration) { r.Username = "john doe"; r.Password = "weak" },
			wantKind:  ErrUsernameHasSpaces,
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegistration()
			tt.mutate(&r)

			err := ValidateRegistration(r)

			if tt.wantKind == nil {
				if err != nil {
					t.Fatalf("ValidateRegistration() unexpected error = %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("ValidateRegistration() error = %v, want kind %v", err, tt.wantKind)
			}

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, fieldErr.Field)
			}
			if fieldErr.Message == "" {
				t.Error("expected human-readable message")
			}
		})
	}
}

func TestValidateRegistration_EmailErrorIsDistinct(t *testing.T) {
	r := validRegistration()
	r.Email = "broken@"

	err := ValidateRegistration(r)
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if errors.Is(err, ErrInvalidUsernameChars) {
		t.Error("email failures must not surface the username character error")
	}
}

func TestValidateUpload(t *testing.T) {
	rules := UploadRules{
		MaxFileSize:       100,
		AllowedExtensions: []string{".mp4", ".mov"},
	}

	tests := []struct {
		name     string
		title    string
		fileName string
		fileSize int64
		wantKind error
	}{
		{"valid mp4", "Holiday", "clip.mp4", 50, nil},
		{"valid mov uppercase extension", "Holiday", "clip.MOV", 50, nil},
		{"missing title", "", "clip.mp4", 50, ErrMissingField},
		{"title too long", strings.Repeat("a", 256), "clip.mp4", 50, ErrTooLong},
		{"missing file", "Holiday", "", 0, ErrMissingFile},
		{"disallowed extension", "Holiday", "clip.exe", 50, ErrInvalidExtension},
		{"no extension", "Holiday", "clip", 50, ErrInvalidExtension},
		{"oversized file", "Holiday", "clip.mp4", 101, ErrFileTooLarge},
		{"size at limit", "Holiday", "clip.mp4", 100, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.title, tt.fileName, tt.fileSize, rules)

			if tt.wantKind == nil {
				if err != nil {
					t.Fatalf("ValidateUpload() unexpected error = %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantKind) {
				t.Errorf("ValidateUpload() error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}
