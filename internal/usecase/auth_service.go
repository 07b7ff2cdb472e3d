package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/domain/validator"
)

// ErrInvalidCredentials is returned on login when the username is unknown
// or the password does not match. The two cases are deliberately not
// distinguished so callers cannot probe for registered usernames.
var ErrInvalidCredentials = errors.New("invalid username or password")

// RegisterInput contains the raw candidate fields for a registration attempt.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Email     string
}

// LoginInput contains the credentials for a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// AuthOutput contains the authenticated user and a signed access token.
type AuthOutput struct {
	User  *model.User
	Token string
}

// AuthService defines the interface for account registration and login.
type AuthService interface {
	// Register validates the candidate fields in declared order, hashes
	// the password and persists the account. Validation failures surface
	// as *validator.FieldError; uniqueness violations surface as
	// repository.ErrDuplicateUsername or repository.ErrDuplicateEmail.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues a signed access token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// DefaultAuthServiceConfig returns the default configuration.
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		TokenTTL:   24 * time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}
}

type authService struct {
	users repository.UserRepository

	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserRepository, cfg AuthServiceConfig) AuthService {
	return &authService{
		users:      users,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register validates, hashes and persists a new account.
// The password is hashed only after every validation rule has passed, so
// a rejected attempt never burns a bcrypt round.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if err := validator.ValidateRegistration(validator.Registration{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
	}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := model.NewUser(input.FirstName, input.LastName, input.Username, string(hash), input.Email)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}

// Login verifies credentials and issues a signed access token.
func (s *authService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}

func (s *authService) generateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
