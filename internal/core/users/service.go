package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Usernames: alphanumeric plus hyphens and underscores, 3-32 chars
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

const minPasswordLength = 8

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// Register creates an account with a bcrypt-hashed password
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := validateRegisterRequest(&req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// Repository maps unique constraint violations to the taken errors
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials against the stored bcrypt hash
func (s *userService) Login(ctx context.Context, req LoginRequest) (*User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by id
func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func validateRegisterRequest(req *RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Username == "" {
		return NewValidationError("username", "username is required")
	}
	if !usernameRegex.MatchString(req.Username) {
		return NewValidationError("username",
			"must be 3-32 characters of letters, digits, hyphens or underscores")
	}

	if req.Email == "" {
		return NewValidationError("email", "email is required")
	}
	at := strings.Index(req.Email, "@")
	if at < 1 || at == len(req.Email)-1 {
		return NewValidationError("email", "invalid email address")
	}

	if len(req.Password) < minPasswordLength {
		return NewValidationError("password",
			fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	return nil
}
