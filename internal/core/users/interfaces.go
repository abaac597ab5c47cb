package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) error

	// GetByID returns ErrUserNotFound if no user has the given id
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail returns ErrUserNotFound if no user has the given email
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Service defines the interface for user business logic
type Service interface {
	// Register creates an account with a bcrypt-hashed password
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and returns the account.
	// Fails with ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*User, error)
}
