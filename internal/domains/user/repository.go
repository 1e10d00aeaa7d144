package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for user accounts.
type Repository interface {
	// Create inserts a new user and returns it with the generated id.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByID returns ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername returns ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Update replaces the mutable fields of an existing user,
	// including the password hash.
	Update(ctx context.Context, u *User) error
}
