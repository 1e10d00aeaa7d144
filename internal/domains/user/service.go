package user

import (
	"context"

	"github.com/google/uuid"

	"bookgallery-backend/pkg/result"
)

// Service holds registration, login and profile retrieval. Expected
// failures come back inside the Result envelope; the error return is
// reserved for infrastructure faults.
type Service interface {
	// Register creates an account, hashes the password and issues a
	// token for the new user. Duplicate usernames are rejected.
	Register(ctx context.Context, cmd CreateUserCommand) (result.Of[ResponseDto], error)

	// Login verifies credentials and issues a token. A stale password
	// hash is transparently rehashed and persisted on the way through.
	Login(ctx context.Context, cmd LoginCommand) (result.Of[ResponseDto], error)

	// GetByID returns the profile for an authenticated user id.
	GetByID(ctx context.Context, id uuid.UUID) (result.Of[Dto], error)
}
