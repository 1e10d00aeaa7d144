package author

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the data access contract for authors.
type Repository interface {
	// Create inserts a new author and returns it with the generated id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// ExistsByNaturalKey reports whether an author with the exact
	// (firstName, lastName, dateOfBirth) combination already exists.
	ExistsByNaturalKey(ctx context.Context, firstName, lastName string, dateOfBirth time.Time) (bool, error)

	// List returns one page of authors matching the specification.
	List(ctx context.Context, spec FilterSpecification) ([]Author, error)

	// Count returns the total number of authors matching the
	// specification's filters, ignoring paging.
	Count(ctx context.Context, spec FilterSpecification) (int, error)

	// Update replaces the mutable fields of an existing author.
	Update(ctx context.Context, a *Author) error

	// Delete removes an author by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
