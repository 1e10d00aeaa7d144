package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for books.
type Repository interface {
	// Create inserts a new book and returns it with the generated id.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// ExistsByNaturalKey reports whether a book with the exact
	// (title, genre, publicationYear) combination already exists.
	ExistsByNaturalKey(ctx context.Context, title string, genre Genre, publicationYear int) (bool, error)

	// List returns one page of books matching the specification.
	List(ctx context.Context, spec FilterSpecification) ([]Book, error)

	// Count returns the total number of books matching the
	// specification's filters, ignoring paging.
	Count(ctx context.Context, spec FilterSpecification) (int, error)

	// Update replaces the mutable fields of an existing book.
	Update(ctx context.Context, b *Book) error

	// Delete removes a book by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
