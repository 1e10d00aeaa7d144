package book

import (
	"context"

	"github.com/google/uuid"

	"bookgallery-backend/pkg/result"
)

// Service holds the book command and query handlers. Expected failures
// come back inside the Result envelope; the error return is reserved
// for infrastructure faults.
type Service interface {
	// Create rejects commands whose natural key duplicates an
	// existing book.
	Create(ctx context.Context, cmd CreateBookCommand) (result.Of[Dto], error)

	// GetByID returns a not-found failure for unknown ids.
	GetByID(ctx context.Context, id uuid.UUID) (result.Of[Dto], error)

	// List runs the paged filter specification.
	List(ctx context.Context, spec FilterSpecification) (result.PagedResult[Dto], error)

	// Update replaces an existing book in full. The natural-key
	// duplicate check is intentionally not re-run here.
	Update(ctx context.Context, cmd UpdateBookCommand) (result.Result, error)

	// Delete removes a book by id.
	Delete(ctx context.Context, id uuid.UUID) (result.Result, error)
}
