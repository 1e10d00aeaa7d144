package author

import (
	"context"

	"github.com/google/uuid"

	"bookgallery-backend/pkg/result"
)

// Service holds the author command and query handlers. Expected
// failures come back inside the Result envelope; the error return is
// reserved for infrastructure faults.
type Service interface {
	// Create rejects commands whose natural key duplicates an
	// existing author.
	Create(ctx context.Context, cmd CreateAuthorCommand) (result.Of[Dto], error)

	// GetByID returns a not-found failure for unknown ids.
	GetByID(ctx context.Context, id uuid.UUID) (result.Of[Dto], error)

	// List runs the paged filter specification. List and count are two
	// independent queries; they may observe different snapshots under
	// concurrent writers.
	List(ctx context.Context, spec FilterSpecification) (result.PagedResult[Dto], error)

	// Update replaces an existing author in full. The natural-key
	// duplicate check is intentionally not re-run here.
	Update(ctx context.Context, cmd UpdateAuthorCommand) (result.Result, error)

	// Delete removes an author by id.
	Delete(ctx context.Context, id uuid.UUID) (result.Result, error)
}
