package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookgallery-backend/internal/domains/author"
	"bookgallery-backend/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

// postgresRepository implements author.Repository with pgx and a
// read-through cache on single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, date_of_birth)
        VALUES ($1, $2, $3)
        RETURNING id, first_name, last_name, date_of_birth, created_at, updated_at
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.DateOfBirth).Scan(
		&created.ID,
		&created.FirstName,
		&created.LastName,
		&created.DateOfBirth,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a author.Author
	if hit, err := r.cache.Get(ctx, cacheKey, &a); err == nil && hit {
		return &a, nil
	}

	query := `
        SELECT id, first_name, last_name, date_of_birth, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.DateOfBirth,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) ExistsByNaturalKey(ctx context.Context, firstName, lastName string, dateOfBirth time.Time) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM authors
            WHERE first_name = $1 AND last_name = $2 AND date_of_birth = $3
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, firstName, lastName, dateOfBirth).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

// escapeLike neutralizes LIKE metacharacters so filter text matches
// literally inside the surrounding wildcards.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// filterClause builds the WHERE fragment shared by List and Count.
func filterClause(spec author.FilterSpecification) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if spec.FirstName != "" {
		sb.WriteString(fmt.Sprintf(" AND first_name ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, escapeLike(spec.FirstName))
		argPos++
	}
	if spec.LastName != "" {
		sb.WriteString(fmt.Sprintf(" AND last_name ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, escapeLike(spec.LastName))
	}

	return sb.String(), args
}

func (r *postgresRepository) List(ctx context.Context, spec author.FilterSpecification) ([]author.Author, error) {
	where, args := filterClause(spec)

	// Stable sort key so pages do not shuffle between calls.
	query := fmt.Sprintf(`
        SELECT id, first_name, last_name, date_of_birth, created_at, updated_at
        FROM authors%s
        ORDER BY id ASC
        LIMIT $%d OFFSET $%d
    `, where, len(args)+1, len(args)+2)
	args = append(args, spec.Limit(), spec.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(
			&a.ID,
			&a.FirstName,
			&a.LastName,
			&a.DateOfBirth,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Count(ctx context.Context, spec author.FilterSpecification) (int, error) {
	where, args := filterClause(spec)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors"+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	query := `
        UPDATE authors
        SET first_name = $1, last_name = $2, date_of_birth = $3, updated_at = NOW()
        WHERE id = $4
    `

	cmdTag, err := r.pool.Exec(ctx, query, a.FirstName, a.LastName, a.DateOfBirth, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String())

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return nil
}
