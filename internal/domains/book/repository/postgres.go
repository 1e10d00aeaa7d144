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

	"bookgallery-backend/internal/domains/book"
	"bookgallery-backend/pkg/cache"
)

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

// postgresRepository implements book.Repository with pgx and a
// read-through cache on single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, publication_year, genre)
        VALUES ($1, $2, $3)
        RETURNING id, title, publication_year, genre, created_at, updated_at
    `

	var created book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.PublicationYear, b.Genre).Scan(
		&created.ID,
		&created.Title,
		&created.PublicationYear,
		&created.Genre,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var b book.Book
	if hit, err := r.cache.Get(ctx, cacheKey, &b); err == nil && hit {
		return &b, nil
	}

	query := `
        SELECT id, title, publication_year, genre, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.PublicationYear,
		&b.Genre,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) ExistsByNaturalKey(ctx context.Context, title string, genre book.Genre, publicationYear int) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM books
            WHERE title = $1 AND genre = $2 AND publication_year = $3
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, title, genre, publicationYear).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
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
func filterClause(spec book.FilterSpecification) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argPos := 1

	if spec.Genre != nil {
		sb.WriteString(fmt.Sprintf(" AND genre = $%d", argPos))
		args = append(args, *spec.Genre)
		argPos++
	}
	if spec.Title != "" {
		sb.WriteString(fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, escapeLike(spec.Title))
	}

	return sb.String(), args
}

func (r *postgresRepository) List(ctx context.Context, spec book.FilterSpecification) ([]book.Book, error) {
	where, args := filterClause(spec)

	// Stable sort key so pages do not shuffle between calls.
	query := fmt.Sprintf(`
        SELECT id, title, publication_year, genre, created_at, updated_at
        FROM books%s
        ORDER BY id ASC
        LIMIT $%d OFFSET $%d
    `, where, len(args)+1, len(args)+2)
	args = append(args, spec.Limit(), spec.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.PublicationYear,
			&b.Genre,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Count(ctx context.Context, spec book.FilterSpecification) (int, error) {
	where, args := filterClause(spec)

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM books"+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
        UPDATE books
        SET title = $1, publication_year = $2, genre = $3, updated_at = NOW()
        WHERE id = $4
    `

	cmdTag, err := r.pool.Exec(ctx, query, b.Title, b.PublicationYear, b.Genre, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+b.ID.String())

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return nil
}
