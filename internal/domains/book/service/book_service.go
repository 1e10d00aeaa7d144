package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookgallery-backend/internal/domains/book"
	"bookgallery-backend/pkg/result"
)

// bookService implements book.Service on top of the repository.
type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, cmd book.CreateBookCommand) (result.Of[book.Dto], error) {
	entity, err := cmd.ToEntity()
	if err != nil {
		return result.FailureOf[book.Dto]("Invalid enum value."), nil
	}

	exists, err := s.repo.ExistsByNaturalKey(ctx, entity.Title, entity.Genre, entity.PublicationYear)
	if err != nil {
		return result.Of[book.Dto]{}, err
	}
	if exists {
		return result.FailureOf[book.Dto](fmt.Sprintf(
			"Cannot create %s: the book with such title, genre and publication year already exists",
			entity.Title)), nil
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return result.Of[book.Dto]{}, err
	}

	return result.SuccessData(created.ToDto()), nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (result.Of[book.Dto], error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return result.NotFoundOf[book.Dto](book.NotFoundMessage), nil
		}
		return result.Of[book.Dto]{}, err
	}

	return result.SuccessData(b.ToDto()), nil
}

func (s *bookService) List(ctx context.Context, spec book.FilterSpecification) (result.PagedResult[book.Dto], error) {
	books, err := s.repo.List(ctx, spec)
	if err != nil {
		return result.PagedResult[book.Dto]{}, err
	}

	total, err := s.repo.Count(ctx, spec)
	if err != nil {
		return result.PagedResult[book.Dto]{}, err
	}

	dtos := make([]book.Dto, len(books))
	for i, b := range books {
		dtos[i] = b.ToDto()
	}

	return result.NewPagedResult(dtos, spec.PageNumber, spec.PageSize, total), nil
}

// Update replaces the book in full after an existence check. Unlike
// Create, it does not guard the natural key; an update may collide with
// another book's title, genre and year.
func (s *bookService) Update(ctx context.Context, cmd book.UpdateBookCommand) (result.Result, error) {
	entity, err := cmd.ToEntity()
	if err != nil {
		return result.Failure("Invalid enum value."), nil
	}

	if _, err := s.repo.GetByID(ctx, cmd.BookID); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return result.NotFound(book.NotFoundMessage), nil
		}
		return result.Result{}, err
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return result.Result{}, err
	}

	return result.Success(), nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (result.Result, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return result.NotFound(book.NotFoundMessage), nil
		}
		return result.Result{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}

	return result.Success(), nil
}
