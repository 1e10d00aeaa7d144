package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookgallery-backend/internal/domains/author"
	"bookgallery-backend/pkg/result"
)

// authorService implements author.Service on top of the repository.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, cmd author.CreateAuthorCommand) (result.Of[author.Dto], error) {
	entity := cmd.ToEntity()

	exists, err := s.repo.ExistsByNaturalKey(ctx, entity.FirstName, entity.LastName, entity.DateOfBirth)
	if err != nil {
		return result.Of[author.Dto]{}, err
	}
	if exists {
		return result.FailureOf[author.Dto](fmt.Sprintf(
			"Cannot create %s %s: the author with such name and date birth already exists",
			entity.LastName, entity.FirstName)), nil
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return result.Of[author.Dto]{}, err
	}

	return result.SuccessData(created.ToDto()), nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (result.Of[author.Dto], error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return result.NotFoundOf[author.Dto](author.NotFoundMessage), nil
		}
		return result.Of[author.Dto]{}, err
	}

	return result.SuccessData(a.ToDto()), nil
}

func (s *authorService) List(ctx context.Context, spec author.FilterSpecification) (result.PagedResult[author.Dto], error) {
	authors, err := s.repo.List(ctx, spec)
	if err != nil {
		return result.PagedResult[author.Dto]{}, err
	}

	total, err := s.repo.Count(ctx, spec)
	if err != nil {
		return result.PagedResult[author.Dto]{}, err
	}

	dtos := make([]author.Dto, len(authors))
	for i, a := range authors {
		dtos[i] = a.ToDto()
	}

	return result.NewPagedResult(dtos, spec.PageNumber, spec.PageSize, total), nil
}

// Update replaces the author in full after an existence check. Unlike
// Create, it does not guard the natural key; an update may collide with
// another author's name and birth date.
func (s *authorService) Update(ctx context.Context, cmd author.UpdateAuthorCommand) (result.Result, error) {
	if _, err := s.repo.GetByID(ctx, cmd.AuthorID); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return result.NotFound(author.NotFoundMessage), nil
		}
		return result.Result{}, err
	}

	if err := s.repo.Update(ctx, cmd.ToEntity()); err != nil {
		return result.Result{}, err
	}

	return result.Success(), nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (result.Result, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return result.NotFound(author.NotFoundMessage), nil
		}
		return result.Result{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return result.Result{}, err
	}

	return result.Success(), nil
}
