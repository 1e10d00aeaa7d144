package book

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Book is the domain entity. The natural key (Title, Genre,
// PublicationYear) is checked on create. There is no author linkage in
// the current model.
type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	Genre           Genre     `json:"genre" db:"genre"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Dto is the wire representation of a book.
type Dto struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publicationYear"`
	Genre           string    `json:"genre"`
}

func (b *Book) ToDto() Dto {
	return Dto{
		ID:              b.ID,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		Genre:           b.Genre.String(),
	}
}

// CreateBookCommand creates a new book. Genre arrives as a string and
// is parsed against the closed enumeration.
type CreateBookCommand struct {
	Title           string `json:"title"`
	PublicationYear int    `json:"publicationYear"`
	Genre           string `json:"genre"`
}

func (c CreateBookCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title,
			validation.Required.Error("Title is required."),
			validation.RuneLength(0, 100).Error("Title cannot exceed 100 characters.")),
		validation.Field(&c.PublicationYear, yearBetween(800)),
		validation.Field(&c.Genre, validGenre()),
	)
}

func (c CreateBookCommand) ToEntity() (*Book, error) {
	genre, err := ParseGenre(c.Genre)
	if err != nil {
		return nil, err
	}
	return &Book{
		Title:           c.Title,
		PublicationYear: c.PublicationYear,
		Genre:           genre,
	}, nil
}

// UpdateBookCommand fully replaces an existing book.
type UpdateBookCommand struct {
	BookID          uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	PublicationYear int       `json:"publicationYear"`
	Genre           string    `json:"genre"`
}

// Validate applies the update rules. The year floor is tighter here
// than on create; the create path accepts medieval years.
func (c UpdateBookCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title,
			validation.Required.Error("Title is required."),
			validation.RuneLength(0, 100).Error("Title cannot exceed 100 characters.")),
		validation.Field(&c.PublicationYear, yearBetween(1500)),
		validation.Field(&c.Genre, validGenre()),
	)
}

func (c UpdateBookCommand) ToEntity() (*Book, error) {
	genre, err := ParseGenre(c.Genre)
	if err != nil {
		return nil, err
	}
	return &Book{
		ID:              c.BookID,
		Title:           c.Title,
		PublicationYear: c.PublicationYear,
		Genre:           genre,
	}, nil
}

// yearBetween bounds a publication year between min and the current
// year, inclusive.
func yearBetween(min int) validation.Rule {
	max := time.Now().Year()
	return validation.By(func(value interface{}) error {
		year, _ := value.(int)
		if year < min || year > max {
			return fmt.Errorf("Publication year must be between %d and %d.", min, max)
		}
		return nil
	})
}

// validGenre accepts only names from the closed enumeration.
func validGenre() validation.Rule {
	return validation.By(func(value interface{}) error {
		name, _ := value.(string)
		if _, err := ParseGenre(name); err != nil {
			return fmt.Errorf("Invalid enum value.")
		}
		return nil
	})
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// FilterSpecification is the paged book query: optional exact genre,
// optional title substring, and paging.
type FilterSpecification struct {
	Genre      *Genre
	Title      string
	PageNumber int
	PageSize   int
}

// NewFilterSpecification builds a specification with clamped paging. A
// nil genre imposes no genre predicate.
func NewFilterSpecification(genre *Genre, title string, pageNumber, pageSize int) FilterSpecification {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return FilterSpecification{
		Genre:      genre,
		Title:      title,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}

func (s FilterSpecification) Offset() int {
	return (s.PageNumber - 1) * s.PageSize
}

func (s FilterSpecification) Limit() int {
	return s.PageSize
}
