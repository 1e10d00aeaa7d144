package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Author is the domain entity. The natural key (FirstName, LastName,
// DateOfBirth) is checked on create; ID is the generated identity.
type Author struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Dto is the wire representation of an author.
type Dto struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

// ToDto converts the entity to its wire representation.
func (a *Author) ToDto() Dto {
	return Dto{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: a.DateOfBirth,
	}
}

// CreateAuthorCommand creates a new author.
type CreateAuthorCommand struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func (c CreateAuthorCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FirstName,
			validation.Required.Error("First name is required."),
			validation.RuneLength(0, 50).Error("First name cannot exceed 50 characters.")),
		validation.Field(&c.LastName,
			validation.Required.Error("Last name is required."),
			validation.RuneLength(0, 50).Error("Last name cannot exceed 50 characters.")),
		validation.Field(&c.DateOfBirth,
			validation.Required.Error("Date of birth is required."),
			validation.Max(time.Now()).Exclusive().Error("Date of birth must be in the past.")),
	)
}

// ToEntity maps the command onto a new entity. The id stays zero until
// the repository generates one.
func (c CreateAuthorCommand) ToEntity() *Author {
	return &Author{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth,
	}
}

// UpdateAuthorCommand fully replaces the name fields and date of birth
// of an existing author.
type UpdateAuthorCommand struct {
	AuthorID    uuid.UUID `json:"authorId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func (c UpdateAuthorCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FirstName,
			validation.Required.Error("First name is required."),
			validation.RuneLength(0, 50).Error("First name cannot exceed 50 characters.")),
		validation.Field(&c.LastName,
			validation.Required.Error("Last name is required."),
			validation.RuneLength(0, 50).Error("Last name cannot exceed 50 characters.")),
		validation.Field(&c.DateOfBirth,
			validation.Required.Error("Date of birth is required."),
			validation.Max(time.Now()).Exclusive().Error("Date of birth must be in the past.")),
	)
}

func (c UpdateAuthorCommand) ToEntity() *Author {
	return &Author{
		ID:          c.AuthorID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth,
	}
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// FilterSpecification is the declarative query the list endpoint hands
// to the repository: optional substring filters plus paging.
type FilterSpecification struct {
	FirstName  string
	LastName   string
	PageNumber int
	PageSize   int
}

// NewFilterSpecification builds a specification with sane paging:
// page numbers start at 1 and the page size is clamped.
func NewFilterSpecification(firstName, lastName string, pageNumber, pageSize int) FilterSpecification {
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
		FirstName:  firstName,
		LastName:   lastName,
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
