package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// User is the account entity. Username is the natural key checked on
// registration; PasswordHash never leaves this package's repositories.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	DateOfBirth  time.Time `json:"date_of_birth" db:"date_of_birth"`
	Address      string    `json:"address" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Dto is the wire representation of a user. It carries no credential
// material.
type Dto struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Address     string    `json:"address"`
}

func (u *User) ToDto() Dto {
	return Dto{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Address:     u.Address,
	}
}

// ResponseDto pairs a freshly issued token with the user it
// authenticates. Both register and login return this shape.
type ResponseDto struct {
	Token string `json:"token"`
	User  Dto    `json:"user"`
}

// CreateUserCommand registers a new account. Password arrives as
// plaintext and is hashed before persistence.
type CreateUserCommand struct {
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Address     string    `json:"address"`
}

func (c CreateUserCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username,
			validation.Required.Error("Username is required."),
			validation.RuneLength(3, 0).Error("Username must be at least 3 characters long."),
			validation.RuneLength(0, 50).Error("Username cannot exceed 50 characters.")),
		validation.Field(&c.Password,
			validation.Required.Error("Password is required."),
			validation.RuneLength(6, 0).Error("Password must be at least 6 characters long."),
			validation.RuneLength(0, 100).Error("Password cannot exceed 100 characters.")),
		validation.Field(&c.FirstName,
			validation.Required.Error("First name is required."),
			validation.RuneLength(0, 50).Error("First name cannot exceed 50 characters.")),
		validation.Field(&c.LastName,
			validation.Required.Error("Last name is required."),
			validation.RuneLength(0, 50).Error("Last name cannot exceed 50 characters.")),
		validation.Field(&c.DateOfBirth,
			validation.Required.Error("Date of birth is required."),
			validation.Max(time.Now()).Exclusive().Error("Date of birth must be in the past.")),
		validation.Field(&c.Address,
			validation.Required.Error("Address is required."),
			validation.RuneLength(0, 250).Error("Address cannot exceed 250 characters.")),
	)
}

// ToEntity maps the command onto a new entity. The password hash is
// filled in by the service.
func (c CreateUserCommand) ToEntity() *User {
	return &User{
		Username:    c.Username,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DateOfBirth,
		Address:     c.Address,
	}
}

// LoginCommand authenticates an existing account.
type LoginCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c LoginCommand) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username,
			validation.Required.Error("Username is required."),
			validation.RuneLength(3, 0).Error("Username must be at least 3 characters long."),
			validation.RuneLength(0, 50).Error("Username cannot exceed 50 characters.")),
		validation.Field(&c.Password,
			validation.Required.Error("Password is required."),
			validation.RuneLength(6, 0).Error("Password must be at least 6 characters long."),
			validation.RuneLength(0, 100).Error("Password cannot exceed 100 characters.")),
	)
}
