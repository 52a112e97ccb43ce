package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Column limits; the schema enforces the same bounds.
const (
	MaxUsernameLength    = 70
	MaxEmailLength       = 200
	MaxDescriptionLength = 1024
	MaxPasswordLength    = 300
)

// Author is a post writer. Authors are created out of band (cmd/seed);
// no handler updates or deletes them.
type Author struct {
	ID          int64  `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Email       string `json:"email" db:"email"`
	Description string `json:"description" db:"description"`
	// Stored as given; no hashing scheme is defined while there is no
	// authentication surface.
	Password string `json:"-" db:"password"`
}

// CreateAuthorRequest carries the fields for out-of-band author creation.
type CreateAuthorRequest struct {
	Username    string
	Email       string
	Description string
	Password    string
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, MaxUsernameLength),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(1, MaxEmailLength),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, MaxPasswordLength),
		),
	)
}

// ToEntity converts the request to an Author entity.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Username:    r.Username,
		Email:       r.Email,
		Description: r.Description,
		Password:    r.Password,
	}
}
