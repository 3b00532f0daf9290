package user

import (
	"strings"

	"blogicum/internal/core/validation"
)

// RegistrationForm is the payload of the sign-up endpoint.
type RegistrationForm struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
}

func (f *RegistrationForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return validation.Struct(f).Err()
}

// ProfileForm is the payload of the profile edit endpoint.
type ProfileForm struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
}

func (f *ProfileForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return validation.Struct(f).Err()
}

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	return validation.Struct(f).Err()
}
