package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
}

// Public returns the search projection of the user, without the password.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// CheckPassword compares the given password against the stored one.
// Plain string comparison: the store keeps passwords verbatim.
func (u *User) CheckPassword(password string) error {
	if u.Password != password {
		return errors.New("password mismatch")
	}
	return nil
}
