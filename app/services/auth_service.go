package services

import (
	"errors"
	"fmt"

	"minipost/app/models"
	"minipost/app/repositories"
)

// AuthService handles signup and login.
//
// There is no session or token layer: login is a single credential
// check whose response the client trusts for the lifetime of the page.
// That gap is inherited from the system this one reproduces and is
// flagged in the README rather than fixed here.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup creates a new user with validation. The password is stored
// verbatim and the created record, password included, is returned to
// the caller (preserved, flagged weakness).
func (s *AuthService) Signup(username, email, password string) (*models.User, error) {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks a user up by exact match on email and password. Any
// mismatch collapses to ErrInvalidCredentials, never "not found".
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByCredentials(email, password)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
