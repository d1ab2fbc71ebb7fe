package services

import (
	"minipost/app/models"
	"minipost/app/repositories"
)

// UserService handles user search
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SearchUsers returns the users whose username contains the query as a
// case-insensitive substring, projected without passwords. An empty
// query returns an empty list without touching the store.
func (s *UserService) SearchUsers(query string) ([]models.PublicUser, error) {
	results := []models.PublicUser{}
	if query == "" {
		return results, nil
	}

	users, err := s.userRepo.Search(query)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		results = append(results, user.Public())
	}
	return results, nil
}
