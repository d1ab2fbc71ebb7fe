package repositories

import "minipost/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	FindByCredentials(email, password string) (*models.User, error)
	Search(query string) ([]*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	ToggleLike(postID, userID string) (*models.Post, error)
	AddComment(postID string, comment models.Comment) (*models.Post, error)
}
