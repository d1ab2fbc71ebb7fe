package services

import (
	"fmt"

	"minipost/app/models"
	"minipost/app/repositories"
)

// PostService handles business logic for feed posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a new post with validation. The post starts with
// empty likes and comments regardless of what the caller sent.
// Text-or-image presence is a client-side rule; the server accepts a
// post with neither, matching the original behavior.
func (s *PostService) CreatePost(post *models.Post) error {
	post.Likes = []string{}
	post.Comments = []models.Comment{}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.postRepo.Create(post)
}

// ListPosts retrieves the full feed, newest first. No pagination:
// full-scan semantics are accepted at this scope.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// ToggleLike flips the caller's membership in the post's likes set
// and returns the updated post.
func (s *PostService) ToggleLike(postID, userID string) (*models.Post, error) {
	return s.postRepo.ToggleLike(postID, userID)
}

// AddComment appends a comment to the post and returns the updated post.
func (s *PostService) AddComment(postID, username, text string) (*models.Post, error) {
	comment := models.Comment{
		Username: username,
		Text:     text,
	}
	return s.postRepo.AddComment(postID, comment)
}
