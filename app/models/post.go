package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// HasLike reports whether userID is present in the post's likes set.
func (p *Post) HasLike(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike flips membership of userID in the likes set and reports
// whether the post is liked by userID afterwards. The set invariant is
// enforced here: at most one entry per user, duplicates are collapsed.
func (p *Post) ToggleLike(userID string) bool {
	if p.HasLike(userID) {
		likes := p.Likes[:0]
		for _, id := range p.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		p.Likes = likes
		p.UpdatedAt = time.Now()
		return false
	}
	p.Likes = append(p.Likes, userID)
	p.UpdatedAt = time.Now()
	return true
}

// AddComment appends a comment to the post's comment sequence.
func (p *Post) AddComment(comment Comment) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	p.Comments = append(p.Comments, comment)
	p.UpdatedAt = time.Now()
}
