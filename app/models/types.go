package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account.
//
// Password is stored and echoed back in plaintext. That matches the
// behavior this service reproduces and is deliberately NOT fixed here;
// see README before deploying anything that resembles production.
type User struct {
	ID        string    `json:"_id" validate:"-"`
	Username  string    `json:"username" validate:"required,min=2,max=40"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"-"`
}

// PublicUser is the projection of a User safe to return from search.
// It never carries the password.
type PublicUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post represents a feed post with embedded likes and comments.
type Post struct {
	ID         string    `json:"_id" validate:"-"`
	Author     string    `json:"author" validate:"required"`
	AuthorName string    `json:"authorName" validate:"-"`
	Text       string    `json:"text" validate:"-"`
	Image      string    `json:"image" validate:"-"`
	Likes      []string  `json:"likes" validate:"-"`
	Comments   []Comment `json:"comments" validate:"-"`
	CreatedAt  time.Time `json:"createdAt" validate:"-"`
	UpdatedAt  time.Time `json:"updatedAt" validate:"-"`
}

// Comment lives embedded in its post's comment sequence, append-only.
type Comment struct {
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
