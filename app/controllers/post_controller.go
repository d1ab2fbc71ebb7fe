package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"minipost/app/models"
	"minipost/app/repositories"
	"minipost/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for the feed
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// NewPostControllerWithDB creates a new PostController with a DB instance
func NewPostControllerWithDB(db *badger.DB) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	return &PostController{postService: services.NewPostService(postRepo)}
}

type likeRequest struct {
	UserID string `json:"userId"`
}

type commentRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Index handles GET /api/posts: the full feed, newest first.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch posts: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

// Create handles POST /api/posts.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if err := pc.postService.CreatePost(&post); err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondError(w, http.StatusBadRequest, "Invalid post: "+err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create post: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

// Like handles POST /api/posts/{id}/like with toggle semantics.
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.ToggleLike(vars["id"], req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to toggle like: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, post)
}

// Comment handles POST /api/posts/{id}/comment.
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.AddComment(vars["id"], req.Username, req.Text)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to add comment: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, post)
}
