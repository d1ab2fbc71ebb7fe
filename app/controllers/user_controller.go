package controllers

import (
	"net/http"

	"minipost/app/repositories"
	"minipost/app/services"

	"github.com/dgraph-io/badger/v4"
)

// UserController handles HTTP requests for user search
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// NewUserControllerWithDB creates a new UserController with a DB instance
func NewUserControllerWithDB(db *badger.DB) *UserController {
	userRepo := repositories.NewBadgerUserRepository(db)
	return &UserController{userService: services.NewUserService(userRepo)}
}

// Search handles GET /api/users/search?q=. Responses are projected to
// {_id, username, email}; an empty query yields an empty list.
func (uc *UserController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	users, err := uc.userService.SearchUsers(query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search users: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, users)
}
