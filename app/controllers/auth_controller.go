package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"minipost/app/repositories"
	"minipost/app/services"

	"github.com/dgraph-io/badger/v4"
)

// AuthController handles HTTP requests for signup and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// NewAuthControllerWithDB creates a new AuthController with a DB instance
func NewAuthControllerWithDB(db *badger.DB) *AuthController {
	userRepo := repositories.NewBadgerUserRepository(db)
	return &AuthController{authService: services.NewAuthService(userRepo)}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup. The created record is echoed
// back verbatim, plaintext password included (preserved behavior).
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "User already exists or data invalid")
		return
	}

	user, err := ac.authService.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) || errors.Is(err, services.ErrValidation) {
			respondError(w, http.StatusBadRequest, "User already exists or data invalid")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login. Any mismatch answers 400
// "Invalid credentials", never "not found".
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	user, err := ac.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to log in: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, user)
}
