package routes

import (
	"net/http"

	"minipost/app/controllers"
	"minipost/app/middleware"
	"minipost/web"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a handler,
// using the provided Badger DB.
func SetupRoutes(db *badger.DB) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.MaxBody)

	authController := controllers.NewAuthControllerWithDB(db)
	postController := controllers.NewPostControllerWithDB(db)
	userController := controllers.NewUserControllerWithDB(db)

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Auth API endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", authController.Signup).Methods("POST")
	auth.HandleFunc("/login", authController.Login).Methods("POST")

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}/like", postController.Like).Methods("POST")
	posts.HandleFunc("/{id}/comment", postController.Comment).Methods("POST")

	// User search API endpoint
	api.HandleFunc("/users/search", userController.Search).Methods("GET")

	// Serve the single-page client for everything else
	router.PathPrefix("/").Handler(web.Handler())

	// The client may be served from a different origin than the API.
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)
}

// StartServer starts the HTTP server on the specified address with the given handler.
func StartServer(addr string, handler http.Handler) error {
	return http.ListenAndServe(addr, handler)
}
