package routes

import (
	"net/http"
	"testing"

	"minipost/app/models"

	"github.com/stretchr/testify/require"
)

func TestAuthRoutes(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("signup creates a user", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/auth/signup", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "pw1",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var user models.User
		decodeBody(t, w, &user)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice", user.Username)
		// Preserved weakness: the record echoes the plaintext password.
		require.Equal(t, "pw1", user.Password)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/auth/signup", map[string]string{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "pw2",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		require.Equal(t, "User already exists or data invalid", body["message"])
	})

	t.Run("login succeeds with matching credentials", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "pw1",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var user models.User
		decodeBody(t, w, &user)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password is invalid credentials, not not-found", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		require.Equal(t, "Invalid credentials", body["message"])
	})
}

func TestPostRoutes(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("empty feed encodes as an empty array", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.JSONEq(t, "[]", w.Body.String())
	})

	var postID string

	t.Run("create post", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/posts", map[string]string{
			"author":     "alice-id",
			"authorName": "alice",
			"text":       "hello",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var post models.Post
		decodeBody(t, w, &post)
		require.NotEmpty(t, post.ID)
		require.Equal(t, "hello", post.Text)
		require.Empty(t, post.Likes)
		require.Empty(t, post.Comments)
		postID = post.ID
	})

	t.Run("feed returns newest first", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/posts", map[string]string{
			"author":     "alice-id",
			"authorName": "alice",
			"text":       "second",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, "GET", "/api/posts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var posts []models.Post
		decodeBody(t, w, &posts)
		require.Len(t, posts, 2)
		require.Equal(t, "second", posts[0].Text)
		require.Equal(t, "hello", posts[1].Text)
	})

	t.Run("like toggles on and off", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/posts/"+postID+"/like", map[string]string{
			"userId": "bob-id",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		decodeBody(t, w, &post)
		require.Equal(t, []string{"bob-id"}, post.Likes)

		w = doJSON(t, router, "POST", "/api/posts/"+postID+"/like", map[string]string{
			"userId": "bob-id",
		})
		require.Equal(t, http.StatusOK, w.Code)
		decodeBody(t, w, &post)
		require.Empty(t, post.Likes)
	})

	t.Run("comment appends", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/posts/"+postID+"/comment", map[string]string{
			"username": "bob",
			"text":     "hi",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var post models.Post
		decodeBody(t, w, &post)
		require.Len(t, post.Comments, 1)
		require.Equal(t, "bob", post.Comments[0].Username)
		require.Equal(t, "hi", post.Comments[0].Text)
	})

	t.Run("like and comment on a missing post are 404", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/posts/nope/like", map[string]string{
			"userId": "bob-id",
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, router, "POST", "/api/posts/nope/comment", map[string]string{
			"username": "bob",
			"text":     "hi",
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		decodeBody(t, w, &body)
		require.Equal(t, "Post not found", body["message"])
	})
}

func TestSearchRoute(t *testing.T) {
	router := setupTestRouter(t)

	for _, u := range []map[string]string{
		{"username": "alice", "email": "alice@example.com", "password": "pw1"},
		{"username": "bob", "email": "bob@example.com", "password": "pw2"},
	} {
		w := doJSON(t, router, "POST", "/api/auth/signup", u)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("empty query returns an empty list", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/users/search", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("matches are projected without passwords", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/users/search?q=LIC", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var results []map[string]interface{}
		decodeBody(t, w, &results)
		require.Len(t, results, 1)
		require.Equal(t, "alice", results[0]["username"])
		require.Contains(t, results[0], "_id")
		require.Contains(t, results[0], "email")
		require.NotContains(t, results[0], "password")
	})

	t.Run("non-matching query returns an empty list", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/users/search?q=zzz", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

// TestFeedScenario walks the whole flow end to end: signup, login,
// post, like toggle, comment, search.
func TestFeedScenario(t *testing.T) {
	router := setupTestRouter(t)

	var alice, bob models.User
	w := doJSON(t, router, "POST", "/api/auth/signup", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "pw1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &alice)

	w = doJSON(t, router, "POST", "/api/auth/signup", map[string]string{
		"username": "bob", "email": "bob@example.com", "password": "pw2",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &bob)

	w = doJSON(t, router, "POST", "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var loggedIn models.User
	decodeBody(t, w, &loggedIn)
	require.Equal(t, alice.ID, loggedIn.ID)

	w = doJSON(t, router, "POST", "/api/posts", map[string]string{
		"author": alice.ID, "authorName": "alice", "text": "hello",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post models.Post
	decodeBody(t, w, &post)

	w = doJSON(t, router, "GET", "/api/posts", nil)
	var feed []models.Post
	decodeBody(t, w, &feed)
	require.NotEmpty(t, feed)
	require.Equal(t, post.ID, feed[0].ID)

	w = doJSON(t, router, "POST", "/api/posts/"+post.ID+"/like", map[string]string{"userId": bob.ID})
	decodeBody(t, w, &post)
	require.Equal(t, []string{bob.ID}, post.Likes)

	w = doJSON(t, router, "POST", "/api/posts/"+post.ID+"/like", map[string]string{"userId": bob.ID})
	decodeBody(t, w, &post)
	require.Empty(t, post.Likes)

	w = doJSON(t, router, "POST", "/api/posts/"+post.ID+"/comment", map[string]string{
		"username": "bob", "text": "hi",
	})
	decodeBody(t, w, &post)
	require.Len(t, post.Comments, 1)
	require.Equal(t, "bob", post.Comments[0].Username)
	require.Equal(t, "hi", post.Comments[0].Text)
}

func TestClientIsServed(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, "GET", "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "<div id=\"root\">")

	w = doJSON(t, router, "GET", "/app.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "fetchPosts")
}
