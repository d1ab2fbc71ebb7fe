package services

import (
	"encoding/json"
	"testing"

	"minipost/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearchUsers(t *testing.T) *UserService {
	repo := mock.NewUserRepository()
	auth := NewAuthService(repo)
	for _, u := range []struct{ name, email string }{
		{"alice", "alice@example.com"},
		{"Alicia", "alicia@example.com"},
		{"bob", "bob@example.com"},
	} {
		_, err := auth.Signup(u.name, u.email, "pw1")
		require.NoError(t, err)
	}
	return NewUserService(repo)
}

func TestSearchUsersEmptyQuery(t *testing.T) {
	service := setupSearchUsers(t)

	results, err := service.SearchUsers("")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchUsersSubstringMatch(t *testing.T) {
	service := setupSearchUsers(t)

	results, err := service.SearchUsers("ali")
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Contains(t, []string{"alice", "Alicia"}, r.Username)
	}

	results, err = service.SearchUsers("OB")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bob", results[0].Username)

	results, err = service.SearchUsers("zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchUsersNeverExposesPassword(t *testing.T) {
	service := setupSearchUsers(t)

	results, err := service.SearchUsers("alice")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	data, err := json.Marshal(results)
	require.NoError(t, err)

	var fields []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, f := range fields {
		assert.NotContains(t, f, "password")
		assert.Contains(t, f, "_id")
		assert.Contains(t, f, "username")
		assert.Contains(t, f, "email")
	}
}
