package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKeyHelpers(t *testing.T) {
	require.Equal(t, "user:abc", string(userKey("abc")))
	require.Equal(t, "post:abc", string(postKey("abc")))

	// Index keys are case-folded so uniqueness is case-insensitive.
	require.Equal(t, "uidx:email:alice@example.com", string(emailIndexKey("Alice@Example.COM")))
	require.Equal(t, "uidx:name:alice", string(usernameIndexKey("Alice")))
}
