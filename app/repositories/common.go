package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix = "user:"
	PostKeyPrefix = "post:"

	// Index key prefixes enforcing the signup uniqueness constraints.
	// Kept outside the document prefixes so scans over users or posts
	// never pick up index entries.
	EmailIndexPrefix    = "uidx:email:"
	UsernameIndexPrefix = "uidx:name:"
)

func userKey(id string) []byte {
	return []byte(UserKeyPrefix + id)
}

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

func emailIndexKey(email string) []byte {
	return []byte(EmailIndexPrefix + strings.ToLower(email))
}

func usernameIndexKey(username string) []byte {
	return []byte(UsernameIndexPrefix + strings.ToLower(username))
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
