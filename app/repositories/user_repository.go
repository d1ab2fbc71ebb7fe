package repositories

import (
	"strings"

	"minipost/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user. The email and username index entries are
// written in the same transaction as the document, so a duplicate on
// either field fails with ErrConflict before anything is stored.
func (r *BadgerUserRepository) Create(user *models.User) error {
	user.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		emailKey := emailIndexKey(user.Email)
		if _, err := txn.Get(emailKey); err == nil {
			return ErrConflict
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		nameKey := usernameIndexKey(user.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return ErrConflict
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		if err := txn.Set(emailKey, []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(nameKey, []byte(user.ID))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials looks a user up by exact match on email AND
// password as a single combined query. A wrong email and a wrong
// password are indistinguishable: both return ErrNotFound.
func (r *BadgerUserRepository) FindByCredentials(email, password string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailIndexKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		}); err != nil {
			return err
		}

		if user.Password != password {
			return ErrNotFound
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Search retrieves all users whose username contains the query as a
// case-insensitive substring. An empty query matches nothing.
func (r *BadgerUserRepository) Search(query string) ([]*models.User, error) {
	users := []*models.User{}
	if query == "" {
		return users, nil
	}
	needle := strings.ToLower(query)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return err
			}
			if strings.Contains(strings.ToLower(user.Username), needle) {
				u := user
				users = append(users, &u)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
