package db

import (
	"context"
	"fmt"

	rtdb "firebase.google.com/go/v4/db"

	"github.com/example/cmail/internal/models"
)

const usersCollection = "users"

// rtdbUserRepository implements UserRepository on the Realtime Database.
// Account records are keyed by the identity provider's uid, not by the
// sanitized email: the uid is already unique and stable.
type rtdbUserRepository struct {
	client *rtdb.Client
}

// NewUserRepository creates a UserRepository backed by the Realtime Database.
func NewUserRepository(client *rtdb.Client) UserRepository {
	return &rtdbUserRepository{client: client}
}

func (r *rtdbUserRepository) Create(ctx context.Context, user models.User) error {
	if user.ID == "" {
		return fmt.Errorf("%w: user id cannot be empty", ErrStoreWrite)
	}
	record := models.User{Email: user.Email, CreatedAt: user.CreatedAt}
	if err := r.client.NewRef(usersCollection+"/"+user.ID).Set(ctx, record); err != nil {
		return fmt.Errorf("%w: failed to create user %s: %v", ErrStoreWrite, user.ID, err)
	}
	return nil
}

// EmailExists enumerates the account registry and compares emails. The
// registry is small relative to the per-user collections, so a full read is
// acceptable here and mirrors how duplicate signups were always detected.
func (r *rtdbUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var users map[string]models.User
	if err := r.client.NewRef(usersCollection).Get(ctx, &users); err != nil {
		return false, fmt.Errorf("%w: failed to enumerate users: %v", ErrStoreRead, err)
	}
	for _, u := range users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
