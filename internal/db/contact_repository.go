package db

import (
	"context"
	"fmt"
	"sort"

	rtdb "firebase.google.com/go/v4/db"

	"github.com/example/cmail/internal/models"
)

const contactsCollection = "contacts"

// rtdbContactRepository implements ContactRepository on the Realtime Database.
type rtdbContactRepository struct {
	client *rtdb.Client
}

// NewContactRepository creates a ContactRepository backed by the Realtime Database.
func NewContactRepository(client *rtdb.Client) ContactRepository {
	return &rtdbContactRepository{client: client}
}

func (r *rtdbContactRepository) shard(owner string) *rtdb.Ref {
	return r.client.NewRef(contactsCollection + "/" + SanitizeOwnerKey(owner))
}

func (r *rtdbContactRepository) Add(ctx context.Context, owner string, contact models.Contact) (string, error) {
	contact.ID = "" // the push key is the id; never persist it inside the record
	ref, err := r.shard(owner).Push(ctx, contact)
	if err != nil {
		return "", fmt.Errorf("%w: failed to add contact: %v", ErrStoreWrite, err)
	}
	return ref.Key, nil
}

func (r *rtdbContactRepository) List(ctx context.Context, owner string) ([]models.Contact, error) {
	var raw map[string]models.Contact
	if err := r.shard(owner).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to list contacts: %v", ErrStoreRead, err)
	}

	contacts := make([]models.Contact, 0, len(raw))
	for id, c := range raw {
		c.ID = id
		contacts = append(contacts, c)
	}
	// Push keys are chronologically ordered, so sorting by id preserves
	// insertion order.
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })
	return contacts, nil
}

func (r *rtdbContactRepository) Update(ctx context.Context, owner, id, name, email string) error {
	err := r.shard(owner).Child(id).Update(ctx, map[string]interface{}{
		"name":  name,
		"email": email,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to update contact %s: %v", ErrStoreWrite, id, err)
	}
	return nil
}

func (r *rtdbContactRepository) Delete(ctx context.Context, owner, id string) error {
	if err := r.shard(owner).Child(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: failed to delete contact %s: %v", ErrStoreWrite, id, err)
	}
	return nil
}

func (r *rtdbContactRepository) DeleteAll(ctx context.Context, owner string) error {
	if err := r.shard(owner).Delete(ctx); err != nil {
		return fmt.Errorf("%w: failed to clear contacts: %v", ErrStoreWrite, err)
	}
	return nil
}
