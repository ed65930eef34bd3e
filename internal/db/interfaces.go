package db

import (
	"context"

	"github.com/example/cmail/internal/models"
)

// All repositories shard their data by the owner's email address; the
// concrete implementations derive the storage key with SanitizeOwnerKey.
// List operations return an empty slice, not an error, when a shard is empty.

// ContactRepository defines the storage operations for address-book entries.
type ContactRepository interface {
	// Add appends a contact under the owner's shard and returns the generated id.
	Add(ctx context.Context, owner string, contact models.Contact) (string, error)
	List(ctx context.Context, owner string) ([]models.Contact, error)
	// Update overwrites the name and email of the record addressed by id.
	// A missing id is not an error; the store's overwrite semantics apply.
	Update(ctx context.Context, owner, id, name, email string) error
	Delete(ctx context.Context, owner, id string) error
	// DeleteAll removes the owner's entire contact shard.
	DeleteAll(ctx context.Context, owner string) error
}

// TemplateRepository defines the storage operations for message templates.
type TemplateRepository interface {
	Add(ctx context.Context, owner string, tpl models.Template) (string, error)
	List(ctx context.Context, owner string) ([]models.Template, error)
	// Update merges new content and subject into the template; the name is
	// immutable after creation.
	Update(ctx context.Context, owner, id, content, subject string) error
	Delete(ctx context.Context, owner, id string) error
}

// DeliveryLogRepository is the append-only per-owner delivery log.
// No delete operation is exposed; entries are terminal once written.
type DeliveryLogRepository interface {
	Append(ctx context.Context, owner string, entry models.DeliveryLogEntry) error
	List(ctx context.Context, owner string) ([]models.DeliveryLogEntry, error)
}

// UserRepository defines the storage operations for account records.
type UserRepository interface {
	// Create writes the account record keyed by the identity provider's uid.
	Create(ctx context.Context, user models.User) error
	// EmailExists reports whether any account record carries the given email.
	EmailExists(ctx context.Context, email string) (bool, error)
}
