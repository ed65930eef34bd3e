package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/models"
	"github.com/example/cmail/internal/tabular"
	"github.com/example/cmail/internal/validation"
)

// Required bulk-import columns for contact tables.
const (
	contactNameColumn  = "Name"
	contactEmailColumn = "Email"
)

// contactService implements ContactService over the per-owner contact shard.
type contactService struct {
	contacts db.ContactRepository
	log      *zap.Logger
}

// NewContactService creates a ContactService.
func NewContactService(contacts db.ContactRepository, logger *zap.Logger) ContactService {
	return &contactService{contacts: contacts, log: logger}
}

func (s *contactService) AddContact(ctx context.Context, owner, name, email string) (string, error) {
	if owner == "" {
		return "", ErrNotAuthenticated
	}
	if !validation.IsValidEmail(email) {
		return "", ErrInvalidEmail
	}

	id, err := s.contacts.Add(ctx, owner, models.Contact{Name: name, Email: email})
	if err != nil {
		return "", err
	}
	s.log.Info("contact added", zap.String("contact_id", id))
	return id, nil
}

func (s *contactService) ListContacts(ctx context.Context, owner string) ([]models.Contact, error) {
	if owner == "" {
		return nil, ErrNotAuthenticated
	}
	return s.contacts.List(ctx, owner)
}

// UpdateContact overwrites name and email of the addressed record. A missing
// id still reports success: the store applies idempotent overwrite semantics.
func (s *contactService) UpdateContact(ctx context.Context, owner, id, name, email string) error {
	if owner == "" {
		return ErrNotAuthenticated
	}
	if !validation.IsValidEmail(email) {
		return ErrInvalidEmail
	}
	return s.contacts.Update(ctx, owner, id, name, email)
}

func (s *contactService) DeleteContact(ctx context.Context, owner, id string) error {
	if owner == "" {
		return ErrNotAuthenticated
	}
	return s.contacts.Delete(ctx, owner, id)
}

func (s *contactService) DeleteAllContacts(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrNotAuthenticated
	}
	return s.contacts.DeleteAll(ctx, owner)
}

// BulkImport requires "Name" and "Email" columns, then applies AddContact
// row by row. A failing row (invalid email, store write error) is reported
// in its result and skipped; the rest of the batch continues.
func (s *contactService) BulkImport(ctx context.Context, owner string, table *tabular.Table) ([]ImportRowResult, error) {
	if owner == "" {
		return nil, ErrNotAuthenticated
	}
	if !validation.HasRequiredColumn(table, contactNameColumn) || !validation.HasRequiredColumn(table, contactEmailColumn) {
		return nil, fmt.Errorf("%w: contact import requires %q and %q columns",
			ErrImportFormat, contactNameColumn, contactEmailColumn)
	}

	names := table.Column(contactNameColumn)
	emails := table.Column(contactEmailColumn)

	results := make([]ImportRowResult, 0, len(emails))
	for i := range emails {
		row := ImportRowResult{Row: i + 1, Name: names[i], Email: emails[i]}

		id, err := s.AddContact(ctx, owner, names[i], emails[i])
		switch {
		case err == nil:
			row.ContactID = id
		default:
			row.Error = err.Error()
		}
		results = append(results, row)
	}
	return results, nil
}
