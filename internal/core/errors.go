package core

import "errors"

// Service-level errors. Provider and store failures keep their own
// sentinels (internal/mail, internal/db); identity failures keep theirs
// (internal/identity). The API layer maps all of them onto HTTP statuses.
var (
	// ErrInvalidEmail indicates a syntactically invalid email address.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrNotAuthenticated indicates no owner identity was supplied.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrWeakPassword indicates the signup password is below the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters long")
	// ErrUnknownProvider indicates the requested delivery backend is not registered.
	ErrUnknownProvider = errors.New("unknown mail provider")
	// ErrNoRecipients indicates a send was attempted with an empty recipient set.
	ErrNoRecipients = errors.New("at least one recipient is required")
	// ErrImportFormat indicates an uploaded table is missing a required column.
	ErrImportFormat = errors.New("import table is missing a required column")
)
