package core

import (
	"context"
	"time"

	"github.com/example/cmail/internal/models"
	"github.com/example/cmail/internal/tabular"
)

// IdentityProvider is the slice of the external identity service the auth
// service depends on. Satisfied by identity.Client.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
}

// AuthService handles account creation and credential verification.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
}

// ContactService manages the owner-scoped address book.
type ContactService interface {
	AddContact(ctx context.Context, owner, name, email string) (string, error)
	ListContacts(ctx context.Context, owner string) ([]models.Contact, error)
	UpdateContact(ctx context.Context, owner, id, name, email string) error
	DeleteContact(ctx context.Context, owner, id string) error
	DeleteAllContacts(ctx context.Context, owner string) error
	// BulkImport adds one contact per table row, collecting a per-row
	// outcome. Rows with invalid emails are reported and skipped; the batch
	// continues.
	BulkImport(ctx context.Context, owner string, table *tabular.Table) ([]ImportRowResult, error)
}

// ImportRowResult is the outcome of one bulk-import row.
type ImportRowResult struct {
	Row       int    `json:"row"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ContactID string `json:"contactId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// TemplateService manages the owner-scoped reusable message templates.
type TemplateService interface {
	AddTemplate(ctx context.Context, owner, name, content, subject string) (string, error)
	ListTemplates(ctx context.Context, owner string) ([]models.Template, error)
	UpdateTemplate(ctx context.Context, owner, id, content, subject string) error
	DeleteTemplate(ctx context.Context, owner, id string) error
	// LoadDefaults inserts the fixed default template set. Calling it twice
	// duplicates the set; there is deliberately no idempotence guard.
	LoadDefaults(ctx context.Context, owner string) ([]string, error)
}

// MailingService composes and dispatches batch sends, immediately or deferred,
// and writes the per-recipient delivery log.
type MailingService interface {
	// ResolveRecipients merges a typed-in comma-separated list, explicitly
	// selected addresses, and an optional uploaded table with a lowercase
	// "email" column into a de-duplicated, order-preserving recipient set.
	// Invalid addresses are returned separately, not treated as an error.
	ResolveRecipients(typedIn string, explicit []string, table *tabular.Table) (valid []string, invalid []string, err error)
	SendNow(ctx context.Context, owner, provider, subject, body string, recipients []string) (*SendSummary, error)
	// ScheduleSend defers the batch until due. A due time not in the future
	// is rejected before any timer starts or log entry is written.
	ScheduleSend(ctx context.Context, owner, provider, subject, body string, recipients []string, due time.Time) (string, error)
	ProviderNames() []string
}

// FailedRecipient pairs a rejected recipient with the failure detail.
type FailedRecipient struct {
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

// SendSummary is the aggregate success/failure split of one batch send.
type SendSummary struct {
	Provider string            `json:"provider"`
	Sent     []string          `json:"sent"`
	Failed   []FailedRecipient `json:"failed"`
}

// DashboardStats are the per-status counters rendered on the dashboard.
type DashboardStats struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Scheduled int `json:"scheduled"`
}

// DashboardService reads the delivery log back for rendering.
type DashboardService interface {
	ReadLog(ctx context.Context, owner string) ([]models.DeliveryLogEntry, error)
	Stats(ctx context.Context, owner string) (*DashboardStats, error)
}
