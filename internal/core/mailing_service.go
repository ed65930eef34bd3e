package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/mail"
	"github.com/example/cmail/internal/models"
	"github.com/example/cmail/internal/scheduler"
	"github.com/example/cmail/internal/tabular"
	"github.com/example/cmail/internal/validation"
)

// recipientColumn is the required header for recipient-list uploads.
// Case-sensitive and lowercase, unlike the contact import columns.
const recipientColumn = "email"

// mailingService implements MailingService: it owns the provider registry,
// the deferred-send scheduler, and the delivery log writes.
type mailingService struct {
	providers  map[string]mail.Provider
	deliveries db.DeliveryLogRepository
	sched      *scheduler.Scheduler
	now        func() time.Time
	log        *zap.Logger
}

// NewMailingService creates a MailingService over the given delivery
// backends. Provider lookup is by Provider.Name().
func NewMailingService(
	providers []mail.Provider,
	deliveries db.DeliveryLogRepository,
	sched *scheduler.Scheduler,
	logger *zap.Logger,
) MailingService {
	registry := make(map[string]mail.Provider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}
	return &mailingService{
		providers:  registry,
		deliveries: deliveries,
		sched:      sched,
		now:        time.Now,
		log:        logger,
	}
}

// ProviderNames lists the registered backends in stable order.
func (s *mailingService) ProviderNames() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveRecipients merges the three recipient sources into one validated,
// de-duplicated, order-preserving set. Invalid addresses are reported back
// individually; they never abort composition.
func (s *mailingService) ResolveRecipients(typedIn string, explicit []string, table *tabular.Table) ([]string, []string, error) {
	candidates := make([]string, 0, len(explicit))

	if typedIn != "" {
		for _, part := range strings.Split(typedIn, ",") {
			candidates = append(candidates, strings.TrimSpace(part))
		}
	}
	candidates = append(candidates, explicit...)

	if table != nil {
		if !validation.HasRequiredColumn(table, recipientColumn) {
			return nil, nil, fmt.Errorf("%w: recipient import requires an %q column", ErrImportFormat, recipientColumn)
		}
		candidates = append(candidates, table.Column(recipientColumn)...)
	}

	var valid, invalid []string
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if !validation.IsValidEmail(c) {
			invalid = append(invalid, c)
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		valid = append(valid, c)
	}
	return valid, invalid, nil
}

// SendNow dispatches the batch synchronously and appends one log entry per
// recipient. The call blocks until every recipient has been attempted.
func (s *mailingService) SendNow(ctx context.Context, owner, provider, subject, body string, recipients []string) (*SendSummary, error) {
	p, err := s.resolve(owner, provider, recipients)
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, owner, p, subject, body, recipients), nil
}

// ScheduleSend registers the batch timer first: the scheduler is the single
// authority on the due time, so a past-due rejection happens before any log
// entry is written. Once the timer exists the deferral is committed; one
// Scheduled entry is then appended per recipient, and a failing append is
// logged and skipped rather than turned into an error the client would read
// as "nothing was scheduled". When the timer fires, the normal dispatch path
// appends fresh Sent/Failed entries. Scheduled entries are terminal and
// never updated.
func (s *mailingService) ScheduleSend(ctx context.Context, owner, provider, subject, body string, recipients []string, due time.Time) (string, error) {
	p, err := s.resolve(owner, provider, recipients)
	if err != nil {
		return "", err
	}

	jobID := uuid.NewString()
	batch := make([]string, len(recipients))
	copy(batch, recipients)
	err = s.sched.Schedule(jobID, due, func(opCtx context.Context) {
		s.dispatch(opCtx, owner, p, subject, body, batch)
	})
	if err != nil {
		return "", err
	}

	for _, recipient := range recipients {
		entry := models.DeliveryLogEntry{
			Recipient: recipient,
			Status:    models.StatusScheduled,
			Provider:  p.Name(),
			Timestamp: due.UTC(),
			Subject:   subject,
		}
		if err := s.deliveries.Append(ctx, owner, entry); err != nil {
			s.log.Error("failed to append scheduled log entry",
				zap.String("recipient", recipient),
				zap.Error(err),
			)
		}
	}

	s.log.Info("batch send deferred",
		zap.String("job_id", jobID),
		zap.String("provider", p.Name()),
		zap.Int("recipients", len(batch)),
		zap.Time("due", due),
	)
	return jobID, nil
}

// resolve performs the shared precondition checks for both send paths.
func (s *mailingService) resolve(owner, provider string, recipients []string) (mail.Provider, error) {
	if owner == "" {
		return nil, ErrNotAuthenticated
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}
	p, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	return p, nil
}

// dispatch performs the provider call and logs every per-recipient outcome.
// Syntactically invalid addresses are failed up front without reaching the
// provider; they still get a Failed log entry like any other rejection.
// A log-write failure is recorded and skipped: the send already happened,
// so a store hiccup must not fail the batch.
func (s *mailingService) dispatch(ctx context.Context, owner string, p mail.Provider, subject, body string, recipients []string) *SendSummary {
	deliverable := make([]string, 0, len(recipients))
	var results []mail.SendResult
	for _, recipient := range recipients {
		if !validation.IsValidEmail(recipient) {
			results = append(results, mail.SendResult{Recipient: recipient, Err: ErrInvalidEmail})
			continue
		}
		deliverable = append(deliverable, recipient)
	}
	// An all-invalid batch never touches the backend; the SMTP provider
	// would otherwise open and tear down a session for nothing.
	if len(deliverable) > 0 {
		results = append(results, p.Send(ctx, subject, body, deliverable)...)
	}
	sentAt := s.now().UTC()

	summary := &SendSummary{Provider: p.Name(), Sent: []string{}, Failed: []FailedRecipient{}}
	for _, res := range results {
		entry := models.DeliveryLogEntry{
			Recipient: res.Recipient,
			Provider:  p.Name(),
			Timestamp: sentAt,
			Subject:   subject,
		}
		if res.Success() {
			entry.Status = models.StatusSent
			summary.Sent = append(summary.Sent, res.Recipient)
		} else {
			entry.Status = models.StatusFailed
			entry.Error = res.Err.Error()
			summary.Failed = append(summary.Failed, FailedRecipient{Recipient: res.Recipient, Reason: res.Err.Error()})
		}

		if err := s.deliveries.Append(ctx, owner, entry); err != nil {
			s.log.Error("failed to append delivery log entry",
				zap.String("recipient", res.Recipient),
				zap.Error(err),
			)
		}
	}

	s.log.Info("batch send completed",
		zap.String("provider", p.Name()),
		zap.Int("sent", len(summary.Sent)),
		zap.Int("failed", len(summary.Failed)),
	)
	return summary
}
