package mail

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/example/cmail/internal/config"
)

// gmailSender is the special user id meaning "the authenticated account".
const gmailSender = "me"

// GmailProvider delivers mail through the Gmail API using a delegated
// credential: an OAuth client-secrets file plus a locally cached token that
// is refreshed silently once obtained (see token.go for the consent flow).
type GmailProvider struct {
	svc *gmail.Service
	log *zap.Logger
}

// NewGmailProvider builds the Gmail client from the configured client-secrets
// and token-cache paths. On first use, when no cached token exists, the
// interactive console consent flow runs and the resulting token is persisted.
func NewGmailProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*GmailProvider, error) {
	if cfg.GmailCredentialsPath == "" {
		return nil, errors.New("gmail: GMAIL_CREDENTIALS_PATH is not configured")
	}

	secrets, err := os.ReadFile(cfg.GmailCredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to read client secrets: %w", err)
	}
	oauthCfg, err := google.ConfigFromJSON(secrets, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to parse client secrets: %w", err)
	}

	client, err := delegatedClient(ctx, oauthCfg, cfg.GmailTokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailProvider{svc: svc, log: logger}, nil
}

func (p *GmailProvider) Name() string { return "Gmail" }

// Send dispatches one single-recipient message per recipient, sequentially.
func (p *GmailProvider) Send(ctx context.Context, subject, body string, recipients []string) []SendResult {
	results := make([]SendResult, 0, len(recipients))
	for _, recipient := range recipients {
		msg := &gmail.Message{Raw: encodeRaw(buildMessage(gmailSender, recipient, subject, body))}
		sent, err := p.svc.Users.Messages.Send(gmailSender, msg).Context(ctx).Do()
		if err != nil {
			classified := classifyGmailError(err)
			p.log.Warn("Gmail send failed",
				zap.String("recipient", recipient),
				zap.Error(classified),
			)
			results = append(results, SendResult{Recipient: recipient, Err: classified})
			continue
		}
		results = append(results, SendResult{Recipient: recipient, MessageID: sent.Id})
	}
	return results
}

// classifyGmailError maps a Gmail API error onto the provider failure
// categories: 400 with an address-resolution message means the recipient
// itself is bad, 404 means the resource was not found, and anything else
// keeps the raw detail.
func classifyGmailError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	detail := apiErr.Message
	if detail == "" {
		detail = apiErr.Body
	}

	switch apiErr.Code {
	case 400:
		if strings.Contains(detail, "Address not found") || strings.Contains(detail, "Domain name not found") {
			return fmt.Errorf("%w: invalid email address or domain not found", ErrInvalidRecipient)
		}
		return fmt.Errorf("%w: bad request: %s", ErrInvalidRecipient, detail)
	case 404:
		return fmt.Errorf("%w: the requested resource could not be found", ErrRecipientNotFound)
	default:
		return fmt.Errorf("gmail send failed (status %d): %s", apiErr.Code, detail)
	}
}
