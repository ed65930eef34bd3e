package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"

	"github.com/example/cmail/internal/config"
)

// SMTPProvider delivers mail over a direct submission session to a fixed
// relay host: STARTTLS on the submission port with LOGIN authentication.
// One session is opened per batch and is torn down when the batch finishes,
// whatever happens to the individual recipients inside it.
type SMTPProvider struct {
	host     string
	port     string
	username string
	password string
	timeout  time.Duration
	log      *zap.Logger
}

// NewSMTPProvider builds the relay provider from the configured host, port
// and stored credentials.
func NewSMTPProvider(cfg *config.Config, logger *zap.Logger) *SMTPProvider {
	return &SMTPProvider{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		timeout:  30 * time.Second,
		log:      logger,
	}
}

func (p *SMTPProvider) Name() string { return "Outlook" }

// Send opens one authenticated session and iterates the recipients inside
// it, one message each. A session-establishment failure (dial, STARTTLS,
// auth) aborts the whole batch: every recipient is reported failed with the
// connection error. Per-recipient failures are collected and the batch
// continues.
func (p *SMTPProvider) Send(ctx context.Context, subject, body string, recipients []string) []SendResult {
	client, err := p.dial(ctx)
	if err != nil {
		p.log.Error("SMTP session could not be established",
			zap.String("host", p.host),
			zap.Error(err),
		)
		return failAll(recipients, fmt.Errorf("%w: %v", ErrConnection, err))
	}
	// Quit sends the protocol goodbye and closes the connection. If the
	// session is already broken, Close below is the fallback.
	defer func() {
		if err := client.Quit(); err != nil {
			client.Close()
		}
	}()

	results := make([]SendResult, 0, len(recipients))
	for _, recipient := range recipients {
		if err := p.sendOne(client, recipient, subject, body); err != nil {
			p.log.Warn("SMTP send failed",
				zap.String("recipient", recipient),
				zap.Error(err),
			)
			// Reset the envelope so the next recipient starts clean.
			client.Reset()
			results = append(results, SendResult{Recipient: recipient, Err: err})
			continue
		}
		results = append(results, SendResult{Recipient: recipient})
	}
	return results
}

// dial establishes the encrypted, authenticated session: TCP dial, EHLO,
// STARTTLS, then LOGIN auth with the stored credentials.
func (p *SMTPProvider) dial(ctx context.Context) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(p.host, p.port))
	if err != nil {
		return nil, err
	}

	client, err := smtp.NewClient(conn, p.host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := client.StartTLS(&tls.Config{ServerName: p.host}); err != nil {
		client.Close()
		return nil, fmt.Errorf("starttls failed: %w", err)
	}

	if err := client.Auth(&loginAuth{username: p.username, password: p.password, host: p.host}); err != nil {
		client.Close()
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	return client, nil
}

func (p *SMTPProvider) sendOne(client *smtp.Client, recipient, subject, body string) error {
	if err := client.Mail(p.username); err != nil {
		return err
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(buildMessage(p.username, recipient, subject, body)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func failAll(recipients []string, err error) []SendResult {
	results := make([]SendResult, 0, len(recipients))
	for _, r := range recipients {
		results = append(results, SendResult{Recipient: r, Err: err})
	}
	return results
}
