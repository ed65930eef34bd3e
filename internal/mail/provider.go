// Package mail implements the two interchangeable delivery backends behind a
// single Provider interface: the Gmail API (delegated credential) and a
// direct SMTP relay session (stored username/password). Both attempt every
// recipient independently and sequentially; one recipient's failure never
// aborts the rest of the batch.
package mail

import (
	"context"
	"errors"
)

// Provider failure categories. Per-recipient failures are carried inside
// SendResult.Err wrapped with one of these sentinels where classification is
// possible; anything else keeps the raw detail.
var (
	// ErrConnection indicates the provider itself was unreachable or refused
	// the session; every recipient in the batch fails with it.
	ErrConnection = errors.New("mail provider connection failed")
	// ErrInvalidRecipient indicates the provider rejected the recipient address.
	ErrInvalidRecipient = errors.New("invalid recipient address")
	// ErrRecipientNotFound indicates the provider reported the resource missing.
	ErrRecipientNotFound = errors.New("recipient not found")
)

// SendResult is the per-recipient outcome of a batch send.
type SendResult struct {
	Recipient string
	// MessageID is the provider-issued id on success (Gmail); may be empty
	// for providers that do not return one.
	MessageID string
	// Err is nil on success.
	Err error
}

// Success reports whether the recipient was accepted by the provider.
func (r SendResult) Success() bool { return r.Err == nil }

// Provider is a mail-delivery backend. Send dispatches one message per
// recipient and returns one result per recipient, in input order.
type Provider interface {
	Name() string
	Send(ctx context.Context, subject, body string, recipients []string) []SendResult
}
