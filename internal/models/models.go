// Package models defines the persistent entities stored in the per-user
// Realtime Database shards, plus the session shape returned by sign-in.
package models

import "time"

// DeliveryStatus is the terminal status recorded for one recipient of one
// send or schedule action. Statuses are never updated in place; a deferred
// send appends fresh Sent/Failed entries when it actually fires.
type DeliveryStatus string

const (
	StatusSent      DeliveryStatus = "Sent"
	StatusFailed    DeliveryStatus = "Failed"
	StatusScheduled DeliveryStatus = "Scheduled"
)

// User is the account record kept under users/{uid}. The password is never
// stored here; credentials live with the identity provider.
type User struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Contact is an address-book entry under contacts/{ownerKey}/{id}.
// Duplicate emails within one owner's shard are allowed.
type Contact struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Template is a reusable message under templates/{ownerKey}/{id}.
// The name is fixed at creation; edits replace content and subject only.
type Template struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Subject string `json:"subject"`
}

// DeliveryLogEntry is one append-only record under deliveryLog/{ownerKey}.
// One entry is written per recipient per send or schedule action.
type DeliveryLogEntry struct {
	ID        string         `json:"id,omitempty"`
	Recipient string         `json:"recipient"`
	Status    DeliveryStatus `json:"status"`
	Provider  string         `json:"provider"`
	Timestamp time.Time      `json:"timestamp"`
	Subject   string         `json:"subject"`
	Error     string         `json:"error,omitempty"`
}

// Session is what a successful sign-in yields. The IDToken authenticates
// subsequent requests; the username is the local part of the email.
type Session struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
