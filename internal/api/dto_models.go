package api

import (
	"time"

	"github.com/example/cmail/internal/core"
)

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the generic payload for simple confirmations.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SignupResponse returns the provider-issued uid of the new account.
type SignupResponse struct {
	UID     string `json:"uid"`
	Message string `json:"message"`
}

// SendResponse reports the outcome of an immediate batch send, including
// addresses that failed validation before dispatch.
type SendResponse struct {
	Summary           *core.SendSummary `json:"summary"`
	InvalidRecipients []string          `json:"invalidRecipients,omitempty"`
}

// ScheduleResponse confirms a deferred send.
type ScheduleResponse struct {
	JobID        string    `json:"jobId"`
	ScheduledFor time.Time `json:"scheduledFor"`
	Recipients   int       `json:"recipients"`
}

// RecipientImportResponse is the outcome of a recipient-list CSV upload.
type RecipientImportResponse struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid,omitempty"`
}
