package models

// Request DTOs bound from JSON by the API layer.

// SignupRequest carries the credentials for account creation.
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries the credentials for sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateContactRequest adds one address-book entry.
type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateContactRequest overwrites the name and email of an existing contact.
type UpdateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// CreateTemplateRequest adds one reusable message template.
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

// UpdateTemplateRequest replaces the content and subject of a template.
// The template name is immutable after creation.
type UpdateTemplateRequest struct {
	Content string `json:"content" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

// SendMailRequest composes an immediate batch send. Recipients may come from
// a typed-in comma-separated list and/or explicit addresses resolved from
// contacts or a prior CSV import.
type SendMailRequest struct {
	Provider   string   `json:"provider" binding:"required"`
	Subject    string   `json:"subject" binding:"required"`
	Body       string   `json:"body" binding:"required"`
	Recipients []string `json:"recipients"`
	TypedIn    string   `json:"typedIn"`
}

// ScheduleMailRequest defers a batch send until the given RFC3339 instant.
type ScheduleMailRequest struct {
	Provider   string   `json:"provider" binding:"required"`
	Subject    string   `json:"subject" binding:"required"`
	Body       string   `json:"body" binding:"required"`
	Recipients []string `json:"recipients"`
	TypedIn    string   `json:"typedIn"`
	DueTime    string   `json:"dueTime" binding:"required"`
}
