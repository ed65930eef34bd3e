package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cmail/internal/core"
	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/identity"
	"github.com/example/cmail/internal/mail"
	"github.com/example/cmail/internal/middleware"
	"github.com/example/cmail/internal/scheduler"
)

// ownerFromContext returns the authenticated account email, which keys every
// per-user shard in the store. An empty value means the token carried no
// email claim; the services reject that as unauthenticated.
func ownerFromContext(c *gin.Context) string {
	return c.GetString(middleware.ContextUserEmail)
}

// mapServiceError translates service-layer sentinels into HTTP responses.
func mapServiceError(c *gin.Context, err error) {
	var statusCode int
	var resp ErrorResponse

	switch {
	case errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrWeakPassword),
		errors.Is(err, core.ErrImportFormat),
		errors.Is(err, core.ErrNoRecipients),
		errors.Is(err, core.ErrUnknownProvider),
		errors.Is(err, scheduler.ErrPastDue):
		statusCode = http.StatusBadRequest
		resp = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrNotAuthenticated),
		errors.Is(err, identity.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		resp = ErrorResponse{Error: err.Error()}
	case errors.Is(err, identity.ErrDuplicateAccount):
		statusCode = http.StatusConflict
		resp = ErrorResponse{Error: identity.ErrDuplicateAccount.Error()}
	case errors.Is(err, db.ErrStoreRead), errors.Is(err, db.ErrStoreWrite):
		statusCode = http.StatusBadGateway
		resp = ErrorResponse{Error: "document store request failed"}
	case errors.Is(err, mail.ErrConnection):
		statusCode = http.StatusBadGateway
		resp = ErrorResponse{Error: "mail provider unreachable", Details: err.Error()}
	default:
		statusCode = http.StatusInternalServerError
		resp = ErrorResponse{Error: "An unexpected internal server error occurred"}
	}
	c.JSON(statusCode, resp)
}
