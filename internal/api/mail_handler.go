package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/cmail/internal/core"
	"github.com/example/cmail/internal/models"
	"github.com/example/cmail/internal/tabular"
)

// MailHandler handles batch send composition, dispatch and deferral.
type MailHandler struct {
	mailingService core.MailingService
}

// NewMailHandler creates a MailHandler.
func NewMailHandler(ms core.MailingService) *MailHandler {
	return &MailHandler{mailingService: ms}
}

// ListProviders handles GET /mail/providers.
func (h *MailHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.mailingService.ProviderNames()})
}

// Send handles POST /mail/send. Recipients are merged from the typed-in list
// and the explicit selection; addresses failing validation are reported back
// without aborting the batch.
func (h *MailHandler) Send(c *gin.Context) {
	var req models.SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	valid, invalid, err := h.mailingService.ResolveRecipients(req.TypedIn, req.Recipients, nil)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Invalid addresses stay in the batch: the send path fails them
	// individually and records each in the delivery log.
	summary, err := h.mailingService.SendNow(c.Request.Context(), ownerFromContext(c), req.Provider, req.Subject, req.Body, append(valid, invalid...))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SendResponse{Summary: summary, InvalidRecipients: invalid})
}

// Schedule handles POST /mail/schedule. The due time must be RFC3339 and
// strictly in the future.
func (h *MailHandler) Schedule(c *gin.Context) {
	var req models.ScheduleMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	due, err := time.Parse(time.RFC3339, req.DueTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "dueTime must be an RFC3339 timestamp", Details: err.Error()})
		return
	}

	valid, invalid, err := h.mailingService.ResolveRecipients(req.TypedIn, req.Recipients, nil)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Recipient list contains invalid addresses", Details: invalid[0]})
		return
	}

	jobID, err := h.mailingService.ScheduleSend(c.Request.Context(), ownerFromContext(c), req.Provider, req.Subject, req.Body, valid, due)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ScheduleResponse{JobID: jobID, ScheduledFor: due, Recipients: len(valid)})
}

// ImportRecipients handles POST /mail/recipients/import. The uploaded CSV
// must carry a lowercase "email" column; the split between usable and
// rejected addresses is returned for the client to confirm before sending.
func (h *MailHandler) ImportRecipients(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A CSV file upload named 'file' is required", Details: err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file", Details: err.Error()})
		return
	}
	defer file.Close()

	table, err := tabular.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to parse CSV file", Details: err.Error()})
		return
	}

	valid, invalid, err := h.mailingService.ResolveRecipients("", nil, table)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, RecipientImportResponse{Valid: valid, Invalid: invalid})
}
