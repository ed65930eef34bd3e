package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cmail/internal/core"
	"github.com/example/cmail/internal/models"
	"github.com/example/cmail/internal/tabular"
)

// ContactHandler handles the address-book endpoints.
type ContactHandler struct {
	contactService core.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(cs core.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// CreateContact handles POST /contacts.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	id, err := h.contactService.AddContact(c.Request.Context(), ownerFromContext(c), req.Name, req.Email)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Contact{ID: id, Name: req.Name, Email: req.Email})
}

// ListContacts handles GET /contacts.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.ListContacts(c.Request.Context(), ownerFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// UpdateContact handles PUT /contacts/:contactId.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	contactID := c.Param("contactId")
	if contactID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Contact ID is required in path"})
		return
	}

	var req models.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.contactService.UpdateContact(c.Request.Context(), ownerFromContext(c), contactID, req.Name, req.Email); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Contact updated successfully"})
}

// DeleteContact handles DELETE /contacts/:contactId.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	contactID := c.Param("contactId")
	if contactID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Contact ID is required in path"})
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), ownerFromContext(c), contactID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllContacts handles DELETE /contacts.
func (h *ContactHandler) DeleteAllContacts(c *gin.Context) {
	if err := h.contactService.DeleteAllContacts(c.Request.Context(), ownerFromContext(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportContacts handles POST /contacts/import. It accepts a multipart CSV
// upload under the "file" field with Name and Email columns and reports a
// per-row outcome.
func (h *ContactHandler) ImportContacts(c *gin.Context) {
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

	results, err := h.contactService.BulkImport(c.Request.Context(), ownerFromContext(c), table)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
