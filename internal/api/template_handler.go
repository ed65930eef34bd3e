package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cmail/internal/core"
	"github.com/example/cmail/internal/models"
)

// TemplateHandler handles the message-template endpoints.
type TemplateHandler struct {
	templateService core.TemplateService
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(ts core.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: ts}
}

// CreateTemplate handles POST /templates.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	id, err := h.templateService.AddTemplate(c.Request.Context(), ownerFromContext(c), req.Name, req.Content, req.Subject)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Template{ID: id, Name: req.Name, Content: req.Content, Subject: req.Subject})
}

// ListTemplates handles GET /templates.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context(), ownerFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// UpdateTemplate handles PUT /templates/:templateId. Only the content and
// subject can change; the name is fixed at creation.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID := c.Param("templateId")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Template ID is required in path"})
		return
	}

	var req models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.templateService.UpdateTemplate(c.Request.Context(), ownerFromContext(c), templateID, req.Content, req.Subject); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Template updated successfully"})
}

// DeleteTemplate handles DELETE /templates/:templateId.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	templateID := c.Param("templateId")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Template ID is required in path"})
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), ownerFromContext(c), templateID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadDefaultTemplates handles POST /templates/defaults. Calling it again
// inserts the seed set again; clients rely on the duplicate behavior.
func (h *TemplateHandler) LoadDefaultTemplates(c *gin.Context) {
	messages, err := h.templateService.LoadDefaults(c.Request.Context(), ownerFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Default templates loaded", Data: messages})
}
