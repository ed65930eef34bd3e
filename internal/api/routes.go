package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/cmail/internal/core"
	"github.com/example/cmail/internal/middleware"
)

// SetupRoutes wires every endpoint under /api/v1. Global middleware
// (logging, recovery, CORS) is applied to the router before this is called.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	authService core.AuthService,
	contactService core.ContactService,
	templateService core.TemplateService,
	mailingService core.MailingService,
	dashboardService core.DashboardService,
) {
	authHandler := NewAuthHandler(authService)
	contactHandler := NewContactHandler(contactService)
	templateHandler := NewTemplateHandler(templateService)
	mailHandler := NewMailHandler(mailingService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	apiV1 := router.Group("/api/v1")
	{
		// Public credential endpoints.
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}

		contactsGroup := apiV1.Group("/contacts", authMW.VerifyToken())
		{
			contactsGroup.POST("", contactHandler.CreateContact)
			contactsGroup.GET("", contactHandler.ListContacts)
			contactsGroup.DELETE("", contactHandler.DeleteAllContacts)
			contactsGroup.POST("/import", contactHandler.ImportContacts)
			contactsGroup.PUT("/:contactId", contactHandler.UpdateContact)
			contactsGroup.DELETE("/:contactId", contactHandler.DeleteContact)
		}

		templatesGroup := apiV1.Group("/templates", authMW.VerifyToken())
		{
			templatesGroup.POST("", templateHandler.CreateTemplate)
			templatesGroup.GET("", templateHandler.ListTemplates)
			templatesGroup.POST("/defaults", templateHandler.LoadDefaultTemplates)
			templatesGroup.PUT("/:templateId", templateHandler.UpdateTemplate)
			templatesGroup.DELETE("/:templateId", templateHandler.DeleteTemplate)
		}

		mailGroup := apiV1.Group("/mail", authMW.VerifyToken())
		{
			mailGroup.GET("/providers", mailHandler.ListProviders)
			mailGroup.POST("/send", mailHandler.Send)
			mailGroup.POST("/schedule", mailHandler.Schedule)
			mailGroup.POST("/recipients/import", mailHandler.ImportRecipients)
		}

		dashboardGroup := apiV1.Group("/dashboard", authMW.VerifyToken())
		{
			dashboardGroup.GET("/log", dashboardHandler.Log)
			dashboardGroup.GET("/stats", dashboardHandler.Stats)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1")
}
