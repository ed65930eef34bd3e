package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/cmail/internal/api"
	"github.com/example/cmail/internal/config"
	"github.com/example/cmail/internal/core"
	"github.com/example/cmail/internal/db"
	"github.com/example/cmail/internal/identity"
	"github.com/example/cmail/internal/mail"
	"github.com/example/cmail/internal/middleware"
	"github.com/example/cmail/internal/scheduler"
)

func main() {
	// In production the environment is set directly; .env is a dev convenience.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: no .env file loaded:", err)
		}
	}

	var zapLogger *zap.Logger
	var err error
	if os.Getenv("GIN_MODE") == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	clients, err := db.InitFirebase(initCtx, cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("project_id", cfg.FirebaseProjectID))

	contactRepo := db.NewContactRepository(clients.Database)
	templateRepo := db.NewTemplateRepository(clients.Database)
	deliveryRepo := db.NewDeliveryLogRepository(clients.Database)
	userRepo := db.NewUserRepository(clients.Database)

	identityClient, err := identity.NewClient(initCtx, cfg.FirebaseWebAPIKey)
	if err != nil {
		zapLogger.Fatal("failed to initialize identity client", zap.Error(err))
	}

	// Delivery backends are optional individually; the server runs with
	// whichever are configured, and send requests naming an absent backend
	// fail with an unknown-provider error.
	var providers []mail.Provider
	if cfg.GmailCredentialsPath != "" {
		gmailProvider, err := mail.NewGmailProvider(initCtx, cfg, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to initialize Gmail provider", zap.Error(err))
		}
		providers = append(providers, gmailProvider)
	}
	if cfg.SMTPUser != "" {
		providers = append(providers, mail.NewSMTPProvider(cfg, zapLogger))
	}
	if len(providers) == 0 {
		zapLogger.Warn("no mail providers configured; send requests will be rejected")
	}

	sched := scheduler.New(cfg.SchedulerPollInterval, zapLogger)

	authService := core.NewAuthService(identityClient, userRepo, zapLogger)
	contactService := core.NewContactService(contactRepo, zapLogger)
	templateService := core.NewTemplateService(templateRepo, zapLogger)
	mailingService := core.NewMailingService(providers, deliveryRepo, sched, zapLogger)
	dashboardService := core.NewDashboardService(deliveryRepo)

	if strings.ToLower(cfg.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(cfg))
	} else {
		zapLogger.Warn("CORS disabled: CLIENT_URL is not configured")
	}

	authMW := middleware.NewAuthMiddleware(clients.Auth, zapLogger)
	api.SetupRoutes(router, zapLogger, authMW,
		authService, contactService, templateService, mailingService, dashboardService)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. Pending deferred sends are lost on
	// exit; that is the documented contract of the in-process scheduler.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
