package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fobworks/config"
	"fobworks/cron"
	"fobworks/database"
	bookingRepoPkg "fobworks/database/repository/booking"
	catalogRepoPkg "fobworks/database/repository/catalog"
	"fobworks/handlers"
	"fobworks/middleware"
	"fobworks/routes"
	bookingSvc "fobworks/services/booking"
	catalogSvc "fobworks/services/catalog"
	"fobworks/services/mailer"
	"fobworks/services/notification"
	"fobworks/services/token"
	"fobworks/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	cfg := config.AppConfig
	if cfg.SessionTokenSecret == "" || cfg.ActionTokenSecret == "" || cfg.AdminKey == "" {
		logger.Sugar().Fatal("main: SESSION_TOKEN_SECRET, ACTION_TOKEN_SECRET and ADMIN_KEY must all be set")
	}

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Token signers; the two secrets are deliberately independent.
	sessions := token.NewSessionSigner(cfg.SessionTokenSecret)
	actions := token.NewActionSigner(cfg.ActionTokenSecret)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.AdminSessionGate(sessions))

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()

	// Outbound mail: prefer MailerSend, fall back to SMTP, then the dev logger.
	var mailSvc mailer.Service
	switch {
	case cfg.MailerSendToken != "":
		mailSvc, err = mailer.NewMailerSendMailer(cfg.MailerSendToken, "Fobworks", cfg.MailFrom)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mailersend: %v", err)
		}
	case cfg.SMTPHost != "":
		mailSvc = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom, cfg.SMTPUser, cfg.SMTPPass)
	default:
		logger.Warn("main: no mail transport configured, using dev mailer")
		mailSvc = &mailer.DevMailer{Logger: logger}
	}

	notificationService := &notification.DefaultNotificationService{
		Mailer:     mailSvc,
		Actions:    actions,
		BaseURL:    cfg.BaseURL,
		AdminEmail: cfg.AdminEmail,
	}

	catalogService := &catalogSvc.DefaultCatalogService{Repo: catalogRepo}

	reminderQueue := cron.NewReminderQueue()
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:      bookingRepo,
		Catalog:   catalogRepo,
		Notifier:  notificationService,
		Reminders: reminderQueue,
		Logger:    logger,
	}

	cron.InitReminderWorker(bookingRepo, notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(sessions, cfg.AdminKey),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Manage:  handlers.NewManageHandler(bookingService, logger),
		Admin:   handlers.NewAdminHandler(bookingService, notificationService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Storage: handlers.NewStorageHandler(cloudinaryStorageService),
		Action:  handlers.NewActionHandler(actions, bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, sessions)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
