package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"binfresh/config"
	deliveryHttp "binfresh/internal/delivery/http"
	"binfresh/internal/delivery/http/handler"
	"binfresh/internal/delivery/http/middleware"
	"binfresh/internal/infrastructure/store"
	"binfresh/internal/repository"
	"binfresh/internal/service"
	"binfresh/internal/usecase"
	"binfresh/pkg/jwt"
	"binfresh/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Store  *store.DualStore
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// The durable backing lives on the OS filesystem; environments
	// without a writable disk degrade to the in-memory backing.
	dualStore := store.New(afero.NewOsFs(), cfg.Storage.DataDir, logrus.StandardLogger())
	app.Store = dualStore
	logrus.Infof("Storage initialized, data directory: %s", cfg.Storage.DataDir)

	server, err := initializeServer(cfg, dualStore)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, dualStore *store.DualStore) (*http.Server, error) {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Derived-value calculator and notification boundary
	calculator := service.NewCalculator(cfg.Pricing.BinPrices, cfg.Pricing.OneOffServiceCharge)
	mailer := service.NewLogMailer(log)
	dispatcher := service.NewNotificationDispatcher(log, mailer, cfg.Notification.AdminEmail)

	// Repositories over the dual store
	bookingRepo := repository.NewBookingRepository(dualStore, calculator)
	abandonedFormRepo := repository.NewAbandonedFormRepository(
		dualStore, calculator,
		cfg.AbandonedForm.RetentionCap, cfg.AbandonedForm.HighValueThreshold,
	)
	serviceAreaRepo := repository.NewServiceAreaRepository(dualStore)

	// Usecases
	authUsecase, err := usecase.NewAuthUsecase(log, jwtService, cfg.Admin)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}
	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, serviceAreaRepo, dispatcher)
	statusUsecase := usecase.NewBookingStatusUsecase(log, bookingRepo, dispatcher)
	abandonedFormUsecase := usecase.NewAbandonedFormUsecase(log, abandonedFormRepo)
	serviceAreaUsecase := usecase.NewServiceAreaUsecase(log, serviceAreaRepo)
	maintenanceUsecase := usecase.NewMaintenanceUsecase(log, dualStore)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, statusUsecase, customValidator)
	abandonedFormHandler := handler.NewAbandonedFormHandler(abandonedFormUsecase, customValidator)
	serviceAreaHandler := handler.NewServiceAreaHandler(serviceAreaUsecase, customValidator)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)
	requestLogger := middleware.NewRequestLogger(log)

	router := deliveryHttp.NewRouter(
		authHandler, bookingHandler, abandonedFormHandler,
		serviceAreaHandler, maintenanceHandler,
		authMiddleware, corsMiddleware, requestLogger,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
