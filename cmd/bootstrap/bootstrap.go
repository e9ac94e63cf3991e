package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-health-api/config"
	deliveryHttp "patient-health-api/internal/delivery/http"
	"patient-health-api/internal/delivery/http/handler"
	"patient-health-api/internal/delivery/http/middleware"
	"patient-health-api/internal/infrastructure/cache"
	"patient-health-api/internal/infrastructure/database"
	"patient-health-api/internal/repository"
	"patient-health-api/internal/service"
	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/jwt"
	"patient-health-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// SetupLogger configures the standard logrus logger from LOG_LEVEL.
// Unknown levels fall back to info.
func SetupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	coverageRepo := repository.NewHealthCoverageRepository()
	professionalRepo := repository.NewHealthProfessionalRepository()
	linkRepo := repository.NewPatientAccountLinkedRepository()
	patientRelationRepo := repository.NewPatientRelationRepository()
	relationRepo := repository.NewRelationRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	accessService := service.NewAccessService(log)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, patientRepo, redisClient)
	coverageUsecase := usecase.NewHealthCoverageUsecase(db, log, coverageRepo, patientRepo, accessService, auditService)
	professionalUsecase := usecase.NewHealthProfessionalUsecase(db, log, professionalRepo, patientRepo, doctorRepo, accessService, auditService)
	linkUsecase := usecase.NewPatientAccountLinkedUsecase(db, log, linkRepo, patientRepo, patientRelationRepo, relationRepo, accessService, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db, redisClient)
	authHandler := handler.NewAuthHandler(authUsecase)
	coverageHandler := handler.NewHealthCoverageHandler(coverageUsecase, customValidator)
	professionalHandler := handler.NewHealthProfessionalHandler(professionalUsecase, customValidator)
	accountLinkedHandler := handler.NewAccountLinkedHandler(linkUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		healthHandler,
		authHandler,
		coverageHandler,
		professionalHandler,
		accountLinkedHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		recoveryMiddleware,
	)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a listen failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
