package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-scheduling-service/config"
	deliveryHttp "clinic-scheduling-service/internal/delivery/http"
	"clinic-scheduling-service/internal/delivery/http/handler"
	"clinic-scheduling-service/internal/delivery/http/middleware"
	"clinic-scheduling-service/internal/domain/entity"
	"clinic-scheduling-service/internal/infrastructure/cache"
	"clinic-scheduling-service/internal/infrastructure/database"
	"clinic-scheduling-service/internal/repository"
	"clinic-scheduling-service/internal/service"
	"clinic-scheduling-service/internal/usecase"
	"clinic-scheduling-service/pkg/validator"

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
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedRoles guarantees the fixed role rows exist before any account insert.
func seedRoles(db *gorm.DB) error {
	roleRepo := repository.NewRoleRepository()
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: "admin", Description: "Practice administrator"},
		{ID: entity.RoleIDDoctor, RoleName: "doctor", Description: "Medical practitioner"},
		{ID: entity.RoleIDPatient, RoleName: "patient", Description: "Registered patient"},
	}
	for i := range roles {
		if err := roleRepo.FirstOrCreate(db, &roles[i]); err != nil {
			return err
		}
	}
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	workingHoursRepo := repository.NewWorkingHoursRepository()
	scheduleRepo := repository.NewScheduleRepository()
	slotRepo := repository.NewSlotRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	slotCache := service.NewSlotCacheService(redisClient, log)

	// Initialize usecases
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, userRepo, doctorProfileRepo, workingHoursRepo, scheduleRepo, appointmentRepo, auditService)
	patientProfileUsecase := usecase.NewPatientProfileUsecase(db, log, patientProfileRepo)
	workingHoursUsecase := usecase.NewWorkingHoursUsecase(db, log, workingHoursRepo, doctorProfileRepo, appointmentRepo, scheduleRepo, auditService)
	scheduleGeneratorUsecase := usecase.NewScheduleGeneratorUsecase(db, log, cfg.Schedule, doctorProfileRepo, workingHoursRepo, scheduleRepo, appointmentRepo, slotCache, auditService)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, appointmentRepo, slotCache, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, slotRepo, patientProfileRepo, slotCache)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientProfileUsecase, customValidator)
	workingHoursHandler := handler.NewWorkingHoursHandler(workingHoursUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, scheduleGeneratorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, patientHandler, workingHoursHandler, scheduleHandler, appointmentHandler, auditLogHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
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
