package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicita/config"
	deliveryHttp "medicita/internal/delivery/http"
	"medicita/internal/delivery/http/handler"
	"medicita/internal/delivery/http/middleware"
	"medicita/internal/infrastructure/blob"
	"medicita/internal/infrastructure/cache"
	"medicita/internal/infrastructure/database"
	"medicita/internal/infrastructure/storage"
	"medicita/internal/repository"
	"medicita/internal/service"
	"medicita/internal/usecase"
	"medicita/pkg/idgen"
	"medicita/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Log    *logrus.Logger
	Store  storage.KeyValueStore
	Locker *storage.KeyLocker
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	ctx := context.Background()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	sink, err := openSink(ctx, cfg.Backup)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	app := &App{
		Config: cfg,
		Log:    log,
		Store:  store,
		Locker: storage.NewKeyLocker(log),
	}

	server, err := app.initializeServer(ctx, sink)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures a JSON logrus logger at the configured level
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// openStore opens the configured backend and namespaces every key with the
// configured prefix.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (storage.KeyValueStore, error) {
	var (
		store storage.KeyValueStore
		err   error
	)

	switch cfg.Store.Driver {
	case StoreMemory:
		store = storage.NewMemoryStore()
	case StoreSQLite, "":
		store, err = storage.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
	case StoreRedis:
		client, cerr := cache.NewRedisClient(ctx, cfg.Redis, log)
		if cerr != nil {
			return nil, cerr
		}
		store = storage.NewRedisStore(client)
	case StorePostgres:
		db, derr := database.NewPostgresConnection(cfg.DB, log)
		if derr != nil {
			return nil, derr
		}
		store, err = storage.NewPostgresStore(db)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare postgres store: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	log.WithField("driver", cfg.Store.Driver).Info("Store opened")

	return storage.WithPrefix(store, cfg.Store.KeyPrefix), nil
}

// openSink returns where backups are written
func openSink(ctx context.Context, cfg config.BackupConfig) (blob.Sink, error) {
	switch blob.Driver(cfg.Driver) {
	case blob.DriverFilesystem, "":
		return blob.NewFilesystemSink(cfg.Dir)
	case blob.DriverS3:
		return blob.NewS3Sink(ctx, blob.S3Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown backup driver %q", cfg.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(ctx context.Context, sink blob.Sink) (*http.Server, error) {
	cfg, log, store, locker := app.Config, app.Log, app.Store, app.Locker

	customValidator := validator.NewValidator()
	ids := idgen.New()

	// Repositories
	userRepo := repository.NewUserRepository(log, store, locker, ids)
	sessionRepo := repository.NewSessionRepository(log, store, locker)
	doctorRepo := repository.NewDoctorRepository(log, store, locker, ids)
	patientRepo := repository.NewPatientRepository(log, store, locker, ids)
	appointmentRepo := repository.NewAppointmentRepository(log, store, locker, ids)
	historyRepo := repository.NewHistoryRecordRepository(log, store, locker, ids)
	auditLogRepo := repository.NewAuditLogRepository(log, store, locker, ids)

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	linker := service.NewReferenceLinker(log, doctorRepo, patientRepo)
	scheduler := service.NewAppointmentScheduler(cfg.Scheduler.RecheckOnUpdate)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, sessionRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, linker, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, linker, scheduler, auditService)
	historyUsecase := usecase.NewHistoryUsecase(log, historyRepo, linker, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)
	snapshotUsecase := usecase.NewSnapshotUsecase(log, userRepo, doctorRepo, patientRepo, appointmentRepo, historyRepo, sink, auditService)

	if cfg.Seed.Enabled {
		if err := usecase.NewSeedUsecase(log, userRepo, doctorRepo, ids).Seed(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	historyHandler := handler.NewHistoryHandler(historyUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	snapshotHandler := handler.NewSnapshotHandler(snapshotUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase)
	corsMiddleware := middleware.NewCORSMiddleware()
	requestMiddleware := middleware.NewRequestMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		patientHandler,
		appointmentHandler,
		historyHandler,
		auditLogHandler,
		snapshotHandler,
		authMiddleware,
		corsMiddleware,
		requestMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops the lock janitor and closes the store
func (app *App) Close() {
	if app.Locker != nil {
		app.Locker.Stop()
	}
	if app.Store != nil {
		if err := app.Store.Close(); err != nil {
			app.Log.Errorf("Failed to close store: %v", err)
		}
	}
}
