package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/Contactory/contactory/config"
	"github.com/Contactory/contactory/internal/database"
	"github.com/Contactory/contactory/internal/domain"
	httpHandler "github.com/Contactory/contactory/internal/http"
	"github.com/Contactory/contactory/internal/http/middleware"
	"github.com/Contactory/contactory/internal/repository"
	"github.com/Contactory/contactory/internal/service"
	"github.com/Contactory/contactory/pkg/logger"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB

	InitDB() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error
}

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mux    *http.ServeMux

	server   *http.Server
	serverMu sync.RWMutex

	contactRepo domain.ContactRepository
	segmentRepo domain.SegmentRepository

	contactService  *service.ContactService
	segmentService  *service.SegmentService
	detectorService *service.DuplicateDetectorService
	importService   *service.ImportService
	resolutionSvc   *service.ResolutionService
	statsService    *service.ContactStatsService
}

// AppOption allows customizing the app initialization
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithDB sets a pre-configured database connection
func WithDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config: cfg,
		logger: logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func (a *App) GetConfig() *config.Config { return a.config }
func (a *App) GetLogger() logger.Logger  { return a.logger }
func (a *App) GetMux() *http.ServeMux    { return a.mux }
func (a *App) GetDB() *sql.DB            { return a.db }

// InitDB initializes the database connection
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, dbname: %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.User,
		a.config.Database.SSLMode, a.config.Database.DBName))

	if err := database.EnsureDatabaseExists(database.GetPostgresDSN(&a.config.Database), a.config.Database.DBName); err != nil {
		a.logger.Error(err.Error())
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	// If tracing is enabled, wrap the postgres driver
	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := database.GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	a.db = db
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.contactRepo = repository.NewContactRepository(a.db)
	a.segmentRepo = repository.NewSegmentRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.contactService = service.NewContactService(a.contactRepo, a.logger)
	a.segmentService = service.NewSegmentService(a.segmentRepo, a.logger)
	a.detectorService = service.NewDuplicateDetectorService(a.contactRepo, a.logger)
	a.importService = service.NewImportService(a.detectorService, a.contactRepo, a.logger)
	a.resolutionSvc = service.NewResolutionService(a.contactRepo, a.logger)
	a.statsService = service.NewContactStatsService(a.contactRepo, a.logger)

	return nil
}

// InitHandlers initializes all HTTP handlers and registers routes
func (a *App) InitHandlers() error {
	contactHandler := httpHandler.NewContactHandler(
		a.contactService,
		a.detectorService,
		a.importService,
		a.resolutionSvc,
		a.statsService,
		a.logger,
	)
	segmentHandler := httpHandler.NewSegmentHandler(a.segmentService, a.logger)

	contactHandler.RegisterRoutes(a.mux)
	segmentHandler.RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, a.config.Version)
	})

	return nil
}

// Initialize initializes all application components in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	if err := a.InitHandlers(); err != nil {
		return err
	}
	return nil
}

// Start starts the HTTP server
func (a *App) Start() error {
	var handler http.Handler = a.mux

	// Apply tracing middleware if enabled
	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
		a.logger.Info("OpenCensus tracing middleware enabled")
	}

	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	a.serverMu.Unlock()

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	var shutdownErr error
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("HTTP server shutdown error")
			shutdownErr = err
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if shutdownErr == nil {
		a.logger.Info("Graceful shutdown completed")
	}
	return shutdownErr
}
