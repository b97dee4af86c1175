package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/gradebook/internal/app/controllers"
	appMigrations "github.com/yigit/gradebook/internal/app/migrations"
	appRepos "github.com/yigit/gradebook/internal/app/repositories"
	"github.com/yigit/gradebook/internal/app/repositories/memstore"
	appRoutes "github.com/yigit/gradebook/internal/app/routes"
	appServices "github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/config"
	"github.com/yigit/gradebook/internal/db"
	appMiddleware "github.com/yigit/gradebook/internal/middleware"
	"github.com/yigit/gradebook/internal/pkg/helpers"
	"github.com/yigit/gradebook/internal/pkg/logger"
	"github.com/yigit/gradebook/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Transactor          appRepos.Transactor
	GradebookService    appServices.GradebookService
	GradebookController *appControllers.GradebookController
	RateLimiter         *appMiddleware.RateLimiter
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store, runs migrations and seeds fixture
// data when enabled. The returned pool is nil for the in-memory driver.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (appRepos.Transactor, *pgxpool.Pool, error) {
	if cfg.UsesMemoryStore() {
		lgr.Warn().Msg("Using in-memory store, data will not survive a restart")
		store := memstore.New()
		if err := seedIfEnabled(cfg, store, lgr); err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	transactor := appRepos.NewPgTransactor(dbPool)
	if err := seedIfEnabled(cfg, transactor, lgr); err != nil {
		database.Close()
		return nil, nil, err
	}

	return transactor, dbPool, nil
}

func seedIfEnabled(cfg *config.Config, tx appRepos.Transactor, lgr zerolog.Logger) error {
	if !cfg.Database.Seed {
		return nil
	}
	if err := seed.CreateDefaultData(context.Background(), tx, lgr); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, tx appRepos.Transactor, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Transactor: tx,
		Logger:     lgr,
	}

	deps.GradebookService = appServices.NewGradebookService(tx, lgr)
	deps.GradebookController = appControllers.NewGradebookController(deps.GradebookService)

	if cfg.RateLimit.Enabled {
		window := helpers.ParseDuration(cfg.RateLimit.Window, time.Minute)
		deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.Requests, window)
		lgr.Info().Int("requests", cfg.RateLimit.Requests).Dur("window", window).Msg("Rate limiting enabled")
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.GradebookController)

	return router
}
