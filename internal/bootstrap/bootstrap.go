package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/unidash/internal/app/controllers"
	appMigrations "github.com/yigit/unidash/internal/app/migrations"
	appRepos "github.com/yigit/unidash/internal/app/repositories"
	appRoutes "github.com/yigit/unidash/internal/app/routes"
	appServices "github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/config"
	"github.com/yigit/unidash/internal/db"
	appMiddleware "github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	Services         *appServices.Services
	Controllers      *appControllers.Controllers
	HealthController *appControllers.HealthController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured record store, runs its migrations and returns
// the repositories over it.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		lgr.Info().Str("host", cfg.Database.Host).Msg("Establishing database connection...")
		pg, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		if err := appMigrations.NewPostgresMigrator(pg).Migrate(ctx); err != nil {
			pg.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		return appRepos.NewPostgresRepositories(pg), nil

	case config.DriverSQLite:
		lgr.Info().Str("path", cfg.Database.SQLitePath).Msg("Opening SQLite database...")
		lite, err := db.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to open SQLite database")
			return nil, err
		}

		if err := appMigrations.NewSQLiteMigrator(lite).Migrate(ctx); err != nil {
			lite.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		return appRepos.NewSQLiteRepositories(lite), nil

	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory record store, data is lost on restart")
		return appRepos.NewMemoryRepositories(), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// BuildDependencies initializes application services and controllers over repos,
// and seeds the demo data set when enabled.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.Services = appServices.NewServices(repos)
	deps.Controllers = appControllers.NewControllers(deps.Services)
	deps.HealthController = appControllers.NewHealthController(cfg.Database.Driver)

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, repos, deps.Services, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := NewRouter(cfg, deps)
	lgr.Info().Strs("allowedOrigins", cfg.GetAllowedOrigins()).Msg("Router configured")
	return router
}

// NewRouter builds the engine without touching the global gin mode.
func NewRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
		appMiddleware.CORS(cfg.GetAllowedOrigins()),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.HealthController)
	return router
}
