package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/deniz/studytrack/internal/app/controllers"
	appMigrations "github.com/deniz/studytrack/internal/app/migrations"
	appRepos "github.com/deniz/studytrack/internal/app/repositories"
	appRoutes "github.com/deniz/studytrack/internal/app/routes"
	appServices "github.com/deniz/studytrack/internal/app/services"
	"github.com/deniz/studytrack/internal/config"
	"github.com/deniz/studytrack/internal/db"
	appMiddleware "github.com/deniz/studytrack/internal/middleware"
	"github.com/deniz/studytrack/internal/pkg/logger"
	"github.com/deniz/studytrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService       appServices.CourseService
	SessionService      appServices.SessionService
	GoalService         appServices.GoalService
	UserService         appServices.UserService
	AnalyticsService    appServices.AnalyticsService
	CourseController    *appControllers.CourseController
	SessionController   *appControllers.SessionController
	GoalController      *appControllers.GoalController
	UserController      *appControllers.UserController
	AnalyticsController *appControllers.AnalyticsController
	Repos               *appRepos.Repositories
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds sample data on an empty database.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
		// Missing sample data is not fatal
		lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.SessionRepository,
	)
	deps.SessionService = appServices.NewSessionService(
		deps.Repos.SessionRepository,
		deps.Repos.CourseRepository,
		nil,
	)
	deps.GoalService = appServices.NewGoalService(
		deps.Repos.GoalRepository,
		deps.Repos.CourseRepository,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.AnalyticsService = appServices.NewAnalyticsService(
		deps.Repos.CourseRepository,
		deps.Repos.SessionRepository,
		deps.Repos.GoalRepository,
		cfg.Analytics.DefaultWeeks,
		nil,
	)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.GoalController = appControllers.NewGoalController(deps.GoalService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	return deps, nil
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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.SessionController,
		deps.GoalController,
		deps.UserController,
		deps.AnalyticsController,
	)

	return router
}
