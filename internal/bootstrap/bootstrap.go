package bootstrap

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/collegeez/internal/app/controllers"
	appMigrations "github.com/yigit/collegeez/internal/app/migrations"
	appRepos "github.com/yigit/collegeez/internal/app/repositories"
	appRoutes "github.com/yigit/collegeez/internal/app/routes"
	appServices "github.com/yigit/collegeez/internal/app/services"
	"github.com/yigit/collegeez/internal/config"
	"github.com/yigit/collegeez/internal/db"
	appMiddleware "github.com/yigit/collegeez/internal/middleware"
	"github.com/yigit/collegeez/internal/pkg/helpers"
	"github.com/yigit/collegeez/internal/pkg/logger"
	"github.com/yigit/collegeez/internal/seed"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CollegeService    appServices.CollegeService // Interface type
	StudentService    appServices.StudentService // Interface type
	CollegeController *appControllers.CollegeController
	StudentController *appControllers.StudentController
	HealthController  *appControllers.HealthController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
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

// SetupDatabase connects to MongoDB, applies index migrations and seeds
// sample data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(),
		helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Database).MigrateAll(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, appRepos.NewCollegeRepository(database), lgr); err != nil {
			// Seeding is best effort
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.MongoDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)

	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.HealthController = appControllers.NewHealthController(database)

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
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Metrics(),
		cors.New(CORSConfig(cfg)),
	)

	appRoutes.SetupRouter(router,
		deps.CollegeController,
		deps.StudentController,
		deps.HealthController,
	)

	return router
}

// CORSConfig builds the CORS policy; "*" allows every origin.
func CORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{appMiddleware.RequestIDHeader}

	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}
