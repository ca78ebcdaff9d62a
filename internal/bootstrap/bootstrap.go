package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dip-mandal/hod-website/internal/app/controllers"
	appMigrations "github.com/dip-mandal/hod-website/internal/app/migrations"
	appRepos "github.com/dip-mandal/hod-website/internal/app/repositories"
	appRoutes "github.com/dip-mandal/hod-website/internal/app/routes"
	appServices "github.com/dip-mandal/hod-website/internal/app/services"
	"github.com/dip-mandal/hod-website/internal/config"
	"github.com/dip-mandal/hod-website/internal/db"
	appMiddleware "github.com/dip-mandal/hod-website/internal/middleware"
	pkgAuth "github.com/dip-mandal/hod-website/internal/pkg/auth"
	"github.com/dip-mandal/hod-website/internal/pkg/filestorage"
	"github.com/dip-mandal/hod-website/internal/pkg/helpers"
	"github.com/dip-mandal/hod-website/internal/pkg/logger"
	"github.com/dip-mandal/hod-website/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	AuthService    *appServices.AuthService
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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
	if err := migrator.Run(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding failures are logged but do not stop startup; an operator can
		// repair the data while the site keeps serving.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	fileStorageBaseURL := cfg.PublicBaseURL() + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminUserRepository, deps.JWTService)

	publicationService := appServices.NewPublicationService(deps.Repos.PublicationRepository)
	bookService := appServices.NewBookService(deps.Repos.BookRepository)
	projectService := appServices.NewProjectService(deps.Repos.ProjectRepository)
	patentService := appServices.NewPatentService(deps.Repos.PatentRepository)
	awardService := appServices.NewAwardService(deps.Repos.AwardRepository)
	phdStudentService := appServices.NewPhDStudentService(deps.Repos.PhDStudentRepository)
	galleryService := appServices.NewGalleryService(deps.Repos.GalleryRepository)
	contactService := appServices.NewContactService(deps.Repos.ContactRepository)
	facultyService := appServices.NewFacultyService(deps.Repos.FacultyProfileRepository)
	dashboardService := appServices.NewDashboardService(deps.Repos.DashboardRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(deps.AuthService),
		Publication: appControllers.NewPublicationController(publicationService),
		Book:        appControllers.NewBookController(bookService),
		Project:     appControllers.NewProjectController(projectService),
		Patent:      appControllers.NewPatentController(patentService),
		Award:       appControllers.NewAwardController(awardService),
		PhDStudent:  appControllers.NewPhDStudentController(phdStudentService),
		Gallery:     appControllers.NewGalleryController(galleryService),
		Contact:     appControllers.NewContactController(contactService),
		Faculty:     appControllers.NewFacultyController(facultyService),
		Upload:      appControllers.NewUploadController(deps.FileStorage),
		Dashboard:   appControllers.NewDashboardController(dashboardService),
		Public: appControllers.NewPublicController(
			publicationService,
			bookService,
			projectService,
			patentService,
			awardService,
			phdStudentService,
			galleryService,
			contactService,
			facultyService,
		),
	}

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
