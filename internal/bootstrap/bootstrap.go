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

	appAuth "github.com/nepedu/resulthub/internal/app/auth"
	appControllers "github.com/nepedu/resulthub/internal/app/controllers"
	appMigrations "github.com/nepedu/resulthub/internal/app/migrations"
	appRepos "github.com/nepedu/resulthub/internal/app/repositories"
	appRoutes "github.com/nepedu/resulthub/internal/app/routes"
	appServices "github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/config"
	"github.com/nepedu/resulthub/internal/db"
	appMiddleware "github.com/nepedu/resulthub/internal/middleware"
	pkgAuth "github.com/nepedu/resulthub/internal/pkg/auth"
	"github.com/nepedu/resulthub/internal/pkg/email"
	"github.com/nepedu/resulthub/internal/pkg/helpers"
	"github.com/nepedu/resulthub/internal/pkg/logger"
	"github.com/nepedu/resulthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	UserService         *appServices.UserService
	SchoolService       *appServices.SchoolService
	StudentService      *appServices.StudentService
	SubjectService      *appServices.SubjectService
	AssignmentService   *appServices.AssignmentService
	MarksService        *appServices.MarksService
	SummaryService      *appServices.SummaryService
	ExcelService        *appServices.ExcelService
	AcademicYearService *appServices.AcademicYearService
	SettingService      *appServices.SettingService
	CleanupService      *appServices.CleanupService

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	SchoolController     *appControllers.SchoolController
	StudentController    *appControllers.StudentController
	SubjectController    *appControllers.SubjectController
	AssignmentController *appControllers.AssignmentController
	MarksController      *appControllers.MarksController
	SummaryController    *appControllers.SummaryController
	ExcelController      *appControllers.ExcelController
	YearController       *appControllers.AcademicYearController
	SettingController    *appControllers.SettingController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	EmailService   email.Service
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup continues on seed errors; the admin can repair data later
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewSMTPService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.OTPRepository,
		deps.Repos.SchoolRepository,
		deps.JWTService,
		deps.EmailService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.SchoolRepository, lgr)
	deps.SchoolService = appServices.NewSchoolService(deps.Repos.SchoolRepository, deps.AuthzService, lgr)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.AcademicYearRepository,
		deps.AuthzService,
		lgr,
	)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, lgr)
	deps.AssignmentService = appServices.NewAssignmentService(
		deps.Repos.AssignmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
		deps.AuthzService,
		lgr,
	)
	deps.MarksService = appServices.NewMarksService(
		deps.Repos.MarksRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
		deps.AuthzService,
		lgr,
	)
	deps.SettingService = appServices.NewSettingService(deps.Repos.SettingRepository, lgr)
	deps.SummaryService = appServices.NewSummaryService(
		deps.Repos.StudentRepository,
		deps.Repos.MarksRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.SchoolRepository,
		deps.SettingService,
		deps.AuthzService,
		lgr,
	)
	deps.ExcelService = appServices.NewExcelService(
		deps.Repos.StudentRepository,
		deps.Repos.SchoolRepository,
		deps.AuthzService,
		lgr,
	)
	deps.AcademicYearService = appServices.NewAcademicYearService(deps.Repos.AcademicYearRepository, lgr)
	deps.CleanupService = appServices.NewCleanupService(
		deps.Repos.TokenRepository,
		deps.Repos.OTPRepository,
		1*time.Hour,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.MarksController = appControllers.NewMarksController(deps.MarksService)
	deps.SummaryController = appControllers.NewSummaryController(deps.SummaryService)
	deps.ExcelController = appControllers.NewExcelController(deps.ExcelService)
	deps.YearController = appControllers.NewAcademicYearController(deps.AcademicYearService)
	deps.SettingController = appControllers.NewSettingController(deps.SettingService)

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
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.SchoolController,
		deps.StudentController,
		deps.SubjectController,
		deps.AssignmentController,
		deps.MarksController,
		deps.SummaryController,
		deps.ExcelController,
		deps.YearController,
		deps.SettingController,
		deps.AuthMiddleware,
	)

	return router
}
