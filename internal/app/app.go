package app

import (
	"fmt"
	"time"

	"workhive_backend/database"
	"workhive_backend/internal/auth"
	"workhive_backend/internal/config"
	"workhive_backend/internal/email"
	"workhive_backend/internal/handlers"
	"workhive_backend/internal/logger"
	"workhive_backend/internal/middleware"
	"workhive_backend/internal/routes"
	"workhive_backend/internal/services"
	"workhive_backend/internal/storage"
	"workhive_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	repo "workhive_backend/internal/repositories"
)

// App holds the wired application.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// New loads configuration, connects the database, runs migrations and
// wires every layer together.
func New() (*App, error) {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// TranslateError maps driver duplicate-key failures onto
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	router, err := BuildRouter(db, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: router,
		DB:     db,
		Config: cfg,
	}, nil
}

// BuildRouter wires repositories, services and handlers onto a gin
// engine. Separated from New so tests can assemble a router around
// their own database handle.
func BuildRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	files, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		emailProvider = email.NewNoopProvider()
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	userRepo := repo.NewUserRepository(db)
	jobRepo := repo.NewJobRepository(db)
	applicationRepo := repo.NewApplicationRepository(db)
	savedJobRepo := repo.NewSavedJobRepository(db)
	reviewRepo := repo.NewReviewRepository(db)
	notificationRepo := repo.NewNotificationRepository(db)

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)

	svc := &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, tokens),
		UserService:         services.NewUserService(userRepo),
		JobService:          services.NewJobService(jobRepo, applicationRepo, savedJobRepo),
		ApplicationService: services.NewApplicationService(
			applicationRepo,
			jobRepo,
			userRepo,
			notificationService,
			files,
			services.ResumeConfig{
				MaxSize:      cfg.Upload.MaxSize,
				AllowedTypes: cfg.Upload.AllowedTypes,
			},
		),
		ReviewService:       services.NewReviewService(reviewRepo, userRepo),
		NotificationService: notificationService,
	}

	v := validator.New()
	h := handlers.NewAppHandlers(svc, v)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, h, tokens)

	return router, nil
}

// Run starts the HTTP server and blocks.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	logger.Info("🚀 Server starting", "addr", addr, "env", a.Config.Server.Env)
	return a.Router.Run(addr)
}
