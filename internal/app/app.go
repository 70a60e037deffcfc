package app

import (
	"fmt"

	"refspot_backend/internal/cache"
	"refspot_backend/internal/config"
	"refspot_backend/internal/database"
	"refspot_backend/internal/email"
	"refspot_backend/internal/handlers"
	"refspot_backend/internal/imageprocessor"
	"refspot_backend/internal/logger"
	"refspot_backend/internal/logofetcher"
	"refspot_backend/internal/middleware"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/routes"
	"refspot_backend/internal/services"
	"refspot_backend/internal/storage"
	"refspot_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	cacheInstance := cache.NewCache(cfg)
	logger.Info("Cache initialized", "type", cfg.Cache.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, cacheInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage, cacheInstance cache.Cache) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	connRepo := repositories.NewConnectionRepository(gormDB)
	msgRepo := repositories.NewMessageRepository(gormDB)
	referralRepo := repositories.NewReferralRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)

	var mailer email.Provider
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(cfg)
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		mailer = &email.NoopProvider{}
	}

	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	var logos logofetcher.Fetcher
	if cfg.LogoFetch.Disabled {
		logos = &logofetcher.DisabledFetcher{}
	} else {
		logos = logofetcher.NewHTTPFetcher(storageInstance, processor)
	}

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo, mailer),
		ProfileService:    services.NewProfileService(userRepo, profileRepo, connRepo, referralRepo, logos),
		UploadService:     services.NewUploadService(userRepo, storageInstance, processor, cfg),
		ConnectionService: services.NewConnectionService(connRepo, userRepo, cacheInstance, mailer),
		MessageService:    services.NewMessageService(msgRepo, userRepo, connRepo, cacheInstance),
		ReferralService:   services.NewReferralService(referralRepo, userRepo, connRepo, msgRepo, cacheInstance, mailer),
		JobService:        services.NewJobService(jobRepo),
		SearchService:     services.NewSearchService(userRepo, jobRepo),
		DashboardService:  services.NewDashboardService(userRepo, connRepo, msgRepo, referralRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(base, sc.AuthService),
		ProfileHandler:    handlers.NewProfileHandler(base, sc.ProfileService),
		UploadHandler:     handlers.NewUploadHandler(base, sc.UploadService),
		FileHandler:       handlers.NewFileHandler(base, sc.UploadService),
		ConnectionHandler: handlers.NewConnectionHandler(base, sc.ConnectionService),
		MessageHandler:    handlers.NewMessageHandler(base, sc.MessageService),
		ReferralHandler:   handlers.NewReferralHandler(base, sc.ReferralService),
		JobHandler:        handlers.NewJobHandler(base, sc.JobService),
		SearchHandler:     handlers.NewSearchHandler(base, sc.SearchService),
		DashboardHandler:  handlers.NewDashboardHandler(base, sc.DashboardService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.MaxMultipartMemory = cfg.Upload.MaxSize

	return ginRouter
}
