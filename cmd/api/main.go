package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/OSUMed/feature-request-app/docs"
	httphandlers "github.com/OSUMed/feature-request-app/internal/handlers/http"
	"github.com/OSUMed/feature-request-app/internal/handlers/middleware"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/auth"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/config"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/i18n"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/logging"
	"github.com/OSUMed/feature-request-app/internal/infrastructure/persistence/postgres"
	"github.com/OSUMed/feature-request-app/internal/services"
)

// @title Feature Request API
// @version 1.0
// @description Submit, upvote and triage feature requests.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting feature request api",
		"env", cfg.Env,
		"version", docs.SwaggerInfo.Version,
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Redis é opcional: sem REDIS_URL o logout não revoga tokens
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = auth.NewRedisClient(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			log.Fatal(err)
		}
	} else {
		logger.Warn("REDIS_URL not set, token revocation disabled")
	}
	tokenStore := auth.NewTokenStore(redisClient, logger)

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	featureRepo := postgres.NewFeatureRequestRepository(db)
	upvoteRepo := postgres.NewUpvoteRepository(db)
	actionRepo := postgres.NewAdminActionRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	featureService := services.NewFeatureRequestService(featureRepo, logger)
	upvoteService := services.NewUpvoteService(featureRepo, upvoteRepo, logger)
	transitionService := services.NewStatusTransitionService(featureRepo, actionRepo, uow, logger)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
		I18n:           i18nService,
		Auth:           middleware.NewAuthMiddleware(jwtService, tokenStore, logger),
		Features:       httphandlers.NewFeatureRequestHandler(featureService, transitionService),
		Upvotes:        httphandlers.NewUpvoteHandler(upvoteService),
		Users:          httphandlers.NewAuthHandler(userService, jwtService, tokenStore),
		Health: httphandlers.NewHealthHandler(cfg.Env, func(ctx context.Context) error {
			return postgres.Ping(ctx, db)
		}),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := tokenStore.Close(); err != nil {
		logger.Error("failed to close redis", "error", err)
	}
	if err := postgres.Close(db); err != nil {
		logger.Error("failed to close database", "error", err)
	}

	logger.Info("server exited")
}
